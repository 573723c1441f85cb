package server

import (
	"encoding/json"
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/brightquad/internal/analysis"
	"github.com/ironsheep/brightquad/internal/config"
	"github.com/ironsheep/brightquad/internal/imaging"
	"github.com/ironsheep/brightquad/internal/patch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "patch_quadrilateral").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_unload":
		return s.handleImageUnload(args)
	case "patch_brightness":
		return s.handlePatchBrightness(args)
	case "patch_top_bright":
		return s.handlePatchTopBright(args)
	case "patch_quadrilateral":
		return s.handlePatchQuadrilateral(args)
	case "patch_crop":
		return s.handlePatchCrop(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments; every tool needs at least a path.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return fmt.Errorf("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// ImageUnloadResult reports what image_unload dropped.
type ImageUnloadResult struct {
	Path    string `json:"path,omitempty"`
	Evicted int    `json:"evicted"`
	Cached  int    `json:"cached"`
}

func (s *Server) handleImageUnload(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	before := s.cache.Len()
	if a.Path == "" {
		s.cache.Clear()
	} else {
		s.cache.Evict(a.Path)
	}
	after := s.cache.Len()
	return &ImageUnloadResult{Path: a.Path, Evicted: before - after, Cached: after}, nil
}

// === Patch Handlers ===

type patchArgs struct {
	Path      string `json:"path"`
	PatchSize int    `json:"patch_size"`
}

// loadGray loads the image at path and its grayscale matrix.
func (s *Server) loadGray(path string) (image.Image, *mat.Dense, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return img, imaging.GrayMatrix(img), nil
}

func (s *Server) patchSize(requested int) int {
	if requested == 0 {
		return s.cfg.PatchSize
	}
	return requested
}

// PatchBrightnessResult is the brightness map of an image.
type PatchBrightnessResult struct {
	GridRows   int         `json:"grid_rows"`
	GridCols   int         `json:"grid_cols"`
	PatchSize  int         `json:"patch_size"`
	Brightness [][]float64 `json:"brightness"`
}

func (s *Server) handlePatchBrightness(args json.RawMessage) (interface{}, error) {
	var a patchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	_, gray, err := s.loadGray(a.Path)
	if err != nil {
		return nil, err
	}

	size := s.patchSize(a.PatchSize)
	grid, err := patch.Tile(gray, size)
	if err != nil {
		return nil, err
	}
	b, err := patch.Brightness(grid)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, grid.Rows)
	for r := range rows {
		rows[r] = make([]float64, grid.Cols)
		for c := range rows[r] {
			rows[r][c] = b.At(r, c)
		}
	}
	return &PatchBrightnessResult{
		GridRows:   grid.Rows,
		GridCols:   grid.Cols,
		PatchSize:  size,
		Brightness: rows,
	}, nil
}

type patchTopBrightArgs struct {
	Path          string `json:"path"`
	PatchSize     int    `json:"patch_size"`
	Count         int    `json:"count"`
	ExactCentroid *bool  `json:"exact_centroid"`
}

// TopBrightPatch is one selected patch with its pixel center.
type TopBrightPatch struct {
	Row        int         `json:"row"`
	Col        int         `json:"col"`
	Center     image.Point `json:"center"`
	Brightness float64     `json:"brightness"`
}

// PatchTopBrightResult lists the brightest patches, in no particular order.
type PatchTopBrightResult struct {
	PatchSize int              `json:"patch_size"`
	Patches   []TopBrightPatch `json:"patches"`
}

func (s *Server) handlePatchTopBright(args json.RawMessage) (interface{}, error) {
	var a patchTopBrightArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.NumTopPatches
	}
	_, gray, err := s.loadGray(a.Path)
	if err != nil {
		return nil, err
	}

	size := s.patchSize(a.PatchSize)
	grid, err := patch.Tile(gray, size)
	if err != nil {
		return nil, err
	}
	b, err := patch.Brightness(grid)
	if err != nil {
		return nil, err
	}
	idx, err := patch.TopK(b, a.Count)
	if err != nil {
		return nil, err
	}

	offset := patch.DefaultCenterOffset
	exact := s.cfg.ExactCentroid
	if a.ExactCentroid != nil {
		exact = *a.ExactCentroid
	}
	if exact {
		offset = patch.CentroidOffset(size)
	}

	centers := patch.CentersWithOffset(idx, size, offset)
	out := make([]TopBrightPatch, len(idx))
	for i, ix := range idx {
		out[i] = TopBrightPatch{
			Row:        ix.Row,
			Col:        ix.Col,
			Center:     centers[i],
			Brightness: b.At(ix.Row, ix.Col),
		}
	}
	return &PatchTopBrightResult{PatchSize: size, Patches: out}, nil
}

type patchQuadrilateralArgs struct {
	Path          string `json:"path"`
	PatchSize     int    `json:"patch_size"`
	Count         int    `json:"count"`
	ExactCentroid *bool  `json:"exact_centroid"`
	VertexOrder   string `json:"vertex_order"`
	LineColor     string `json:"line_color"`
	LineThickness int    `json:"line_thickness"`
}

// PatchQuadrilateralResult combines the analysis with the annotated image.
type PatchQuadrilateralResult struct {
	*analysis.Result
	Image *imaging.EncodedImage `json:"image"`
}

func (s *Server) handlePatchQuadrilateral(args json.RawMessage) (interface{}, error) {
	var a patchQuadrilateralArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	cfg := s.overrideConfig(a)
	img, gray, err := s.loadGray(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := analysis.Run(gray, cfg)
	if err != nil {
		return nil, err
	}
	annotated, err := analysis.Annotate(img, res, cfg)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(annotated)
	if err != nil {
		return nil, err
	}
	return &PatchQuadrilateralResult{Result: res, Image: encoded}, nil
}

// overrideConfig copies the server configuration and applies the non-zero
// tool arguments on top.
func (s *Server) overrideConfig(a patchQuadrilateralArgs) *config.Config {
	cfg := *s.cfg
	if a.PatchSize != 0 {
		cfg.PatchSize = a.PatchSize
	}
	if a.Count != 0 {
		cfg.NumTopPatches = a.Count
	}
	if a.ExactCentroid != nil {
		cfg.ExactCentroid = *a.ExactCentroid
	}
	if a.VertexOrder != "" {
		cfg.VertexOrder = a.VertexOrder
	}
	if a.LineColor != "" {
		cfg.LineColor = a.LineColor
	}
	if a.LineThickness != 0 {
		cfg.LineThickness = a.LineThickness
	}
	return &cfg
}

type patchCropArgs struct {
	Path      string  `json:"path"`
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	PatchSize int     `json:"patch_size"`
	Scale     float64 `json:"scale"`
}

func (s *Server) handlePatchCrop(args json.RawMessage) (interface{}, error) {
	var a patchCropArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropPatch(img, a.Row, a.Col, s.patchSize(a.PatchSize), a.Scale)
}
