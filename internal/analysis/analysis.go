// Package analysis runs the full brightest-patch pipeline on one image:
// tiling, brightness, top-K selection, center mapping, vertex ordering and
// area measurement.
package analysis

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"

	"github.com/ironsheep/brightquad/internal/config"
	"github.com/ironsheep/brightquad/internal/imaging"
	"github.com/ironsheep/brightquad/internal/patch"
)

// Result is the outcome of one analysis run.
type Result struct {
	// GridRows and GridCols give the patch grid shape.
	GridRows int `json:"grid_rows"`
	GridCols int `json:"grid_cols"`

	// PatchSize is the side of each patch in pixels.
	PatchSize int `json:"patch_size"`

	// Brightness is the mean intensity of every patch, [row][col].
	Brightness [][]float64 `json:"brightness"`

	// Indices are the grid positions of the brightest patches, unordered.
	Indices []patch.Index `json:"indices"`

	// Vertices are the patch centers in the order used for the area and the
	// drawing.
	Vertices []image.Point `json:"vertices"`

	// VertexOrder is the ordering that produced Vertices.
	VertexOrder string `json:"vertex_order"`

	// Area is the shoelace area of Vertices, in square pixels.
	Area float64 `json:"area"`

	// Perimeter is the length of the closed polygon through Vertices.
	Perimeter float64 `json:"perimeter"`
}

// Run analyses the grayscale matrix gray with the parameters in cfg.
// It stops at the first failing step and returns no partial result.
func Run(gray mat.Matrix, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	grid, err := patch.Tile(gray, cfg.PatchSize)
	if err != nil {
		return nil, fmt.Errorf("tiling: %w", err)
	}

	brightness, err := patch.Brightness(grid)
	if err != nil {
		return nil, fmt.Errorf("brightness: %w", err)
	}

	indices, err := patch.TopK(brightness, cfg.NumTopPatches)
	if err != nil {
		return nil, fmt.Errorf("selecting top patches: %w", err)
	}

	centers := patch.CentersWithOffset(indices, cfg.PatchSize, cfg.CenterOffset())

	var vertices []image.Point
	switch cfg.VertexOrder {
	case config.OrderPolar:
		vertices = patch.OrderPolar(centers)
	default:
		vertices = patch.OrderRowMajor(centers)
	}

	// One or two vertices enclose nothing.
	var area float64
	if len(vertices) >= 3 {
		area, err = patch.PolygonArea(vertices)
		if err != nil {
			return nil, fmt.Errorf("area: %w", err)
		}
	}

	return &Result{
		GridRows:    grid.Rows,
		GridCols:    grid.Cols,
		PatchSize:   cfg.PatchSize,
		Brightness:  rowsOf(brightness),
		Indices:     indices,
		Vertices:    vertices,
		VertexOrder: cfg.VertexOrder,
		Area:        area,
		Perimeter:   patch.Perimeter(vertices),
	}, nil
}

// Edges returns how the vertices of r are joined when drawn. Four row-major
// vertices are joined as an outline (top, left, right, bottom sides); any
// other result is drawn as a closed loop in vertex order.
func (r *Result) Edges() [][2]int {
	if r.VertexOrder == config.OrderRowMajor && len(r.Vertices) == 4 {
		return imaging.RowMajorQuadEdges
	}
	return imaging.LoopEdges(len(r.Vertices))
}

// Annotate draws the polygon of r onto img using the colour and line
// thickness from cfg.
func Annotate(img image.Image, r *Result, cfg *config.Config) (*image.NRGBA, error) {
	c, err := imaging.ParseColor(cfg.LineColor)
	if err != nil {
		return nil, err
	}
	return imaging.DrawEdges(img, r.Vertices, r.Edges(), c, cfg.LineThickness)
}

func rowsOf(m *mat.Dense) [][]float64 {
	rows, _ := m.Dims()
	out := make([][]float64, rows)
	for r := range out {
		out[r] = mat.Row(nil, r, m)
	}
	return out
}
