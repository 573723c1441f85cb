package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func patchSizeProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Side of the square patches in pixels. Defaults to the server configuration (5).",
		"minimum":     1,
	}
}

func exactCentroidProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Use the central pixel of each patch (patch_size/2) instead of the fixed offset of 2",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it is grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_unload",
			Description: "Drop an image from the server's cache so the next call decodes it from disk again. Without a path, the whole cache is emptied. Files changed on disk are reloaded automatically.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{},
			},
		},
		{
			Name:        "patch_brightness",
			Description: "Split the grayscale image into non-overlapping square patches and return the mean intensity of each patch as a [row][col] grid. Trailing pixels that do not fill a patch are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"patch_size": patchSizeProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "patch_top_bright",
			Description: "Find the brightest patches of the image and return their grid positions and pixel centers. The patches come back in no particular order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"patch_size": patchSizeProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of patches to return. Defaults to 4.",
						"minimum":     1,
					},
					"exact_centroid": exactCentroidProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "patch_quadrilateral",
			Description: "Connect the centers of the brightest patches into a polygon, measure its area (shoelace formula, square pixels) and perimeter, and return the image with the polygon drawn on it as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty(),
					"patch_size": patchSizeProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of vertices. Fewer than 3 enclose no area. Defaults to 4.",
						"minimum":     1,
					},
					"exact_centroid": exactCentroidProperty(),
					"vertex_order": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"row-major", "polar"},
						"description": "row-major sorts vertices by row then column; polar sorts them by angle around their centroid",
						"default":     "row-major",
					},
					"line_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour of the polygon outline",
						"default":     "#FF0000",
					},
					"line_thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Outline width in pixels",
						"default":     2,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "patch_crop",
			Description: "Return one patch of the image as base64 PNG, optionally enlarged with nearest-neighbour scaling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Patch row in the grid (0-based)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Patch column in the grid (0-based)",
					},
					"patch_size": patchSizeProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 8.0 to enlarge). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "row", "col"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
