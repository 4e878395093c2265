package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// boundsSchema describes a detection bounding box.
func boundsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// detectorSchema describes one detector's output for a frame.
func detectorSchema(description, labelExample string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"classes": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Optional class list indexed by class id. When given, class_index must be in range and an empty label is looked up here.",
			},
			"detections": map[string]interface{}{
				"type":        "array",
				"description": "Detections in the order the detector emitted them",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"bounds": boundsSchema(),
						"label": map[string]interface{}{
							"type":        "string",
							"description": "Class label, e.g. " + labelExample,
						},
						"class_index": map[string]interface{}{"type": "integer"},
						"confidence":  map[string]interface{}{"type": "number"},
					},
				},
			},
		},
	}
}

// frameProperties are the boxes/dice arguments shared by frame tools.
func frameProperties() map[string]interface{} {
	return map[string]interface{}{
		"boxes": detectorSchema("Box detector output (labels '<n>-open' or '<n>-closed')", "\"4-open\""),
		"dice":  detectorSchema("Dice detector output (labels are face values)", "\"5\""),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	annotateProps := frameProperties()
	annotateProps["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the photo or frame the detections came from",
	}

	return []Tool{
		{
			Name:        "shutbox_resolve",
			Description: "Resolve one frame of box and dice detections into the board state, every legal move for the dice total, and three display lines. Malformed detections are dropped and listed as warnings. With no box detections, a fresh board (1-9 open) is assumed.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": frameProperties(),
			},
		},
		{
			Name:        "shutbox_solve",
			Description: "List every combination of open boxes that sums to the dice total.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dice": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"maxItems":    2,
						"description": "Dice face values (at most two)",
					},
					"open_boxes": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Open box numbers; combinations follow this order",
					},
				},
				"required": []string{"dice", "open_boxes"},
			},
		},
		{
			Name:        "shutbox_annotate",
			Description: "Resolve a frame and paint it onto the source image: detection boxes, then the dice, open boxes and legal moves in the lower-left corner. Large images are downscaled first. Returns the analysis and a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": annotateProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file and the size an annotated copy would have.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
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
