package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var sizeProperties = map[string]interface{}{
	"width": map[string]interface{}{
		"type":        "integer",
		"description": "Optional render width in pixels. 0 keeps the natural width (or the aspect ratio when height is set)",
	},
	"height": map[string]interface{}{
		"type":        "integer",
		"description": "Optional render height in pixels. 0 keeps the natural height (or the aspect ratio when width is set)",
	},
}

// withSize merges the render size properties into props
func withSize(props map[string]interface{}) map[string]interface{} {
	for k, v := range sizeProperties {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withSize(map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},

		// Anomaly Inspection
		{
			Name: "anomaly_detect",
			Description: "Scan an image for pixels that differ strongly from its average background color and whose " +
				"dominant channel matches the requested hue. Returns the anomaly coordinates in scan order. " +
				"Replaces any previous scan of the same image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withSize(map[string]interface{}{
					"path": pathProperty,
					"hue": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"yellow", "red", "green", "blue"},
						"description": "Hue category to look for",
					},
					"include_overlay": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the image with a red circle around every anomaly as base64 PNG",
						"default":     false,
					},
				}),
				"required": []string{"path", "hue"},
			},
		},
		{
			Name:        "anomaly_highlight",
			Description: "Highlight one anomaly from the latest anomaly_detect scan of this image by its index. Returns the anomaly and the image with a yellow circle around it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"index": map[string]interface{}{
						"type":        "integer",
						"description": "Anomaly index (0-based, as returned by anomaly_detect)",
					},
					"zoom": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return an 8x magnified patch of the 21x21 pixels around the anomaly",
						"default":     false,
					},
				},
				"required": []string{"path", "index"},
			},
		},
		{
			Name:        "anomaly_point_difference",
			Description: "Compare the color at one pixel with the image's average background color and return the RGB distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withSize(map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
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
