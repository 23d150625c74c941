package server

import "github.com/ironsheep/image-ascii/internal/ascii"

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

var regionProperty = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
		"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
		"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
		"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
	},
	"required":    []string{"x1", "y1", "x2", "y2"},
	"description": "Optional source region to convert. If omitted, converts the entire image.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has an alpha channel. The decoded image is cached for later conversions.",
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

		// Conversion
		{
			Name:        "image_to_ascii",
			Description: "Render an image as a grid of text glyphs. Darker pixels map to the start of the density ramp and brighter pixels to its end. Fully transparent pixels render as spaces.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"ramp": map[string]interface{}{
						"type":        "string",
						"description": "Density ramp, darkest glyph first",
						"default":     ascii.DefaultRamp,
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in samples. Defaults to 150, or 70 with square cells",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Uniform lines kept on each edge when cropping",
						"default":     ascii.DefaultPadding,
					},
					"flip": map[string]interface{}{
						"type":        "boolean",
						"description": "Reverse the ramp, for dark text on a light background",
						"default":     false,
					},
					"crop": map[string]interface{}{
						"type":        "boolean",
						"description": "Trim uniform border rows and columns",
						"default":     false,
					},
					"square": map[string]interface{}{
						"type":        "boolean",
						"description": "Use square cells: one glyph plus a space per sample, blank rows dropped",
						"default":     false,
					},
					"suppress_highlights": map[string]interface{}{
						"type":        "boolean",
						"description": "Render near-white pixels as spaces",
						"default":     false,
					},
					"region": regionProperty,
					"named_region": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Optional named source region. Cannot be combined with region",
					},
					"adjust": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"contrast":   map[string]interface{}{"type": "number", "description": "Contrast change in [-1,1]"},
							"brightness": map[string]interface{}{"type": "number", "description": "Brightness change in [-1,1]"},
							"gamma":      map[string]interface{}{"type": "number", "description": "Gamma correction factor (1 = unchanged)"},
						},
						"description": "Optional tonal adjustments applied before sampling",
					},
					"color": map[string]interface{}{
						"type":        "boolean",
						"description": "Wrap glyphs in 24-bit ANSI color sequences",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ascii_crop",
			Description: "Trim uniform border rows and columns from previously rendered text, keeping up to padding uniform lines on each edge.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Rendered rows, all of the same length",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Uniform lines kept on each edge",
						"default":     ascii.DefaultPadding,
					},
				},
				"required": []string{"lines"},
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
