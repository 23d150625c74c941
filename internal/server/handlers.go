package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/muesli/termenv"

	"github.com/ironsheep/image-ascii/internal/ascii"
	"github.com/ironsheep/image-ascii/internal/config"
	"github.com/ironsheep/image-ascii/internal/imaging"
	"github.com/ironsheep/image-ascii/internal/output"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_to_ascii").
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
		debugf("tool %s failed: %v", params.Name, err)
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
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_to_ascii":
		return s.handleImageToASCII(args)
	case "ascii_crop":
		return s.handleASCIICrop(args)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Conversion Handlers ===

// ASCIIResult is the payload of image_to_ascii and ascii_crop.
type ASCIIResult struct {
	Lines []string `json:"lines"`
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
}

func newASCIIResult(g *ascii.Grid, lines []string) *ASCIIResult {
	return &ASCIIResult{Lines: lines, Rows: g.Rows(), Cols: g.Cols()}
}

type imageToASCIIArgs struct {
	Path               string               `json:"path"`
	Ramp               string               `json:"ramp"`
	Width              int                  `json:"width"`
	Padding            *int                 `json:"padding"`
	Flip               bool                 `json:"flip"`
	Crop               bool                 `json:"crop"`
	Square             bool                 `json:"square"`
	SuppressHighlights bool                 `json:"suppress_highlights"`
	Region             *imaging.Region      `json:"region"`
	NamedRegion        string               `json:"named_region"`
	Adjust             *imaging.Adjustments `json:"adjust"`
	Color              bool                 `json:"color"`
}

// config overlays the arguments on the built-in settings.
func (a *imageToASCIIArgs) config() *config.Config {
	cfg := config.Default()
	if a.Ramp != "" {
		cfg.Ramp = a.Ramp
	}
	if a.Padding != nil {
		cfg.Padding = *a.Padding
	}
	if a.Adjust != nil {
		cfg.Adjust = *a.Adjust
	}
	cfg.Width = a.Width
	cfg.Flip = a.Flip
	cfg.Crop = a.Crop
	cfg.Square = a.Square
	cfg.SuppressHighlights = a.SuppressHighlights
	cfg.Color = a.Color
	return cfg
}

func (s *Server) handleImageToASCII(args json.RawMessage) (interface{}, error) {
	var a imageToASCIIArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Region != nil && a.NamedRegion != "" {
		return nil, fmt.Errorf("%w: region and named_region are mutually exclusive", ascii.ErrInvalidConfig)
	}

	cfg := a.config()
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if img, err = selectRegion(img, a.Region, a.NamedRegion); err != nil {
		return nil, err
	}

	grid, err := ascii.Convert(imaging.NewBuffer(imaging.Adjust(img, cfg.Adjust)), opts)
	if err != nil {
		return nil, err
	}
	debugf("rendered %s: %dx%d", a.Path, grid.Rows(), grid.Cols())

	if cfg.Color {
		return newASCIIResult(grid, output.Colorize(grid, termenv.TrueColor)), nil
	}
	return newASCIIResult(grid, grid.Lines()), nil
}

// selectRegion narrows img to an explicit or named region, if any.
func selectRegion(img image.Image, region *imaging.Region, name string) (image.Image, error) {
	switch {
	case region != nil:
		return imaging.CropRegion(img, *region)
	case name != "":
		r, err := imaging.NamedRegion(img, name)
		if err != nil {
			return nil, err
		}
		return imaging.CropRegion(img, r)
	default:
		return img, nil
	}
}

type asciiCropArgs struct {
	Lines   []string `json:"lines"`
	Padding *int     `json:"padding"`
}

func (s *Server) handleASCIICrop(args json.RawMessage) (interface{}, error) {
	var a asciiCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	padding := ascii.DefaultPadding
	if a.Padding != nil {
		padding = *a.Padding
	}

	grid, err := ascii.GridFromLines(a.Lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ascii.ErrInvalidConfig, err)
	}
	cropped, err := ascii.Crop(grid, padding)
	if err != nil {
		return nil, err
	}
	return newASCIIResult(cropped, cropped.Lines()), nil
}
