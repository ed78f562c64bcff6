package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/hue-anomaly-mcp/internal/anomaly"
	"github.com/ironsheep/hue-anomaly-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "anomaly_detect").
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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Anomaly Inspection
	case "anomaly_detect":
		return s.handleAnomalyDetect(args)
	case "anomaly_highlight":
		return s.handleAnomalyHighlight(args)
	case "anomaly_point_difference":
		return s.handleAnomalyPointDifference(args)

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

// === Basic Image Information Handlers ===

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

type pointArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.cache.Frame(a.Path, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(frame.Image(), a.X, a.Y)
}

// === Anomaly Inspection Handlers ===

type anomalyDetectArgs struct {
	Path           string `json:"path"`
	Hue            string `json:"hue"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	IncludeOverlay bool   `json:"include_overlay"`
}

// anomalyDetectResult is the scan plus the display list and optional overlay.
type anomalyDetectResult struct {
	*anomaly.Result
	Count       int                    `json:"count"`
	Coordinates []string               `json:"coordinates"`
	Overlay     *imaging.OverlayResult `json:"overlay,omitempty"`
}

func (s *Server) handleAnomalyDetect(args json.RawMessage) (interface{}, error) {
	var a anomalyDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	hue, err := anomaly.ParseHue(a.Hue)
	if err != nil {
		return nil, err
	}
	frame, err := s.cache.Frame(a.Path, a.Width, a.Height)
	if err != nil {
		return nil, err
	}

	res := s.detector.Detect(frame, hue)
	s.scans.put(a.Path, &scan{frame: frame, result: res})

	out := &anomalyDetectResult{
		Result:      res,
		Count:       res.Len(),
		Coordinates: res.Coordinates(),
	}
	if a.IncludeOverlay {
		markers := make([]imaging.Marker, 0, res.Len())
		for _, rec := range res.Records {
			markers = append(markers, imaging.DetectionMarker(rec.X, rec.Y))
		}
		out.Overlay, err = imaging.RenderMarkers(frame.Image(), markers)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Zoom patch geometry for anomaly_highlight.
const (
	zoomRadius = 10
	zoomScale  = 8
)

type anomalyHighlightArgs struct {
	Path  string `json:"path"`
	Index *int   `json:"index"`
	Zoom  bool   `json:"zoom"`
}

type anomalyHighlightResult struct {
	Anomaly    anomaly.Record         `json:"anomaly"`
	Coordinate string                 `json:"coordinate"`
	Overlay    *imaging.OverlayResult `json:"overlay"`
	Zoom       *imaging.ZoomResult    `json:"zoom,omitempty"`
}

func (s *Server) handleAnomalyHighlight(args json.RawMessage) (interface{}, error) {
	var a anomalyHighlightArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Index == nil {
		return nil, errors.New("index is required")
	}

	sc, ok := s.scans.get(a.Path)
	if !ok {
		return nil, fmt.Errorf("no anomaly scan for %s: run anomaly_detect first", a.Path)
	}
	rec, err := sc.result.Record(*a.Index)
	if err != nil {
		return nil, err
	}

	overlay, err := imaging.RenderMarkers(sc.frame.Image(), []imaging.Marker{imaging.HighlightMarker(rec.X, rec.Y)})
	if err != nil {
		return nil, err
	}
	out := &anomalyHighlightResult{
		Anomaly:    rec,
		Coordinate: rec.String(),
		Overlay:    overlay,
	}
	if a.Zoom {
		out.Zoom, err = imaging.Zoom(sc.frame.Image(), rec.X, rec.Y, zoomRadius, zoomScale)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type anomalyPointDifferenceResult struct {
	*anomaly.PointDifference
	PixelHex      string `json:"pixel_hex"`
	BackgroundHex string `json:"background_hex"`
	Summary       string `json:"summary"`
}

func (s *Server) handleAnomalyPointDifference(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.cache.Frame(a.Path, a.Width, a.Height)
	if err != nil {
		return nil, err
	}

	pd, err := anomaly.PointDifferenceAt(frame, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &anomalyPointDifferenceResult{
		PointDifference: pd,
		PixelHex:        pd.Pixel.Hex(),
		BackgroundHex:   pd.Background.Hex(),
		Summary:         pd.Summary(),
	}, nil
}
