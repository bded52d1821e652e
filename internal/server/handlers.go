package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/pictool/internal/imaging"
	"github.com/ironsheep/pictool/internal/plugin"
	"github.com/ironsheep/pictool/internal/runner"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_info", "image_flip").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// TransformResult is returned by every transform tool.
type TransformResult struct {
	*runner.Result

	// Display holds the text dump produced by the display transform.
	Display string `json:"display,omitempty"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Unknown tools, commands and options return code -32602; other tool
// failures return code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, plugin.ErrConfiguration) {
			return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	return resultResponse(req.ID, textContent(mustMarshalJSON(result)))
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleSampleColor(args)
	}

	command, ok := strings.CutPrefix(name, toolPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: unknown tool: %s", plugin.ErrConfiguration, name)
	}
	return s.handleTransform(ctx, command, args)
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", plugin.ErrConfiguration, err)
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", plugin.ErrConfiguration, err)
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type sampleColorArgs struct {
	Path string `json:"path"`
	Row  *int   `json:"row"`
	Col  *int   `json:"col"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", plugin.ErrConfiguration, err)
	}
	if a.Row == nil || a.Col == nil {
		return nil, fmt.Errorf("%w: row and col are required", plugin.ErrConfiguration)
	}

	b, err := imaging.LoadBuffer(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(b, *a.Row, *a.Col)
}

// === Transform Handler ===

// handleTransform runs one transform. "path" and "output" select the files;
// every other argument becomes a transform option.
func (s *Server) handleTransform(ctx context.Context, command string, args json.RawMessage) (interface{}, error) {
	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", plugin.ErrConfiguration, err)
	}

	inv := runner.Invocation{
		Command: command,
		Options: plugin.Options{},
	}
	for key, val := range raw {
		switch key {
		case "path":
			inv.Input, _ = val.(string)
		case "output":
			inv.Output, _ = val.(string)
		default:
			inv.Options[key] = optionValue(val)
		}
	}

	var display bytes.Buffer
	inv.Out = &display

	res, err := s.runner.Run(ctx, inv)
	if err != nil {
		return nil, err
	}
	return &TransformResult{Result: res, Display: display.String()}, nil
}

// optionValue maps a decoded JSON value onto the types transforms accept:
// integral numbers become int, other numbers float64, and strings go
// through the same conversion as command-line text.
func optionValue(v interface{}) interface{} {
	switch v := v.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case string:
		return plugin.ParseValue(v)
	default:
		return v
	}
}
