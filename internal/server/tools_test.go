package server

import (
	"context"
	"testing"

	"github.com/ironsheep/pictool/internal/plugin"
)

func TestGetToolDefinitions(t *testing.T) {
	reg := plugin.Default()
	tools := GetToolDefinitions(reg)

	if got, want := len(tools), len(reg.Names())+3; got != want {
		t.Fatalf("tool count: got %d, want %d", got, want)
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	expected := []string{"image_info", "image_dimensions", "image_sample_color"}
	for _, name := range reg.Names() {
		expected = append(expected, toolPrefix+name)
	}
	for _, name := range expected {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions(plugin.Default()) {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}
			if _, ok := props["path"]; !ok {
				t.Error("InputSchema missing 'path' property")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 || required[0] != "path" {
				t.Errorf("required: got %v, want path first", tool.InputSchema["required"])
			}
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required %q has no property", name)
				}
			}
		})
	}
}

func TestToolDefinitions_ParameterSchemas(t *testing.T) {
	tools := make(map[string]Tool)
	for _, tool := range GetToolDefinitions(plugin.Default()) {
		tools[tool.Name] = tool
	}

	tests := []struct {
		tool        string
		param       string
		wantType    string
		wantDefault interface{}
	}{
		{"image_mono", "sepia", "boolean", false},
		{"image_flip", "vertical", "boolean", false},
		{"image_rotate", "right", "boolean", false},
		{"image_blur", "radius", "integer", 5},
		{"image_pixellate", "step", "integer", 10},
		{"image_scale", "factor", "number", 0.5},
		{"image_crop", "region", "string", "center"},
	}

	for _, tt := range tests {
		t.Run(tt.tool+"/"+tt.param, func(t *testing.T) {
			props := tools[tt.tool].InputSchema["properties"].(map[string]interface{})
			prop, ok := props[tt.param].(map[string]interface{})
			if !ok {
				t.Fatalf("%s has no %s property", tt.tool, tt.param)
			}
			if prop["type"] != tt.wantType {
				t.Errorf("type: got %v, want %s", prop["type"], tt.wantType)
			}
			if prop["default"] != tt.wantDefault {
				t.Errorf("default: got %v, want %v", prop["default"], tt.wantDefault)
			}
		})
	}
}

func TestToolDefinitions_TransformsTakeOutput(t *testing.T) {
	for _, tool := range GetToolDefinitions(plugin.Default()) {
		props := tool.InputSchema["properties"].(map[string]interface{})
		_, hasOutput := props["output"]
		isTransform := tool.Name != "image_info" && tool.Name != "image_dimensions" && tool.Name != "image_sample_color"
		if hasOutput != isTransform {
			t.Errorf("%s: output property present=%t, want %t", tool.Name, hasOutput, isTransform)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer()
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(tools) != len(GetToolDefinitions(s.runner.Registry())) {
		t.Errorf("tools/list returned %d tools", len(tools))
	}
}
