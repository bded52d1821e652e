package server

import (
	"github.com/ironsheep/pictool/internal/plugin"
)

// toolPrefix is prepended to every transform name to form its tool name.
const toolPrefix = "image_"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns the metadata tools followed by one tool per
// registered transform
func GetToolDefinitions(reg *plugin.Registry) []Tool {
	tools := []Tool{
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, color depth and file size.",
			InputSchema: pathOnlySchema(),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: pathOnlySchema(),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color of one pixel as RGBA, hex and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, from top)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based, from left)",
					},
				},
				"required": []string{"path", "row", "col"},
			},
		},
	}

	for _, spec := range reg.Specs() {
		tools = append(tools, transformTool(spec))
	}
	return tools
}

func pathOnlySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path to the image file",
			},
		},
		"required": []string{"path"},
	}
}

// transformTool builds the tool for one transform. Every transform takes the
// input path, an optional output path, and its declared parameters.
func transformTool(spec *plugin.Spec) Tool {
	properties := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the input image file",
		},
		"output": map[string]interface{}{
			"type":        "string",
			"description": "Optional path to write the result as PNG. Omit to leave the disk untouched.",
		},
	}
	for _, p := range spec.Params {
		properties[p.Name] = map[string]interface{}{
			"type":        jsonType(p.Kind),
			"description": p.Description,
			"default":     p.Default,
		}
	}

	return Tool{
		Name:        toolPrefix + spec.Name,
		Description: spec.Description,
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   []string{"path"},
		},
	}
}

func jsonType(k plugin.Kind) string {
	switch k {
	case plugin.Bool:
		return "boolean"
	case plugin.Int:
		return "integer"
	case plugin.Text:
		return "string"
	default:
		return "number"
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(s.runner.Registry()),
	})
}
