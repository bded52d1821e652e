package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ironsheep/pictool/internal/imaging"
	"github.com/ironsheep/pictool/internal/runner"
)

// maxRequestSize bounds a single request line.
const maxRequestSize = 1024 * 1024

// Server answers MCP requests by running transforms through a shared Runner.
type Server struct {
	runner  *runner.Runner
	cache   *imaging.ImageCache
	version string
}

// New creates an MCP server that runs transforms through r and reports
// version in its handshake.
func New(r *runner.Runner, version string) *Server {
	return &Server{
		runner:  r,
		cache:   r.Cache(),
		version: version,
	}
}

// Run serves newline-delimited requests from in and writes one response
// line per request to out. It returns when in is exhausted, or with the
// context's error once ctx is done.
//
// Requests are handled one at a time. A line that is not valid JSON gets a
// parse error response and does not stop the server.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	// decoded images only live as long as the session
	defer s.cache.Clear()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var resp *MCPResponse
		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			resp = errorResponse(nil, codeParseError, "Parse error", err.Error())
		} else {
			resp = s.handleRequest(ctx, &req)
		}
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

// handleRequest routes one request. It returns nil for notifications, which
// are requests without an id or in the notifications/ namespace.
func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	if req.ID == nil || strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}

	switch req.Method {
	case "initialize":
		return resultResponse(req.ID, s.handshake())
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return resultResponse(req.ID, map[string]interface{}{})
	default:
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (s *Server) handshake() map[string]interface{} {
	return map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    "pictool",
			"version": s.version,
		},
	}
}
