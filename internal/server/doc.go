// Package server implements an MCP (Model Context Protocol) server that
// exposes the pictool transforms as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake, reporting the pictool version
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image information:
//   - image_info: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: One pixel as RGBA, hex and HSL
//
// One tool per registered transform, named image_<command> (image_mono,
// image_flip, image_blur, ...). Each takes "path", an optional "output",
// and the transform's own parameters. A result is saved only when the
// transform modified the image and "output" was given. The display tool
// returns its dump in the "display" field of the result.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server, but
// every call converts the cached image into a fresh pixel buffer, so calls
// never see each other's edits. Writing to a path evicts it from the cache.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 for unknown tools, commands or options; -32000 for
//     invalid arguments, unreadable files and other tool failures; -32700
//     for a request line that is not JSON
//   - message: Human-readable error description
//   - data: The Go error string
//
// A failed call does not stop the server.
package server
