// Package server implements the MCP (Model Context Protocol) server that
// exposes brightquad's patch analysis to MCP clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_unload: Drop one image, or all of them, from the cache
//   - patch_brightness: Mean intensity of every patch
//   - patch_top_bright: Grid positions and centers of the brightest patches
//   - patch_quadrilateral: Polygon area, perimeter and annotated image
//   - patch_crop: One patch as PNG
//
// Arguments a client omits fall back to the configuration the server was
// started with (see internal/config).
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with
// code -32000, message "Tool execution failed" and the Go error string as data.
package server
