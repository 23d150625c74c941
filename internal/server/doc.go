// Package server implements the MCP (Model Context Protocol) server for image-to-text rendering.
//
// This package provides a JSON-RPC 2.0 server that exposes the glyph renderer
// through the MCP protocol, so MCP-compatible clients can turn images into
// text art without running the command-line tool.
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
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Conversion:
//   - image_to_ascii: Render an image, or a region of it, as glyph lines
//   - ascii_crop: Trim uniform borders from already rendered lines
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images. Images are cached
// by path and reused across tool calls, so rendering the same image at several
// widths decodes it only once. The cache persists for the lifetime of the
// server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, which starts with "invalid config",
//     "image read error" or "degenerate grid" for conversion failures
//
// # Usage
//
//	srv := server.New(version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
