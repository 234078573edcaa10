// Package server implements the MCP (Model Context Protocol) server for
// imgproxy URL generation tools.
//
// This package provides a JSON-RPC 2.0 server exposing the urlbuilder,
// preview, and focus packages through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients, letting AI systems assemble
// correct, optionally signed imgproxy URLs without reimplementing the token
// grammar.
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
// URL Assembly:
//   - url_build: Assemble a processing URL from modifier settings and a
//     source path, optionally signed and prefixed with the configured base URL
//   - url_encode_path: Base64url-encode a source path the way imgproxy
//     expects it
//   - url_sign_path: Sign an already-assembled core path with the configured
//     key and salt
//
// Local Image Analysis:
//   - gravity_suggest: Recommend a crop gravity from where a local image's
//     visual detail lives
//   - transform_preview: Apply the visual modifiers to a local image and
//     return a base64 PNG approximation of the server's output
//
// The server itself never contacts an imgproxy deployment; everything it
// produces is computed locally.
//
// # Configuration
//
// New takes a Config with the deployment's signing key and salt (raw bytes,
// hex-decoded by the caller) and a default base URL. All fields are optional:
// without a key and salt, signed builds and url_sign_path return errors;
// without a base URL, built paths start at "/".
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded local images. Images are
// cached by path and reused across gravity_suggest and transform_preview
// calls, avoiding redundant disk I/O. The cache persists for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Chain-misuse panics from the urlbuilder package (out-of-range quality,
// malformed hex colors, ...) are converted to tool errors rather than
// crashing the server.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.Config{Key: key, Salt: salt})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
