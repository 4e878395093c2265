// Package server implements the MCP (Model Context Protocol) server for the
// Shut the Box tools.
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
//   - shutbox_resolve: Frame of detections to board state, legal moves and report lines
//   - shutbox_solve: Dice values and open boxes to legal moves
//   - shutbox_annotate: Frame plus source image to an annotated PNG
//   - image_dimensions: Source size and the size an annotated copy would have
//
// A frame carries the output of two detectors, boxes and dice. Detections
// that cannot be parsed are dropped, logged at warn level and returned as
// warnings; they never fail the call.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg.Layout(), style, logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal().Err(err).Msg("server error")
//	}
package server
