// Package server implements the MCP (Model Context Protocol) server that
// exposes hue anomaly inspection as tools.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//
// Anomaly Inspection:
//   - anomaly_detect: Scan for hue anomalies, optionally with a marker overlay
//   - anomaly_highlight: Re-draw one anomaly from the latest scan by index, optionally zoomed
//   - anomaly_point_difference: Color distance between a pixel and the background
//
// # Scan State
//
// The latest anomaly_detect result is kept per image path together with the
// frame it ran on. A new scan of the same path replaces it. anomaly_highlight
// only accepts indices from that latest result; anything else is an error and
// leaves the stored scan untouched.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
