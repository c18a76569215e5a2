// Package server implements the MCP (Model Context Protocol) server for quadrant tools.
//
// This package provides a JSON-RPC 2.0 server that exposes quadrant classification
// and plotting through the MCP protocol, so MCP-compatible clients can ask which
// quadrant(s) of the plane an angle or a point falls into.
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
// Classification:
//   - quadrant_from_angle: Quadrant(s) of an angle in degrees or gons
//   - quadrant_from_coords: Quadrant(s) of a point relative to a reference point
//   - quadrant_combine: Union of two quadrants or quadrant sets
//
// Visualization:
//   - quadrant_plot_angle: Classify an angle and render the shaded quadrants
//
// Stations:
//   - stations_load: Load a GeoJSON file of station points
//   - stations_distribution: Count stations per quadrant around a location
//   - stations_plot: Scatter plot of stations around a location
//
// Every classification result carries the quadrant numbers in ascending
// order, e.g. {"quadrants": [1, 4], "labels": ["FIRST", "FOURTH"]}.
//
// # Station Caching
//
// Station files are decoded once and cached by path for the lifetime of the
// server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "abc is not a valid AngleUnit"
//
// # Usage
//
//	srv := server.New(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
