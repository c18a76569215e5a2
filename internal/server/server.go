package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ironsheep/quadrant-tools-mcp/internal/angle"
	"github.com/ironsheep/quadrant-tools-mcp/internal/plot"
	"github.com/ironsheep/quadrant-tools-mcp/internal/stations"
)

// Server handles MCP protocol communication
type Server struct {
	cfg      Config
	angles   angle.Classifier
	stations *stations.Cache
}

// Config holds server configuration
type Config struct {
	Debug     bool        // Log every tool call
	OutputDir string      // Directory for saved plots
	Plot      plot.Config // Default plot appearance
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		OutputDir: filepath.Join(os.TempDir(), "quadrant-plots"),
		Plot:      plot.DefaultConfig(),
	}
}

// ConfigFromEnv returns DefaultConfig overridden by QUADRANT_MCP_* variables.
//
//	QUADRANT_MCP_LOG_LEVEL=debug   enable debug logging
//	QUADRANT_MCP_OUTPUT_DIR=...    directory for saved plots
//	QUADRANT_MCP_PLOT_SIZE=400     default plot size in pixels
//	QUADRANT_MCP_SHADE_COLOR=#RRGGBB
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if strings.EqualFold(os.Getenv("QUADRANT_MCP_LOG_LEVEL"), "debug") {
		cfg.Debug = true
	}
	if dir := os.Getenv("QUADRANT_MCP_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if v := os.Getenv("QUADRANT_MCP_PLOT_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size >= plot.MinSize && size <= plot.MaxSize {
			cfg.Plot.Size = size
		} else {
			log.Printf("Ignoring QUADRANT_MCP_PLOT_SIZE=%q", v)
		}
	}
	if c := os.Getenv("QUADRANT_MCP_SHADE_COLOR"); c != "" {
		cfg.Plot.ShadeColor = c
	}

	return cfg
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new MCP server instance
func New(cfg Config) *Server {
	return &Server{
		cfg:      cfg,
		angles:   angle.NewClassifier(),
		stations: stations.NewCache(),
	}
}

// Run serves MCP requests from stdin, writing responses to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to w
// until r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "quadrant-tools-mcp",
				"version": "0.1.0",
			},
		},
	}
}
