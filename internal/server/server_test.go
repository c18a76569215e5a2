package server

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/quadrant-tools-mcp/internal/plot"
)

func TestNew(t *testing.T) {
	s := New(DefaultConfig())
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.stations == nil {
		t.Fatal("New() did not initialize station cache")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Debug {
		t.Error("Debug should be off by default")
	}
	if filepath.Base(cfg.OutputDir) != "quadrant-plots" {
		t.Errorf("OutputDir: got %s", cfg.OutputDir)
	}
	if cfg.Plot != plot.DefaultConfig() {
		t.Errorf("Plot: got %+v, want plot.DefaultConfig()", cfg.Plot)
	}
}

func TestConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUADRANT_MCP_LOG_LEVEL", "DEBUG")
	t.Setenv("QUADRANT_MCP_OUTPUT_DIR", dir)
	t.Setenv("QUADRANT_MCP_PLOT_SIZE", "256")
	t.Setenv("QUADRANT_MCP_SHADE_COLOR", "#00FF00")

	cfg := ConfigFromEnv()

	if !cfg.Debug {
		t.Error("Debug: got false, want true")
	}
	if cfg.OutputDir != dir {
		t.Errorf("OutputDir: got %s, want %s", cfg.OutputDir, dir)
	}
	if cfg.Plot.Size != 256 {
		t.Errorf("Plot.Size: got %d, want 256", cfg.Plot.Size)
	}
	if cfg.Plot.ShadeColor != "#00FF00" {
		t.Errorf("Plot.ShadeColor: got %s, want #00FF00", cfg.Plot.ShadeColor)
	}
}

func TestConfigFromEnv_InvalidSize(t *testing.T) {
	for _, v := range []string{"abc", "10", "4097", "1048576"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("QUADRANT_MCP_PLOT_SIZE", v)

			cfg := ConfigFromEnv()
			if cfg.Plot.Size != plot.DefaultConfig().Size {
				t.Errorf("Plot.Size: got %d, want default", cfg.Plot.Size)
			}
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New(DefaultConfig())
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "init-1",
		Method:  "initialize",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "init-1" {
		t.Errorf("ID: got %v, want init-1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "quadrant-tools-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New(DefaultConfig())
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "ping-1",
		Method:  "ping",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New(DefaultConfig())
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Expected %d tools, got %d", len(GetToolDefinitions()), len(toolsList))
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := New(DefaultConfig())
	req := &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	// Notifications don't get responses
	if resp := s.handleRequest(req); resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := New(DefaultConfig())
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "nonexistent/method",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("Error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestServe(t *testing.T) {
	s := New(DefaultConfig())

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":"call-2","method":"tools/call","params":{"name":"quadrant_from_angle","arguments":{"angle":90}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"nonexistent/method"}`,
		`{"jsonrpc":"2.0","id":null,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	var got []MCPResponse
	dec := json.NewDecoder(&out)
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.JSONRPC != "2.0" {
			t.Errorf("id %v: JSONRPC got %s, want 2.0", resp.ID, resp.JSONRPC)
		}
		got = append(got, resp)
	}

	// JSON numbers decode as float64
	wantIDs := []interface{}{float64(1), "call-2", float64(3), nil}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d responses, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("response %d: ID got %v (%T), want %v (%T)", i, got[i].ID, got[i].ID, want, want)
		}
	}

	if got[1].Error != nil {
		t.Errorf("tools/call: unexpected error %+v", got[1].Error)
	}
	text := got[1].Result.(map[string]interface{})["content"].([]interface{})[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(text, `"FIRST"`) || !strings.Contains(text, `"SECOND"`) {
		t.Errorf("tools/call: got %s, want FIRST and SECOND", text)
	}

	if got[2].Error == nil || got[2].Error.Code != -32601 {
		t.Errorf("unknown method: got error %+v, want -32601", got[2].Error)
	}
	if got[2].Result != nil {
		t.Errorf("unknown method: result should be omitted, got %v", got[2].Result)
	}
}
