// Package mcpgo provides tests for the mcp-go integration
package mcpgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/keyton-weissinger/patchworkmcp/pkg/feedback"
)

// TestNewFeedbackTool verifies the tool definition carries the shared name
// and description.
func TestNewFeedbackTool(t *testing.T) {
	tool := NewFeedbackTool()
	if tool.Name != feedback.ToolName {
		t.Errorf("tool name = %s, want %s", tool.Name, feedback.ToolName)
	}
	if tool.Description != feedback.ToolDescription {
		t.Errorf("tool description does not match feedback.ToolDescription")
	}
}

// TestNewFeedbackHandler verifies a handler call submits the report and
// returns the status message as text, never an error.
func TestNewFeedbackHandler(t *testing.T) {
	var gotAuth string
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer collector.Close()

	handler := NewFeedbackHandler("my-server", &Options{
		SidecarURL: collector.URL,
		APIKey:     "sekrit",
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = feedback.ToolName
	req.Params.Arguments = map[string]any{
		"what_i_needed": "a log-tail tool",
		"what_i_tried":  "grepped output manually",
		"gap_type":      "missing_tool",
	}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v, the feedback tool must never fail", err)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want Bearer sekrit", gotAuth)
	}

	if len(result.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(result.Content))
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want mcp.TextContent", result.Content[0])
	}
	if tc.Text != feedback.MsgAccepted {
		t.Errorf("text = %q, want feedback.MsgAccepted", tc.Text)
	}
}

// TestOptionsFallBackToEnv verifies nil options read the environment.
func TestOptionsFallBackToEnv(t *testing.T) {
	t.Setenv(feedback.EnvSidecarURL, "https://feedback.prod.example.com")
	t.Setenv(feedback.EnvAPIKey, "from-env")

	var opts *Options
	cfg := opts.config()
	if cfg.SidecarURL != "https://feedback.prod.example.com" {
		t.Errorf("SidecarURL = %s, want env value", cfg.SidecarURL)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %s, want from-env", cfg.APIKey)
	}

	partial := &Options{SidecarURL: "http://localhost:9000"}
	cfg = partial.config()
	if cfg.SidecarURL != "http://localhost:9000" {
		t.Errorf("SidecarURL = %s, want override", cfg.SidecarURL)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %s, env value should survive a partial override", cfg.APIKey)
	}
}
