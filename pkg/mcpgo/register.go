// Package mcpgo wires the feedback tool into servers built on
// github.com/mark3labs/mcp-go.
package mcpgo

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/keyton-weissinger/patchworkmcp/pkg/feedback"
)

// Options overrides the environment-derived sidecar connection. Pass nil to
// use FEEDBACK_SIDECAR_URL and FEEDBACK_API_KEY.
type Options struct {
	SidecarURL string
	APIKey     string
}

func (o *Options) config() feedback.SubmitConfig {
	cfg := feedback.ConfigFromEnv()
	if o == nil {
		return cfg
	}
	if o.SidecarURL != "" {
		cfg.SidecarURL = o.SidecarURL
	}
	if o.APIKey != "" {
		cfg.APIKey = o.APIKey
	}
	return cfg
}

// NewFeedbackTool returns the MCP tool definition for registration.
func NewFeedbackTool() mcp.Tool {
	return mcp.NewToolWithRawSchema(feedback.ToolName, feedback.ToolDescription, feedback.InputSchema)
}

// NewFeedbackHandler returns a tool handler bound to a server name. Pass nil
// opts to configure from the environment on each call.
func NewFeedbackHandler(serverName string, opts *Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report := feedback.BuildReport(req.GetArguments(), serverName)
		msg := feedback.Submit(ctx, report, opts.config())
		return mcp.NewToolResultText(msg), nil
	}
}

// RegisterFeedbackTool is a one-liner to add the feedback tool to an mcp-go
// server:
//
//	s := server.NewMCPServer("my-server", "1.0.0")
//	mcpgo.RegisterFeedbackTool(s, "my-server", nil)
func RegisterFeedbackTool(s *server.MCPServer, serverName string, opts *Options) {
	s.AddTool(NewFeedbackTool(), NewFeedbackHandler(serverName, opts))
}
