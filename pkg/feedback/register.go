package feedback

import (
	"context"

	"github.com/keyton-weissinger/patchworkmcp/pkg/mcp"
	"github.com/rs/zerolog"
)

// NewToolHandler builds a handler for the in-repo tool host, bound to the
// hosting server's name. Configuration is read from the environment on every
// call, and the handler never returns an error: whatever happens, the agent
// gets one of the fixed status messages as text content.
func NewToolHandler(serverName string, logger zerolog.Logger) *mcp.ToolHandler {
	return &mcp.ToolHandler{
		Tool: &mcp.Tool{
			Name:        ToolName,
			Description: ToolDescription,
			InputSchema: InputSchema,
		},
		CallFunc: func(ctx context.Context, name string, args map[string]any) (*mcp.ToolResult, error) {
			// Advisory only. Off-schema input still produces a report.
			if err := ValidateArgs(args); err != nil {
				logger.Debug().Err(err).Msg("feedback arguments off schema, applying defaults")
			}

			report := BuildReport(args, serverName)
			msg := NewSubmitter(ConfigFromEnv(), logger).Submit(ctx, report)
			return mcp.NewTextResult(msg), nil
		},
	}
}

// Register is a one-liner to add the feedback tool to a tool host.
func Register(s *mcp.Server, serverName string, logger zerolog.Logger) {
	s.RegisterTool(NewToolHandler(serverName, logger))
}
