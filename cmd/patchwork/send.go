// Package main provides the patchwork CLI application.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/keyton-weissinger/patchworkmcp/pkg/config"
	"github.com/keyton-weissinger/patchworkmcp/pkg/feedback"
)

// sendFlags holds the flags for the send command
type sendFlags struct {
	serverName  string
	whatINeeded string
	whatITried  string
	gapType     string
	suggestion  string
	userGoal    string
	resolution  string
	tools       []string
	agentModel  string
	sessionID   string
	configFile  string
}

var sendOpts sendFlags

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a feedback report to the sidecar",
	Long: `Build a feedback report from flags and submit it to the configured
PatchworkMCP sidecar. Delivery is best-effort: the command always prints
the resulting status message and exits zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(sendOpts.configFile)
		if err != nil {
			return err
		}

		input := map[string]any{
			"what_i_needed": sendOpts.whatINeeded,
			"what_i_tried":  sendOpts.whatITried,
			"gap_type":      sendOpts.gapType,
			"suggestion":    sendOpts.suggestion,
			"user_goal":     sendOpts.userGoal,
			"resolution":    sendOpts.resolution,
			"agent_model":   sendOpts.agentModel,
			"session_id":    sendOpts.sessionID,
			"tools_available": func() []any {
				out := make([]any, len(sendOpts.tools))
				for i, t := range sendOpts.tools {
					out[i] = t
				}
				return out
			}(),
		}
		if err := feedback.ValidateArgs(input); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		serverName := sendOpts.serverName
		if serverName == "" {
			serverName = cfg.Server.Name
		}

		report := feedback.BuildReport(input, serverName)
		msg := feedback.Submit(cmd.Context(), report, cfg.SubmitConfig())
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&sendOpts.serverName, "server-name", "", "Name of the server the report is about")
	sendCmd.Flags().StringVar(&sendOpts.whatINeeded, "what-i-needed", "", "What capability, data, or tool was missing")
	sendCmd.Flags().StringVar(&sendOpts.whatITried, "what-i-tried", "", "What tools or approaches were tried")
	sendCmd.Flags().StringVar(&sendOpts.gapType, "gap-type", feedback.GapOther, "Gap category: missing_tool, incomplete_results, missing_parameter, wrong_format, other")
	sendCmd.Flags().StringVar(&sendOpts.suggestion, "suggestion", "", "What would have helped")
	sendCmd.Flags().StringVar(&sendOpts.userGoal, "user-goal", "", "The original request that surfaced the gap")
	sendCmd.Flags().StringVar(&sendOpts.resolution, "resolution", "", "Outcome: blocked, worked_around, partial")
	sendCmd.Flags().StringSliceVar(&sendOpts.tools, "tools", nil, "Tool names that were considered or tried")
	sendCmd.Flags().StringVar(&sendOpts.agentModel, "agent-model", "", "Model identifier, if known")
	sendCmd.Flags().StringVar(&sendOpts.sessionID, "session-id", uuid.NewString(), "Session identifier")
	sendCmd.Flags().StringVarP(&sendOpts.configFile, "config", "c", "", "Path to configuration file")

	_ = sendCmd.MarkFlagRequired("what-i-needed")
	_ = sendCmd.MarkFlagRequired("what-i-tried")
}
