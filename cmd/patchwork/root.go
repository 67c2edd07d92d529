// Package main provides the patchwork CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/keyton-weissinger/patchworkmcp/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "patchwork",
	Short: "PatchworkMCP feedback drop-in",
	Long: `PatchworkMCP - report gaps in an MCP server's tool surface.

The feedback tool lets agents report missing tools, incomplete results,
and missing parameters to a PatchworkMCP sidecar. This CLI submits a
report directly, which is useful for smoke-testing a sidecar deployment.`,
	Version: version.FullString(),
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
