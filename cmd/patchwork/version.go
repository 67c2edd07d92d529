// Package main provides the patchwork CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyton-weissinger/patchworkmcp/pkg/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display detailed version information including build date and git commit.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Printf("patchwork version: %s\n", info["version"])
		fmt.Printf("  build date: %s\n", info["buildDate"])
		fmt.Printf("  git commit: %s\n", info["gitCommit"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
