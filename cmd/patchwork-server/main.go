// Package main is the entry point for the demo patchwork tool host: an MCP
// server whose only tool is the feedback drop-in.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/keyton-weissinger/patchworkmcp/pkg/config"
	"github.com/keyton-weissinger/patchworkmcp/pkg/feedback"
	"github.com/keyton-weissinger/patchworkmcp/pkg/mcp"
	"github.com/keyton-weissinger/patchworkmcp/pkg/version"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Panic recovery
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("panic")
			os.Exit(2)
		}
	}()

	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	server := mcp.NewServer(cfg.Server.Address, logger)
	server.SetServerInfo(cfg.Server.Name, version.String())
	feedback.Register(server, cfg.Server.Name, logger)

	return server.Start(ctx)
}

func loadConfig() (*config.Config, error) {
	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}
