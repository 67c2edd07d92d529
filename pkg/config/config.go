// Package config handles configuration loading and validation for the
// patchwork binaries. The feedback library itself never uses this package:
// it reads its two environment variables directly on every call.
package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keyton-weissinger/patchworkmcp/pkg/feedback"
)

// Config is the top-level configuration for the patchwork binaries.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Sidecar SidecarConfig `yaml:"sidecar"`
}

// ServerConfig configures the demo tool host.
type ServerConfig struct {
	// Name identifies this server in submitted reports.
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// SidecarConfig configures the collector connection.
type SidecarConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// Load loads configuration from a YAML file, then applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv builds configuration from environment variables and defaults
// alone.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// SubmitConfig converts the sidecar section into the feedback library's
// submit configuration.
func (c *Config) SubmitConfig() feedback.SubmitConfig {
	return feedback.SubmitConfig{
		SidecarURL: c.Sidecar.URL,
		APIKey:     c.Sidecar.APIKey,
	}
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if err := validateBaseURL(c.Sidecar.URL); err != nil {
		return fmt.Errorf("sidecar.url: %w", err)
	}
	if c.Server.Name == "" {
		return fmt.Errorf("server.name must not be empty")
	}
	return nil
}

// validateBaseURL ensures the sidecar URL is an absolute http(s) URL with a
// hostname. Private and loopback addresses are allowed: the sidecar
// ordinarily runs next to the server, on loopback by default.
func validateBaseURL(baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme %q: only http and https are allowed", parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return fmt.Errorf("URL has no hostname")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(feedback.EnvSidecarURL); v != "" {
		cfg.Sidecar.URL = v
	}
	if v := os.Getenv(feedback.EnvAPIKey); v != "" {
		cfg.Sidecar.APIKey = v
	}
	if v := os.Getenv("MCP_SERVER_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("MCP_SERVER_NAME"); v != "" {
		cfg.Server.Name = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Name == "" {
		cfg.Server.Name = "patchworkmcp"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Sidecar.URL == "" {
		cfg.Sidecar.URL = feedback.DefaultSidecarURL
	}
}
