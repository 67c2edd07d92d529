// Package feedback provides tests for environment configuration
package feedback

import "testing"

// TestConfigFromEnvDefaults verifies unset variables fall back to the local
// sidecar and no API key.
func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSidecarURL, "")
	t.Setenv(EnvAPIKey, "")

	cfg := ConfigFromEnv()
	if cfg.SidecarURL != DefaultSidecarURL {
		t.Errorf("SidecarURL = %s, want %s", cfg.SidecarURL, DefaultSidecarURL)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

// TestConfigFromEnvOverride verifies the variables are honored when set.
func TestConfigFromEnvOverride(t *testing.T) {
	t.Setenv(EnvSidecarURL, "https://feedback.prod.example.com")
	t.Setenv(EnvAPIKey, "sekrit")

	cfg := ConfigFromEnv()
	if cfg.SidecarURL != "https://feedback.prod.example.com" {
		t.Errorf("SidecarURL = %s, want override", cfg.SidecarURL)
	}
	if cfg.APIKey != "sekrit" {
		t.Errorf("APIKey = %q, want sekrit", cfg.APIKey)
	}
}
