package feedback

import "os"

// Environment variables consumed by the submitter. They are read fresh on
// each call; the process is free to change them, though in practice they are
// set once at startup.
const (
	EnvSidecarURL = "FEEDBACK_SIDECAR_URL"
	EnvAPIKey     = "FEEDBACK_API_KEY"
)

// DefaultSidecarURL is where the sidecar listens when nothing is configured.
const DefaultSidecarURL = "http://localhost:8099"

// SubmitConfig tells the submitter where the sidecar lives and how to
// authenticate. An empty APIKey means no Authorization header is sent.
type SubmitConfig struct {
	SidecarURL string
	APIKey     string
}

// ConfigFromEnv builds a SubmitConfig from the process environment. It cannot
// fail: an unset sidecar URL falls back to the local default.
func ConfigFromEnv() SubmitConfig {
	return SubmitConfig{
		SidecarURL: getEnv(EnvSidecarURL, DefaultSidecarURL),
		APIKey:     os.Getenv(EnvAPIKey),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
