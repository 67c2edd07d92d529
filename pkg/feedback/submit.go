package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	submitTimeout = 5 * time.Second
	endpointPath  = "/api/feedback"
	userAgent     = "PatchworkMCP-Go/1.0"
)

// logPrefix makes unsent-payload log lines greppable in any log aggregator,
// so undelivered feedback can be recovered from whatever captures stderr.
const logPrefix = "PATCHWORKMCP_UNSENT_FEEDBACK"

// The four submission outcomes, as seen by the calling agent. Submit returns
// exactly one of these; callers must not pattern-match anything finer.
const (
	MsgAccepted = "Thank you. Your feedback has been recorded and will be " +
		"used to improve this server's capabilities."
	MsgClientError = "Feedback noted (HTTP client error)."
	MsgRejected    = "Feedback noted (delivery issue, but recorded locally)."
	MsgUnreachable = "Feedback noted (sidecar unavailable, but your input is appreciated)."
)

// Submitter delivers reports to the sidecar. Each Submit call is a single
// fire-and-forget POST; there is no retry and no shared state between calls.
type Submitter struct {
	cfg    SubmitConfig
	logger zerolog.Logger

	// timeout bounds the whole round trip. Tests shrink it.
	timeout time.Duration

	// newClient builds the transport for one submission. Client construction
	// is the only locally-fatal condition the contract names, so it stays
	// injectable even though the default can never fail.
	newClient func(timeout time.Duration) (*http.Client, error)
}

// NewSubmitter returns a Submitter that traces delivery problems through
// logger. Diagnostics are operator-facing only; the caller always gets a
// soft status message.
func NewSubmitter(cfg SubmitConfig, logger zerolog.Logger) *Submitter {
	return &Submitter{
		cfg:     cfg,
		logger:  logger,
		timeout: submitTimeout,
		newClient: func(timeout time.Duration) (*http.Client, error) {
			return &http.Client{Timeout: timeout}, nil
		},
	}
}

// Submit posts the report to <sidecar>/api/feedback and maps the outcome to
// one of the four fixed messages. It never returns an error and never blocks
// longer than the configured timeout plus client construction.
//
// Only status 201 counts as accepted. Any other received status — other 2xx
// codes included — is "delivered but rejected"; the sidecar's documented
// contract signals success exclusively with 201.
func (s *Submitter) Submit(ctx context.Context, report Report) string {
	client, err := s.newClient(s.timeout)
	if err != nil {
		return MsgClientError
	}

	body, err := json.Marshal(report)
	if err != nil {
		return MsgClientError
	}

	endpoint := s.cfg.SidecarURL + endpointPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		s.logUnsent(body, fmt.Sprintf("bad_request: %v", err))
		return MsgUnreachable
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		s.logUnsent(body, fmt.Sprintf("unreachable: %v", err))
		return MsgUnreachable
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		s.logUnsent(body, fmt.Sprintf("status_%d", resp.StatusCode))
		return MsgRejected
	}

	s.logger.Debug().Str("sidecar", s.cfg.SidecarURL).Msg("feedback submitted")
	return MsgAccepted
}

// logUnsent emits a single warning event carrying the full payload, so an
// undelivered report survives in the host's logs.
func (s *Submitter) logUnsent(body []byte, reason string) {
	s.logger.Warn().
		Str("reason", reason).
		RawJSON("payload", body).
		Msg(logPrefix)
}

// Submit is the package-level convenience used by tool handlers: one report,
// one delivery attempt, configuration as given. Diagnostics go to stderr.
func Submit(ctx context.Context, report Report, cfg SubmitConfig) string {
	return NewSubmitter(cfg, defaultLogger()).Submit(ctx, report)
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", "feedback").Logger()
}
