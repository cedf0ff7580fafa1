// Package httpx builds the one HTTP client both API clients share, so the
// retry policy is configured in a single place instead of at each call site.
package httpx

import (
	"io"
	"net/http"
	"time"
)

type Config struct {
	Timeout    time.Duration // whole-call budget, retries included
	MaxRetries int           // extra attempts after the first
	Backoff    time.Duration // first retry delay; doubles per attempt
	HostRPS    float64       // per-host pacing, 0 disables
	HostBurst  int
}

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 5
	DefaultBackoff    = 100 * time.Millisecond
)

// retryStatuses is the forcelist. Anything else, 4xx included, is returned
// to the caller as-is, and transport errors or timeouts never retry.
var retryStatuses = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

func New(cfg Config) *http.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}

	var pacer *hostPacer
	if cfg.HostRPS > 0 {
		burst := cfg.HostBurst
		if burst <= 0 {
			burst = 1
		}
		pacer = newHostPacer(cfg.HostRPS, burst)
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &retryTransport{
			base:       http.DefaultTransport,
			maxRetries: cfg.MaxRetries,
			backoff:    cfg.Backoff,
			pacer:      pacer,
		},
	}
}

type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
	backoff    time.Duration
	pacer      *hostPacer
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if t.pacer != nil {
			if err := t.pacer.wait(req.Context(), req.URL); err != nil {
				return nil, err
			}
		}

		res, err := t.base.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if !retryStatuses[res.StatusCode] || attempt >= t.maxRetries {
			return res, nil
		}

		// drain so the connection can be reused before going again
		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(t.backoff << attempt):
		}
	}
}
