package provider

import (
	"net/http"
	"time"
)

// Option configures a provider Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	scheme     string
	timeout    time.Duration
	maxTries   uint
}

// WithHTTPClient sets a custom HTTP client for provider requests.
// This is useful for testing with httptest servers or injecting
// custom transports. When set, WithTimeout is ignored; configure the
// timeout on the supplied client instead.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithScheme sets the URL scheme used for provider endpoints.
// Defaults to "http".
func WithScheme(scheme string) Option {
	return func(o *options) {
		if scheme != "" {
			o.scheme = scheme
		}
	}
}

// WithTimeout bounds each provider request.
// Defaults to 10 seconds. A stalled provider fails the request with
// ErrUnreachable instead of stalling the caller indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithRetries sets the total number of attempts per provider request,
// with exponential backoff between attempts. Defaults to 1 (no retry).
func WithRetries(tries uint) Option {
	return func(o *options) {
		if tries > 0 {
			o.maxTries = tries
		}
	}
}
