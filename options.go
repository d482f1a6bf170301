package keyauth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/keyauth/pkg/provider"
	"github.com/dmitrymomot/keyauth/pkg/session"
)

// Option configures the Consumer.
type Option func(*options)

type options struct {
	store        session.Store
	log          *slog.Logger
	registerer   prometheus.Registerer
	providerOpts []provider.Option
}

// WithSessionStore sets the externally supplied session store.
// Required: login, logout and session exposure all persist through it.
func WithSessionStore(store session.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger for the consumer.
// Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics registers the consumer's Prometheus collectors with the
// given registerer. Without this option metrics are collected but not
// registered anywhere.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithHTTPClient sets a custom HTTP client for provider calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.providerOpts = append(o.providerOpts, provider.WithHTTPClient(client))
	}
}

// WithProviderScheme sets the URL scheme for provider endpoints.
// Defaults to "http".
func WithProviderScheme(scheme string) Option {
	return func(o *options) {
		o.providerOpts = append(o.providerOpts, provider.WithScheme(scheme))
	}
}

// WithProviderTimeout bounds each provider call. Defaults to 10 seconds.
func WithProviderTimeout(d time.Duration) Option {
	return func(o *options) {
		o.providerOpts = append(o.providerOpts, provider.WithTimeout(d))
	}
}

// WithProviderRetries sets the total number of attempts per provider call.
// Defaults to 1 (no retry).
func WithProviderRetries(tries uint) Option {
	return func(o *options) {
		o.providerOpts = append(o.providerOpts, provider.WithRetries(tries))
	}
}
