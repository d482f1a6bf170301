package keyauth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Terminal login flow outcomes, used as metric label values.
const (
	outcomeCommitted       = "committed"
	outcomeTokenRejected   = "token_rejected"
	outcomeSessionRejected = "session_rejected"
	outcomeUnreachable     = "provider_unreachable"
	outcomeBadRequest      = "bad_request"
)

// metrics tracks login flow outcomes and provider call latency.
type metrics struct {
	loginAttempts *prometheus.CounterVec
	providerCalls *prometheus.HistogramVec
}

// newMetrics creates the consumer's collectors. A nil registerer leaves
// them unregistered, which keeps repeated construction safe in tests.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		loginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "keyauth_login_attempts_total",
			Help: "Login callback outcomes by terminal state",
		}, []string{"outcome"}),
		providerCalls: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keyauth_provider_request_seconds",
			Help:    "Duration of provider validate and session calls",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"call"}),
	}
}

// observeOutcome records a terminal login flow state.
func (m *metrics) observeOutcome(outcome string) {
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

// observeCall records the duration of one provider call.
// Call with time.Now() captured at the start of the call.
func (m *metrics) observeCall(call string, start time.Time) {
	m.providerCalls.WithLabelValues(call).Observe(time.Since(start).Seconds())
}
