// Package metrics provides Prometheus metrics for the voice session broker.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued tracks room tokens handed out to callers.
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_tokens_issued_total",
			Help: "Total number of room access tokens issued",
		},
	)

	// SessionsCreated tracks session rows opened on issuance.
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_sessions_created_total",
			Help: "Total number of voice sessions created",
		},
	)

	// SessionInsertFailures counts issuances whose session row could not be written.
	SessionInsertFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_session_insert_failures_total",
			Help: "Total number of session inserts that failed during token issuance",
		},
	)

	// SessionsFinalized tracks sessions moved to ended.
	SessionsFinalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_sessions_finalized_total",
			Help: "Total number of voice sessions finalized",
		},
	)

	// SessionDuration observes the authoritative duration of finalized sessions.
	SessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voice_session_duration_seconds",
			Help:    "Duration of finalized voice sessions",
			Buckets: []float64{5, 15, 30, 60, 120, 300, 600, 1200, 3600},
		},
	)

	// CallRecordInsertFailures counts call records dropped after finalization.
	CallRecordInsertFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_call_record_insert_failures_total",
			Help: "Total number of call record inserts that failed after finalization",
		},
	)

	// SessionStateTransitions tracks session state changes.
	SessionStateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_session_state_transitions_total",
			Help: "Total number of session state transitions",
		},
		[]string{"from_state", "to_state"},
	)

	// LiveKitSyncDuration tracks the duration of LiveKit sync operations.
	LiveKitSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voice_livekit_sync_duration_seconds",
			Help:    "Duration of LiveKit room sync operations",
			Buckets: prometheus.DefBuckets,
		},
	)

	// LiveKitSyncErrors tracks errors during LiveKit sync.
	LiveKitSyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voice_livekit_sync_errors_total",
			Help: "Total number of errors during LiveKit sync",
		},
	)

	// WebhookEvents tracks LiveKit webhook deliveries by event name.
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voice_livekit_webhook_events_total",
			Help: "Total number of LiveKit webhook events received",
		},
		[]string{"event"},
	)

	// TokenGenerationDuration tracks token signing time.
	TokenGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voice_token_generation_duration_seconds",
			Help:    "Duration of room token signing",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// HTTPRequestDuration tracks request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voice_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordTokenIssued records a successful issuance and whether its session row was written.
func RecordTokenIssued(sessionCreated bool) {
	TokensIssued.Inc()
	if sessionCreated {
		SessionsCreated.Inc()
		return
	}
	SessionInsertFailures.Inc()
}

// RecordSessionFinalized records a finalized session and its duration.
func RecordSessionFinalized(from string, durationSeconds int) {
	SessionsFinalized.Inc()
	SessionDuration.Observe(float64(durationSeconds))
	SessionStateTransitions.WithLabelValues(from, "ended").Inc()
}

// ObserveTokenGeneration records how long signing took.
func ObserveTokenGeneration(d time.Duration) {
	TokenGenerationDuration.Observe(d.Seconds())
}
