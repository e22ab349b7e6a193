// Package telemetry provides Prometheus metrics for the mock server.
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	ChatMessagesAppended prometheus.Counter
	StreamSessions       prometheus.Counter
	StreamResponses      prometheus.Counter
	OAuthTokensIssued    prometheus.Counter

	// Gauges
	ActiveStreamsGauge prometheus.Gauge

	// Histograms (seconds)
	StreamSessionDuration prometheus.Observer

	// Per-route request counts
	HTTPRequests *prometheus.CounterVec

	// Storage latencies (seconds)
	StorageReadDuration   prometheus.Observer
	StorageWriteDuration  prometheus.Observer
	StorageCommitDuration prometheus.Observer
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		ChatMessagesAppended = promauto.NewCounter(prometheus.CounterOpts{Name: "ytmock_chat_messages_appended_total", Help: "Number of chat messages appended to chat logs"})
		StreamSessions = promauto.NewCounter(prometheus.CounterOpts{Name: "ytmock_chat_stream_sessions_total", Help: "Number of chat stream sessions opened"})
		StreamResponses = promauto.NewCounter(prometheus.CounterOpts{Name: "ytmock_chat_stream_responses_total", Help: "Number of responses emitted across chat streams"})
		OAuthTokensIssued = promauto.NewCounter(prometheus.CounterOpts{Name: "ytmock_oauth_tokens_issued_total", Help: "Number of mock OAuth access tokens issued"})
		ActiveStreamsGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "ytmock_chat_active_streams", Help: "Currently open chat stream sessions"})
		StreamSessionDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "ytmock_chat_stream_session_duration_seconds", Help: "Chat stream session duration seconds", Buckets: prometheus.DefBuckets})
		HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{Name: "ytmock_http_requests_total", Help: "HTTP requests by method and status"}, []string{"method", "status"})
		StorageReadDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "ytmock_storage_read_duration_seconds", Help: "Pebble read latency seconds", Buckets: prometheus.DefBuckets})
		StorageWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "ytmock_storage_write_duration_seconds", Help: "Pebble write latency seconds", Buckets: prometheus.DefBuckets})
		StorageCommitDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "ytmock_storage_batch_commit_duration_seconds", Help: "Pebble batch commit latency seconds", Buckets: prometheus.DefBuckets})
	})
}

// StorageMetrics adapts the storage layer's metrics hook onto Prometheus.
// It is safe to use before Init; observations are dropped until metrics
// are registered.
type StorageMetrics struct{}

func (StorageMetrics) ObserveWrite(elapsed time.Duration, _ int) {
	if StorageWriteDuration != nil {
		StorageWriteDuration.Observe(elapsed.Seconds())
	}
}

func (StorageMetrics) ObserveRead(elapsed time.Duration, _ int) {
	if StorageReadDuration != nil {
		StorageReadDuration.Observe(elapsed.Seconds())
	}
}

func (StorageMetrics) ObserveBatchCommit(elapsed time.Duration, _ int, _ int) {
	if StorageCommitDuration != nil {
		StorageCommitDuration.Observe(elapsed.Seconds())
	}
}

// StreamOpened marks a new stream session.
func StreamOpened() {
	if StreamSessions != nil {
		StreamSessions.Inc()
	}
	if ActiveStreamsGauge != nil {
		ActiveStreamsGauge.Inc()
	}
}

// StreamClosed marks a finished stream session.
func StreamClosed(seconds float64) {
	if ActiveStreamsGauge != nil {
		ActiveStreamsGauge.Dec()
	}
	if StreamSessionDuration != nil {
		StreamSessionDuration.Observe(seconds)
	}
}
