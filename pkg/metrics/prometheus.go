// Package metrics provides Prometheus metrics for the roster ingestion service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the rosterd service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Import job metrics
	rowsDecoded    prometheus.Counter
	teamsCreated   prometheus.Counter
	teamsSkipped   prometheus.Counter
	draftsRejected prometheus.Counter
	importDuration prometheus.Histogram

	// Score reconciliation metrics
	scoresUpdated      prometheus.Counter
	identifiersMissing prometheus.Counter
	scoreParseFailures prometheus.Counter
	indexCollisions    prometheus.Counter
	reconcileDuration  prometheus.Histogram

	// Store health metrics
	storeWriteFailures prometheus.Counter
	teamsTotal         prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rosterd",
		subsystem:        "ingest",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.rowsDecoded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "rows_decoded_total",
		Help: "Raw spreadsheet rows decoded across all jobs.",
	})
	m.teamsCreated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "teams_created_total",
		Help: "Teams persisted by the import job.",
	})
	m.teamsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "teams_skipped_total",
		Help: "Admitted drafts skipped because a store match already existed.",
	})
	m.draftsRejected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "drafts_rejected_total",
		Help: "Drafts dropped by admission validation.",
	})
	m.importDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "import_duration_ms",
		Help:    "Wall time of roster import runs in milliseconds.",
		Buckets: m.histogramBuckets,
	})

	m.scoresUpdated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "scores_updated_total",
		Help: "Team score writes issued by the reconciliation job.",
	})
	m.identifiersMissing = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "identifiers_missing_total",
		Help: "External identifiers that resolved to no team.",
	})
	m.scoreParseFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "score_parse_failures_total",
		Help: "Resolved rows whose score field was unparseable.",
	})
	m.indexCollisions = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "index_collisions_total",
		Help: "Normalized identifier keys claimed by more than one team.",
	})
	m.reconcileDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "reconcile_duration_ms",
		Help:    "Wall time of score reconciliation runs in milliseconds.",
		Buckets: m.histogramBuckets,
	})

	m.storeWriteFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "store_write_failures_total",
		Help: "Per-row store writes that failed and were recorded, not fatal.",
	})
	m.teamsTotal = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "teams_total",
		Help: "Teams currently tracked in the canonical store.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "requests_total",
		Help: "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name:    "request_duration_ms",
		Help:    "HTTP request latency in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.httpErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "errors_total",
		Help: "HTTP error responses by endpoint and class.",
	}, []string{"endpoint", "class"})
}

// GetRegistry returns the registry backing the global manager, for serving
// /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordRowsDecoded adds n decoded rows.
func RecordRowsDecoded(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.rowsDecoded.Add(float64(n))
	}
}

// RecordTeamCreated counts one persisted team.
func RecordTeamCreated() {
	if globalManager.enabled {
		globalManager.teamsCreated.Inc()
	}
}

// RecordTeamSkipped counts one duplicate-skipped draft.
func RecordTeamSkipped() {
	if globalManager.enabled {
		globalManager.teamsSkipped.Inc()
	}
}

// RecordDraftRejected counts one draft dropped by admission validation.
func RecordDraftRejected() {
	if globalManager.enabled {
		globalManager.draftsRejected.Inc()
	}
}

// RecordImportDuration observes one import run's wall time.
func RecordImportDuration(ms float64) {
	if globalManager.enabled {
		globalManager.importDuration.Observe(ms)
	}
}

// RecordScoreUpdated counts one successful score write.
func RecordScoreUpdated() {
	if globalManager.enabled {
		globalManager.scoresUpdated.Inc()
	}
}

// RecordIdentifierMissing counts one unresolvable external identifier.
func RecordIdentifierMissing() {
	if globalManager.enabled {
		globalManager.identifiersMissing.Inc()
	}
}

// RecordScoreParseFailure counts one unparseable score cell.
func RecordScoreParseFailure() {
	if globalManager.enabled {
		globalManager.scoreParseFailures.Inc()
	}
}

// RecordIndexCollision counts one first-registrant-wins index collision.
func RecordIndexCollision() {
	if globalManager.enabled {
		globalManager.indexCollisions.Inc()
	}
}

// RecordReconcileDuration observes one reconciliation run's wall time.
func RecordReconcileDuration(ms float64) {
	if globalManager.enabled {
		globalManager.reconcileDuration.Observe(ms)
	}
}

// RecordStoreWriteFailure counts one tolerated per-row write failure.
func RecordStoreWriteFailure() {
	if globalManager.enabled {
		globalManager.storeWriteFailures.Inc()
	}
}

// UpdateTeamsTotal sets the current store size.
func UpdateTeamsTotal(n int) {
	if globalManager.enabled {
		globalManager.teamsTotal.Set(float64(n))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request's latency.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// RecordHTTPError counts one error response by class.
func RecordHTTPError(endpoint, class string) {
	if globalManager.enabled {
		globalManager.httpErrors.WithLabelValues(endpoint, class).Inc()
	}
}
