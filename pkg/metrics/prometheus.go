// Package metrics provides Prometheus metrics for the shelfrank catalog service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Dataset metrics
	datasetLoads        prometheus.Counter
	datasetLoadDuration prometheus.Histogram
	datasetRowsLoaded   prometheus.Gauge
	datasetRowsSkipped  prometheus.Counter
	corpusSize          prometheus.Gauge
	corpusMeanRating    prometheus.Gauge

	// Query metrics
	queriesTotal        prometheus.Counter
	queryLatency        prometheus.Histogram
	queryMatchedItems   prometheus.Histogram
	scoringPassDuration prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "shelfrank",
		subsystem:        "catalog",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_loads_total",
		Help:      "Total number of dataset loads, including reloads",
	})

	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Dataset load and parse duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.datasetRowsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows_loaded",
		Help:      "Number of rows loaded from the last dataset read",
	})

	m.datasetRowsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows_skipped_total",
		Help:      "Total number of malformed rows skipped during dataset loads",
	})

	m.corpusSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "corpus_size",
		Help:      "Number of items in the current corpus snapshot",
	})

	m.corpusMeanRating = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "corpus_mean_rating",
		Help:      "Mean rating across rated items in the current corpus snapshot",
	})

	m.queriesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queries_total",
		Help:      "Total number of catalog queries served",
	})

	m.queryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_latency_milliseconds",
		Help:      "Catalog query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.queryMatchedItems = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_matched_items",
		Help:      "Number of items matched by catalog queries after filtering",
		Buckets:   []float64{0, 1, 10, 100, 1000, 10000, 100000},
	})

	m.scoringPassDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_pass_duration_milliseconds",
		Help:      "Duration of a full corpus scoring pass in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorsByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type and severity",
		},
		[]string{"error_type", "severity"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Average garbage collection pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordDatasetLoad increments the dataset load counter and records its duration.
func RecordDatasetLoad(durationMs float64) {
	globalManager.datasetLoads.Inc()
	globalManager.datasetLoadDuration.Observe(durationMs)
}

// UpdateDatasetRowsLoaded sets the row count of the last dataset read.
func UpdateDatasetRowsLoaded(n int) {
	globalManager.datasetRowsLoaded.Set(float64(n))
}

// RecordDatasetRowSkipped counts a malformed row skipped during load.
func RecordDatasetRowSkipped() {
	globalManager.datasetRowsSkipped.Inc()
}

// UpdateCorpusSize sets the current corpus snapshot size.
func UpdateCorpusSize(n int) {
	globalManager.corpusSize.Set(float64(n))
}

// UpdateCorpusMeanRating sets the corpus-wide mean rating.
func UpdateCorpusMeanRating(c float64) {
	globalManager.corpusMeanRating.Set(c)
}

// RecordQuery counts a served query, its latency and the matched item count.
func RecordQuery(latencyMs float64, matched int) {
	globalManager.queriesTotal.Inc()
	globalManager.queryLatency.Observe(latencyMs)
	globalManager.queryMatchedItems.Observe(float64(matched))
}

// RecordScoringPass records the duration of a full corpus scoring pass.
func RecordScoringPass(durationMs float64) {
	globalManager.scoringPassDuration.Observe(durationMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error with endpoint, method and type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage sets the current heap allocation.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}

// RecordSystemGCPauseTime records an observed GC pause time.
func RecordSystemGCPauseTime(ms float64) {
	globalManager.systemGCPauseTime.Observe(ms)
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
