// Package metrics provides Prometheus metrics for the defensive metrics
// dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus instruments for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Dataset metrics - loading and caching behavior
	datasetLoads        *prometheus.CounterVec
	datasetLoadErrors   *prometheus.CounterVec
	datasetLoadDuration prometheus.Histogram
	seasonRows          *prometheus.GaugeVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter

	// Query metrics - profile and leaderboard traffic
	profileRequests     prometheus.Counter
	leaderboardRequests prometheus.Counter
	emptyResults        *prometheus.CounterVec

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
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
		namespace:        "defmet",
		subsystem:        "dashboard",
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

// initializeMetrics creates all the Prometheus instruments.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	// Dataset metrics
	m.datasetLoads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_loads_total",
			Help:      "Total number of successful season CSV loads by season",
		},
		[]string{"season"},
	)

	m.datasetLoadErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_load_errors_total",
			Help:      "Total number of failed season CSV loads by season",
		},
		[]string{"season"},
	)

	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Histogram of season CSV parse duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.seasonRows = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "season_rows",
			Help:      "Number of player rows loaded per season",
		},
		[]string{"season"},
	)

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "season_cache_hits_total",
		Help:      "Total number of season cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "season_cache_misses_total",
		Help:      "Total number of season cache misses (each miss parses a file)",
	})

	// Query metrics
	m.profileRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profile_requests_total",
		Help:      "Total number of player profile lookups",
	})

	m.leaderboardRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_requests_total",
		Help:      "Total number of leaderboard queries",
	})

	m.emptyResults = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "empty_results_total",
			Help:      "Total number of valid empty results served, by kind",
		},
		[]string{"kind"},
	)

	// HTTP performance metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
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
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint and class",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Dataset helpers.

// RecordDatasetLoad increments the successful-load counter for a season.
func RecordDatasetLoad(season string) {
	if globalManager.enabled {
		globalManager.datasetLoads.WithLabelValues(season).Inc()
	}
}

// RecordDatasetLoadError increments the failed-load counter for a season.
func RecordDatasetLoadError(season string) {
	if globalManager.enabled {
		globalManager.datasetLoadErrors.WithLabelValues(season).Inc()
	}
}

// RecordDatasetLoadDuration observes one load duration in milliseconds.
func RecordDatasetLoadDuration(ms float64) {
	if globalManager.enabled {
		globalManager.datasetLoadDuration.Observe(ms)
	}
}

// UpdateSeasonRows sets the loaded row count for a season.
func UpdateSeasonRows(season string, rows int) {
	if globalManager.enabled {
		globalManager.seasonRows.WithLabelValues(season).Set(float64(rows))
	}
}

// RecordCacheHit increments the season cache hit counter.
func RecordCacheHit() {
	if globalManager.enabled {
		globalManager.cacheHits.Inc()
	}
}

// RecordCacheMiss increments the season cache miss counter.
func RecordCacheMiss() {
	if globalManager.enabled {
		globalManager.cacheMisses.Inc()
	}
}

// Query helpers.

// RecordProfileRequest increments the profile lookup counter.
func RecordProfileRequest() {
	if globalManager.enabled {
		globalManager.profileRequests.Inc()
	}
}

// RecordLeaderboardRequest increments the leaderboard query counter.
func RecordLeaderboardRequest() {
	if globalManager.enabled {
		globalManager.leaderboardRequests.Inc()
	}
}

// RecordEmptyResult counts a valid empty result of the given kind
// (e.g. "leaderboard", "players").
func RecordEmptyResult(kind string) {
	if globalManager.enabled {
		globalManager.emptyResults.WithLabelValues(kind).Inc()
	}
}

// HTTP helpers.

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// RecordErrorByEndpoint counts one HTTP error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// System helpers.

// UpdateSystemMemoryUsage sets the allocated-memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime observes an average GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the custom registry served at /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
