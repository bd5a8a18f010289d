// Package metrics provides Prometheus metrics for the jobmatch
// recommendation service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every Prometheus metric for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Serving metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Recommendation metrics
	scoringLatency   prometheus.Histogram
	candidateSetSize prometheus.Histogram
	resultsReturned  prometheus.Histogram

	// Index lifecycle metrics
	indexRebuilds       prometheus.Counter
	indexRebuildLatency prometheus.Histogram
	corpusSize          prometheus.Gauge
	userCount           prometheus.Gauge

	// Personality cache metrics
	cacheHits    prometheus.Gauge
	cacheMisses  prometheus.Gauge
	cacheEntries prometheus.Gauge

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager with its own registry, keeping default Go collector
// noise out of the scrape.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "jobmatch",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.scoringLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "scoring_batch_duration_ms",
		Help:      "Duration of one candidate scoring batch in milliseconds.",
		Buckets:   m.histogramBuckets,
	})

	m.candidateSetSize = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "candidate_set_size",
		Help:      "Candidate set size per recommendation request.",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	})

	m.resultsReturned = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "results_returned",
		Help:      "Result count per recommendation request after filtering.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
	})

	m.indexRebuilds = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "index_rebuilds_total",
		Help:      "Completed index rebuilds.",
	})

	m.indexRebuildLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "index_rebuild_duration_ms",
		Help:      "Corpus load plus index build duration in milliseconds.",
		Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 30000},
	})

	m.corpusSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "corpus_jobs",
		Help:      "Jobs in the currently served index snapshot.",
	})

	m.userCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "user_profiles",
		Help:      "User profiles in the current directory.",
	})

	m.cacheHits = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "personality_cache_hits",
		Help:      "Cumulative personality cache hits for the current snapshot.",
	})

	m.cacheMisses = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "personality_cache_misses",
		Help:      "Cumulative personality cache misses for the current snapshot.",
	})

	m.cacheEntries = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "personality_cache_entries",
		Help:      "Live entries in the personality cache.",
	})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Allocated heap bytes.",
	})

	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current goroutine count.",
	})

	return m
}

// Handler serves the manager's registry, for mounting at /metrics.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package-level helpers against the global manager.

func Handler() http.Handler { return globalManager.Handler() }

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}

func RecordScoringBatch(ms float64)       { globalManager.scoringLatency.Observe(ms) }
func RecordCandidateSetSize(n int)        { globalManager.candidateSetSize.Observe(float64(n)) }
func RecordResultsReturned(n int)         { globalManager.resultsReturned.Observe(float64(n)) }
func RecordIndexRebuild(ms float64)       { globalManager.indexRebuilds.Inc(); globalManager.indexRebuildLatency.Observe(ms) }
func UpdateCorpusSize(n int)              { globalManager.corpusSize.Set(float64(n)) }
func UpdateUserCount(n int)               { globalManager.userCount.Set(float64(n)) }
func UpdateCacheStats(hits, misses int64, entries int) {
	globalManager.cacheHits.Set(float64(hits))
	globalManager.cacheMisses.Set(float64(misses))
	globalManager.cacheEntries.Set(float64(entries))
}
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }
func UpdateSystemGoroutineCount(n int)     { globalManager.systemGoroutineCount.Set(float64(n)) }
