package littlesearch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for indexing and search.
type Metrics struct {
	DocumentsIndexedTotal prometheus.Counter
	KeywordsIndexed       prometheus.Gauge
	IndexBuildDuration    prometheus.Histogram
	SearchQueriesTotal    *prometheus.CounterVec
	SearchLatency         prometheus.Histogram
	SearchResultsCount    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DocumentsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "documents_indexed_total",
				Help: "Total number of documents merged into the index.",
			},
		),
		KeywordsIndexed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "keywords_indexed",
				Help: "Number of distinct keywords in the index.",
			},
		),
		IndexBuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "index_build_duration_seconds",
				Help:    "Time taken to build the index.",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total search queries by result (hit, miss).",
			},
			[]string{"result"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_latency_seconds",
				Help:    "Search query latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of documents returned per search query.",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
		),
	}
	reg.MustRegister(
		m.DocumentsIndexedTotal,
		m.KeywordsIndexed,
		m.IndexBuildDuration,
		m.SearchQueriesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
	)
	return m
}

func (m *Metrics) observeSearch(results int, elapsed time.Duration) {
	result := "hit"
	if results == 0 {
		result = "miss"
	}
	m.SearchQueriesTotal.WithLabelValues(result).Inc()
	m.SearchLatency.Observe(elapsed.Seconds())
	m.SearchResultsCount.Observe(float64(results))
}

func (m *Metrics) observeBuild(docs int, keywords int, elapsed time.Duration) {
	m.DocumentsIndexedTotal.Add(float64(docs))
	m.KeywordsIndexed.Set(float64(keywords))
	m.IndexBuildDuration.Observe(elapsed.Seconds())
}
