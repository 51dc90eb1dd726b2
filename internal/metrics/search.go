package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "classdex",
			Name:      "searches_total",
			Help:      "Total number of executed searches",
		},
		[]string{"scope", "sort"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "classdex",
			Name:      "search_duration_seconds",
			Help:      "Search pipeline duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"scope"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "classdex",
			Name:      "search_results",
			Help:      "Number of matched results per search before pagination",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	SearchActiveFilters = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "classdex",
			Name:      "search_active_filters",
			Help:      "Number of active filter facets per search",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 8, 12, 16},
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called
// once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(SearchActiveFilters)
	searchMetricsRegistered = true
}
