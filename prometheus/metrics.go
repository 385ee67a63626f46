package prometheus

import (
	"sales-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Search and quoting metrics
	SearchOperationsCounter     *prometheus.CounterVec
	QuotesBuiltCounter          prometheus.Counter
	UnresolvedQuoteLinesCounter prometheus.Counter

	// Catalog metrics
	CatalogSizeGauge   *prometheus.GaugeVec
	CatalogReloadTotal prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Search dispatch metrics, labelled by the mode the request resolved to
	SearchOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_search_operations_total",
			Help: "Total number of search operations by dispatch mode",
		},
		[]string{"mode"},
	)

	QuotesBuiltCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_quotes_built_total",
			Help: "Total number of quotes built",
		},
	)

	// Unresolved lines price as zero by contract; this counter keeps the
	// leniency observable.
	UnresolvedQuoteLinesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_unresolved_quote_lines_total",
			Help: "Total number of quote lines referencing unknown SKUs",
		},
	)

	CatalogSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_catalog_products",
			Help: "Number of catalog entries per category",
		},
		[]string{"category"},
	)

	CatalogReloadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_reloads_total",
			Help: "Total number of catalog reloads",
		},
	)
}

// RecordSearchOperation increments the counter for search operations.
// Safe to call before InitMetrics (no-op), which keeps the engine usable
// in tests without a metrics registry.
func RecordSearchOperation(mode string) {
	if SearchOperationsCounter != nil {
		SearchOperationsCounter.WithLabelValues(mode).Inc()
	}
}

// RecordQuote increments the quote counter and accounts for unresolved lines.
func RecordQuote(unresolvedLines int) {
	if QuotesBuiltCounter != nil {
		QuotesBuiltCounter.Inc()
	}
	if UnresolvedQuoteLinesCounter != nil && unresolvedLines > 0 {
		UnresolvedQuoteLinesCounter.Add(float64(unresolvedLines))
	}
}

// SetCatalogSize updates the per-category catalog size gauge.
func SetCatalogSize(category string, count int) {
	if CatalogSizeGauge != nil {
		CatalogSizeGauge.WithLabelValues(category).Set(float64(count))
	}
}

// RecordCatalogReload increments the reload counter.
func RecordCatalogReload() {
	if CatalogReloadTotal != nil {
		CatalogReloadTotal.Inc()
	}
}
