// Package metrics registers the service's Prometheus collectors and exposes
// them for scraping.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecordsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materials_records_total",
		Help: "Material records run through the processing pipeline",
	})
	RecordsImputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materials_imputed_total",
		Help: "Material records with at least one imputed field",
	})
	RecordsCategorized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materials_ai_categorized_total",
		Help: "Material records categorized below the rule-match confidence",
	})
	RecordsOutliers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "materials_outliers_total",
		Help: "Material records flagged as statistical outliers",
	})
	CategorizeResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "categorize_results_total",
		Help: "Standalone categorization results by category",
	}, []string{"category"})
	RecommendationsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendations_generated_total",
		Help: "Recommendations returned by type",
	}, []string{"type"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "path", "status"})
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"method", "path"})
)

// ObserveProcessedBatch records the counters of one /process batch.
func ObserveProcessedBatch(total, imputed, categorized, outliers int) {
	RecordsProcessed.Add(float64(total))
	RecordsImputed.Add(float64(imputed))
	RecordsCategorized.Add(float64(categorized))
	RecordsOutliers.Add(float64(outliers))
}

// IncCategorized counts one standalone categorization result.
func IncCategorized(category string) {
	CategorizeResults.WithLabelValues(category).Inc()
}

// IncRecommendation counts one returned recommendation.
func IncRecommendation(kind string) {
	RecommendationsGenerated.WithLabelValues(kind).Inc()
}

// ObserveRequest records a finished HTTP request.
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
