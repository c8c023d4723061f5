// Package metrics реализует экспорт метрик сервиса в Prometheus
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus метрики
var (
	// RequestsTotal общее количество запросов
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perfpolicy_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"endpoint", "method", "status"},
	)

	// RequestDuration длительность запросов
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "perfpolicy_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"endpoint", "method"},
	)

	// SamplesReceived количество принятых измерений Web Vitals
	SamplesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "perfpolicy_vitals_samples_received_total",
			Help: "Total number of Web Vitals samples received",
		},
	)

	// SamplesRejected количество отклоненных измерений
	SamplesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "perfpolicy_vitals_samples_rejected_total",
			Help: "Total number of Web Vitals samples rejected by validation",
		},
	)

	// VitalsScore распределение оценок
	VitalsScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "perfpolicy_vitals_score",
			Help:    "Distribution of Web Vitals scores",
			Buckets: []float64{10, 25, 50, 75, 90, 100},
		},
	)

	// MetricRatings рейтинги отдельных метрик
	MetricRatings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perfpolicy_vitals_ratings_total",
			Help: "Web Vitals ratings by metric",
		},
		[]string{"metric", "rating"},
	)

	// ScoreRegressions количество обнаруженных регрессий оценки
	ScoreRegressions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "perfpolicy_score_regressions_total",
			Help: "Total number of score regressions detected",
		},
	)

	// RollingScore скользящее среднее оценки
	RollingScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "perfpolicy_rolling_score",
			Help: "Rolling average of Web Vitals scores",
		},
	)

	// PagesTracked количество страниц в хранилище
	PagesTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "perfpolicy_pages_tracked",
			Help: "Number of pages in the metrics store",
		},
	)

	// FeedErrors ошибки операций с лентой Redis
	FeedErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "perfpolicy_feed_errors_total",
			Help: "Total number of failed beacon feed operations",
		},
	)

	// PolicyLookupErrors запросы с неизвестным классом
	PolicyLookupErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perfpolicy_policy_lookup_errors_total",
			Help: "Policy lookups for unknown classes",
		},
		[]string{"policy"},
	)
)

// ObserveAnalysis обновляет метрики по результату оценки
func ObserveAnalysis(score int, ratings map[string]string, rollingScore float64, regression bool) {
	SamplesReceived.Inc()
	VitalsScore.Observe(float64(score))
	for metric, rating := range ratings {
		MetricRatings.WithLabelValues(metric, rating).Inc()
	}
	RollingScore.Set(rollingScore)
	if regression {
		ScoreRegressions.Inc()
	}
}
