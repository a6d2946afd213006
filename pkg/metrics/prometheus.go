package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	recommendations *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	lastInterest    *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		recommendations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpost_recommendations_total",
				Help: "Total number of scheduling recommendations computed",
			},
			[]string{"platform", "outcome", "confidence"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpost_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastInterest: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trendpost_last_interest_value",
				Help: "Last observed search-interest value for a platform",
			},
			[]string{"platform"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendpost_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpost_cache_requests_total",
				Help: "Recommendation cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// RecordRecommendation records a computed recommendation.
func (r *Recorder) RecordRecommendation(platform, outcome, confidence string) {
	r.recommendations.WithLabelValues(platform, outcome, confidence).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastInterest records the last observed interest value for a platform.
func (r *Recorder) RecordLastInterest(platform string, value float64) {
	r.lastInterest.WithLabelValues(platform).Set(value)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheHits.WithLabelValues(result).Inc()
}
