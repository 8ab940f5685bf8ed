// Package monitoring exposes the Prometheus collectors for the
// recommendation and ordering paths.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles all collectors. A nil *Metrics is a valid no-op
// receiver so tests can construct components without a registry.
type Metrics struct {
	recommendations    *prometheus.CounterVec
	generationFailures prometheus.Counter
	retrievalDuration  prometheus.Histogram
	generationDuration prometheus.Histogram
	ordersCreated      prometheus.Counter
	orderFailures      prometheus.Counter
}

// NewMetrics creates and registers all collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qrmenu_recommendations_total",
			Help: "Assistant answers served, by locale and outcome (answer or fallback).",
		}, []string{"locale", "outcome"}),
		generationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qrmenu_generation_failures_total",
			Help: "Model calls that failed or timed out.",
		}),
		retrievalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qrmenu_retrieval_duration_seconds",
			Help:    "Latency of embedding index searches.",
			Buckets: prometheus.DefBuckets,
		}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qrmenu_generation_duration_seconds",
			Help:    "Latency of text-generation model calls.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qrmenu_orders_created_total",
			Help: "Orders persisted after chat confirmation.",
		}),
		orderFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qrmenu_order_failures_total",
			Help: "Order persistence attempts rejected by the database.",
		}),
	}

	reg.MustRegister(
		m.recommendations,
		m.generationFailures,
		m.retrievalDuration,
		m.generationDuration,
		m.ordersCreated,
		m.orderFailures,
	)
	return m
}

// RecommendationServed records one assistant answer.
func (m *Metrics) RecommendationServed(locale string, fallback bool) {
	if m == nil {
		return
	}
	outcome := "answer"
	if fallback {
		outcome = "fallback"
	}
	m.recommendations.WithLabelValues(locale, outcome).Inc()
}

// GenerationFailed records a failed model call.
func (m *Metrics) GenerationFailed() {
	if m == nil {
		return
	}
	m.generationFailures.Inc()
}

// ObserveRetrieval records the latency of one index search.
func (m *Metrics) ObserveRetrieval(d time.Duration) {
	if m == nil {
		return
	}
	m.retrievalDuration.Observe(d.Seconds())
}

// ObserveGeneration records the latency of one model call.
func (m *Metrics) ObserveGeneration(d time.Duration) {
	if m == nil {
		return
	}
	m.generationDuration.Observe(d.Seconds())
}

// OrderCreated records a successfully persisted order.
func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// OrderFailed records a rejected order.
func (m *Metrics) OrderFailed() {
	if m == nil {
		return
	}
	m.orderFailures.Inc()
}
