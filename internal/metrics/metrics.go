package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	QuestionsTotal    *prometheus.CounterVec
	QuestionDuration  *prometheus.HistogramVec
	QuestionsInFlight prometheus.Gauge

	StoreQueriesTotal   *prometheus.CounterVec
	StoreFailuresTotal  *prometheus.CounterVec
	FallbackServedTotal prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		QuestionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "olist_analytics_questions_total",
				Help: "Total number of questions answered, by matched rule",
			},
			[]string{"rule", "status"},
		),
		QuestionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "olist_analytics_question_duration_seconds",
				Help:    "Question handling duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"rule"},
		),
		QuestionsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "olist_analytics_questions_in_flight",
				Help: "Number of questions currently being processed",
			},
		),

		StoreQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "olist_analytics_store_queries_total",
				Help: "Total number of store queries executed",
			},
			[]string{"operation"},
		),
		StoreFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "olist_analytics_store_failures_total",
				Help: "Total number of store queries that failed and degraded to empty results",
			},
			[]string{"operation"},
		),
		FallbackServedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "olist_analytics_fallback_served_total",
				Help: "Total number of answers built from the built-in fallback category list",
			},
		),
	}

	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordQuestion(rule, status string, duration time.Duration) {
	m.QuestionsTotal.WithLabelValues(rule, status).Inc()
	m.QuestionDuration.WithLabelValues(rule).Observe(duration.Seconds())
}

func (m *Metrics) RecordStoreQuery(operation string) {
	m.StoreQueriesTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordStoreFailure(operation string) {
	m.StoreFailuresTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordFallbackServed() {
	m.FallbackServedTotal.Inc()
}

func (m *Metrics) IncQuestionsInFlight() {
	m.QuestionsInFlight.Inc()
}

func (m *Metrics) DecQuestionsInFlight() {
	m.QuestionsInFlight.Dec()
}
