package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the intake service.
type Metrics struct {
	FormsCreated       prometheus.Counter
	DraftsSaved        *prometheus.CounterVec
	StepsSubmitted     *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	StepLatency        *prometheus.HistogramVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on reg. Passing a fresh
// registry keeps tests from tripping over duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FormsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "vistoforms_forms_created_total",
			Help: "Total number of intake forms created",
		}),
		DraftsSaved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vistoforms_drafts_saved_total",
			Help: "Total number of step drafts saved, by step",
		}, []string{"step"}),
		StepsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vistoforms_steps_submitted_total",
			Help: "Total number of steps submitted, by step",
		}, []string{"step"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vistoforms_validation_failures_total",
			Help: "Total number of submit attempts rejected by validation, by step",
		}, []string{"step"}),
		StepLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vistoforms_step_operation_duration_seconds",
			Help:    "Latency of step save and submit operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vistoforms_http_request_duration_seconds",
			Help:    "Latency of HTTP requests, by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveStepOperation records latency for a save or submit operation.
func (m *Metrics) ObserveStepOperation(operation string, start time.Time) {
	m.StepLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
