// Package metrics exposes Prometheus instrumentation for the validation
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "veriscan",
		Name:      "validations_total",
		Help:      "Validation requests by detected document type and overall status.",
	}, []string{"document_type", "status"})

	validationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "veriscan",
		Name:      "validation_duration_seconds",
		Help:      "End to end validation duration.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	})

	fakeDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "veriscan",
		Name:      "fake_documents_detected_total",
		Help:      "Documents flagged by the fake document detector.",
	})
)

func ObserveValidation(documentType, status string, duration time.Duration) {
	validationsTotal.WithLabelValues(documentType, status).Inc()
	validationDuration.Observe(duration.Seconds())
}

func IncFakeDetected() {
	fakeDetectedTotal.Inc()
}
