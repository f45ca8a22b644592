package processor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess    = "success"
	resultFailure    = "failure"
	operationUnknown = "unknown"
)

// Metrics holds the prometheus collectors of the processor.
type Metrics struct {
	instructionsTotal   *prometheus.CounterVec
	instructionDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		instructionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "breeding_instructions_total",
				Help: "Total number of processed instructions",
			},
			[]string{"operation", "result"},
		),
		instructionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "breeding_instruction_duration_seconds",
				Help:    "Instruction processing duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) observe(operation string, err error, started time.Time) {
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	m.instructionsTotal.WithLabelValues(operation, result).Inc()
	m.instructionDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
