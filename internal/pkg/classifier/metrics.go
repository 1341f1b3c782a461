package classifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for InvocationsTotal
const (
	OutcomeSuccess         = "success"
	OutcomeExecutionFailed = "execution_failed"
	OutcomeNoOutput        = "no_output"
	OutcomeMalformed       = "malformed"
	OutcomeRejected        = "rejected"
)

var (
	// InvocationsTotal counts classifier invocations.
	// Labels:
	//   - outcome: success, execution_failed, no_output, malformed, rejected (breaker open or no slot)
	InvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_invocations_total",
			Help: "Total number of classifier invocations by outcome",
		},
		[]string{"outcome"},
	)

	// InvocationDuration measures wall time of the classifier process.
	InvocationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classifier_invocation_duration_seconds",
			Help:    "Duration of classifier process runs in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// InFlight is the number of classifier processes currently running.
	InFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "classifier_in_flight",
			Help: "Number of classifier processes currently running",
		},
	)

	// BreakerState mirrors the circuit breaker: 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "classifier_breaker_state",
			Help: "Classifier circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)
)
