package classifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// InvokerConfig bounds classifier execution.
type InvokerConfig struct {
	// Timeout applies to one run, including the wait for a free slot
	Timeout time.Duration
	// MaxConcurrent caps simultaneously running processes
	MaxConcurrent int64
	// FailureThreshold consecutive execution failures open the breaker
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again
	OpenTimeout time.Duration
}

// Invoker serializes questionnaire input and runs the classifier through a
// concurrency limit and a circuit breaker.
type Invoker struct {
	runner  Runner
	config  InvokerConfig
	slots   *semaphore.Weighted
	breaker *gobreaker.CircuitBreaker[[]string]
	logger  zerolog.Logger
}

// NewInvoker creates an Invoker around runner
func NewInvoker(runner Runner, config InvokerConfig, logger zerolog.Logger) *Invoker {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 4
	}
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = 30 * time.Second
	}

	lgr := logger.With().Str("component", "classifier_invoker").Logger()

	settings := gobreaker.Settings{
		Name:        "classifier",
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		// A caller going away says nothing about classifier health
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			BreakerState.Set(float64(to))
			lgr.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Classifier circuit breaker state changed")
		},
	}

	return &Invoker{
		runner:  runner,
		config:  config,
		slots:   semaphore.NewWeighted(config.MaxConcurrent),
		breaker: gobreaker.NewCircuitBreaker[[]string](settings),
		logger:  lgr,
	}
}

// Invoke runs the classifier with input encoded as one JSON argument and
// returns every captured stdout line.
func (i *Invoker) Invoke(ctx context.Context, input map[string]string) ([]string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, &apperrors.PredictionError{
			Kind:    apperrors.ErrPredictionExecutionFailed,
			Details: fmt.Sprintf("failed to encode classifier input: %v", err),
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, i.config.Timeout)
	defer cancel()

	if err := i.slots.Acquire(ctx, 1); err != nil {
		InvocationsTotal.WithLabelValues(OutcomeRejected).Inc()
		details := "timed out waiting for a free classifier slot"
		if errors.Is(ctx.Err(), context.Canceled) {
			details = "canceled while waiting for a free classifier slot"
		}
		return nil, &apperrors.PredictionError{
			Kind:    apperrors.ErrPredictionExecutionFailed,
			Details: details,
			Cause:   err,
		}
	}
	defer i.slots.Release(1)

	InFlight.Inc()
	defer InFlight.Dec()

	start := time.Now()
	lines, err := i.breaker.Execute(func() ([]string, error) {
		return i.runner.Run(ctx, payload)
	})
	InvocationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			InvocationsTotal.WithLabelValues(OutcomeRejected).Inc()
			i.logger.Warn().Err(err).Msg("Classifier call rejected by circuit breaker")
			return nil, &apperrors.PredictionError{
				Kind:    apperrors.ErrPredictionExecutionFailed,
				Details: "classifier temporarily unavailable",
				Cause:   err,
			}
		}

		InvocationsTotal.WithLabelValues(OutcomeExecutionFailed).Inc()
		var predErr *apperrors.PredictionError
		if errors.As(err, &predErr) {
			return lines, predErr
		}
		return lines, &apperrors.PredictionError{
			Kind:      apperrors.ErrPredictionExecutionFailed,
			Details:   err.Error(),
			RawOutput: lines,
			Cause:     err,
		}
	}

	i.logger.Debug().Int("fields", len(input)).Int("lines", len(lines)).Dur("duration", time.Since(start)).Msg("Classifier invoked")
	return lines, nil
}

// Predict invokes the classifier and parses its output.
func (i *Invoker) Predict(ctx context.Context, input map[string]string) (*Result, error) {
	lines, err := i.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := ParseOutput(lines)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoPredictionOutput):
			InvocationsTotal.WithLabelValues(OutcomeNoOutput).Inc()
		default:
			InvocationsTotal.WithLabelValues(OutcomeMalformed).Inc()
		}
		i.logger.Warn().Err(err).Strs("rawOutput", lines).Msg("Classifier output rejected")
		return nil, err
	}

	InvocationsTotal.WithLabelValues(OutcomeSuccess).Inc()
	return result, nil
}

// BreakerState returns the breaker state name for health reporting.
func (i *Invoker) BreakerState() string {
	return i.breaker.State().String()
}
