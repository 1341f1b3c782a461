package classifier

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

type fakeRunner struct {
	mu       sync.Mutex
	calls    int32
	payloads [][]byte
	run      func(ctx context.Context, payload []byte) ([]string, error)
}

func (f *fakeRunner) Run(ctx context.Context, payload []byte) ([]string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.payloads = append(f.payloads, payload)
	f.mu.Unlock()
	return f.run(ctx, payload)
}

func okRunner(lines ...string) *fakeRunner {
	return &fakeRunner{run: func(context.Context, []byte) ([]string, error) { return lines, nil }}
}

func failingRunner() *fakeRunner {
	return &fakeRunner{run: func(context.Context, []byte) ([]string, error) {
		return nil, &apperrors.PredictionError{Kind: apperrors.ErrPredictionExecutionFailed, Details: "exit 1"}
	}}
}

func TestInvoker_EncodesInputAsJSON(t *testing.T) {
	runner := okRunner(`>>> Final result: {"top3": [["Psikologi", 0.8]]}`)
	invoker := NewInvoker(runner, InvokerConfig{}, zerolog.Nop())

	input := map[string]string{"Gender": "Laki-laki", "nilai akhir SMA/SMK": "85"}
	_, err := invoker.Invoke(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, runner.payloads, 1)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(runner.payloads[0], &decoded))
	assert.Equal(t, input, decoded)
}

func TestInvoker_Predict(t *testing.T) {
	invoker := NewInvoker(okRunner(
		"warming up",
		`>>> Final result: {"top3": [["Psikologi", 0.8], ["Pendidikan", 0.7]], "prediction": "Psikologi"}`,
	), InvokerConfig{}, zerolog.Nop())

	result, err := invoker.Predict(context.Background(), map[string]string{"Gender": "Perempuan"})
	require.NoError(t, err)
	require.NotNil(t, result.Prediction)
	assert.Equal(t, "Psikologi", *result.Prediction)
	assert.Len(t, result.Ranking, 2)
}

func TestInvoker_PredictSurfacesParseErrors(t *testing.T) {
	invoker := NewInvoker(okRunner(), InvokerConfig{}, zerolog.Nop())
	_, err := invoker.Predict(context.Background(), map[string]string{"Gender": "Perempuan"})
	assert.True(t, errors.Is(err, apperrors.ErrNoPredictionOutput))

	invoker = NewInvoker(okRunner("no result here"), InvokerConfig{}, zerolog.Nop())
	_, err = invoker.Predict(context.Background(), map[string]string{"Gender": "Perempuan"})
	assert.True(t, errors.Is(err, apperrors.ErrMalformedPredictionOutput))
}

func TestInvoker_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	runner := failingRunner()
	invoker := NewInvoker(runner, InvokerConfig{FailureThreshold: 2, OpenTimeout: time.Minute}, zerolog.Nop())

	for i := 0; i < 2; i++ {
		_, err := invoker.Invoke(context.Background(), map[string]string{})
		require.Error(t, err)
	}
	assert.Equal(t, "open", invoker.BreakerState())

	_, err := invoker.Invoke(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPredictionExecutionFailed))
	assert.Contains(t, err.Error(), "temporarily unavailable")
	assert.Equal(t, int32(2), atomic.LoadInt32(&runner.calls))
}

func TestInvoker_CancellationDoesNotTripBreaker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := &fakeRunner{run: func(runCtx context.Context, _ []byte) ([]string, error) {
		cancel()
		<-runCtx.Done()
		return nil, &apperrors.PredictionError{
			Kind:  apperrors.ErrPredictionExecutionFailed,
			Cause: runCtx.Err(),
		}
	}}
	invoker := NewInvoker(runner, InvokerConfig{FailureThreshold: 1}, zerolog.Nop())

	_, err := invoker.Invoke(ctx, map[string]string{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	assert.Equal(t, "closed", invoker.BreakerState())
}

func TestInvoker_CanceledProbeKeepsBreakerHalfOpen(t *testing.T) {
	var cancelNext atomic.Bool
	runner := &fakeRunner{run: func(runCtx context.Context, _ []byte) ([]string, error) {
		if cancelNext.Load() {
			return nil, &apperrors.PredictionError{
				Kind:  apperrors.ErrPredictionExecutionFailed,
				Cause: context.Canceled,
			}
		}
		return nil, &apperrors.PredictionError{Kind: apperrors.ErrPredictionExecutionFailed, Details: "exit 1"}
	}}
	invoker := NewInvoker(runner, InvokerConfig{FailureThreshold: 2, OpenTimeout: 20 * time.Millisecond}, zerolog.Nop())

	for i := 0; i < 2; i++ {
		_, err := invoker.Invoke(context.Background(), map[string]string{})
		require.Error(t, err)
	}
	require.Equal(t, "open", invoker.BreakerState())
	require.Eventually(t, func() bool { return invoker.BreakerState() == "half-open" }, time.Second, 5*time.Millisecond)

	cancelNext.Store(true)
	_, err := invoker.Invoke(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Equal(t, "half-open", invoker.BreakerState())

	// the probe slot is free again and a real failure reopens the breaker
	cancelNext.Store(false)
	_, err = invoker.Invoke(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Equal(t, "open", invoker.BreakerState())
	assert.Equal(t, int32(4), atomic.LoadInt32(&runner.calls))
}

func TestInvoker_CanceledWhileWaitingForSlot(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	runner := &fakeRunner{run: func(ctx context.Context, _ []byte) ([]string, error) {
		close(started)
		<-release
		return []string{`>>> Final result: {"top3": [["Psikologi", 0.8]]}`}, nil
	}}
	invoker := NewInvoker(runner, InvokerConfig{MaxConcurrent: 1}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = invoker.Invoke(context.Background(), map[string]string{})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := invoker.Invoke(ctx, map[string]string{})
	close(release)
	<-done

	require.Error(t, err)
	var predErr *apperrors.PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, "canceled while waiting for a free classifier slot", predErr.Details)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(1), atomic.LoadInt32(&runner.calls))
}

func TestInvoker_TimesOutWaitingForSlot(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	runner := &fakeRunner{run: func(ctx context.Context, _ []byte) ([]string, error) {
		close(started)
		<-release
		return nil, nil
	}}
	invoker := NewInvoker(runner, InvokerConfig{MaxConcurrent: 1, Timeout: 50 * time.Millisecond}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = invoker.Invoke(context.Background(), map[string]string{})
	}()
	<-started

	_, err := invoker.Invoke(context.Background(), map[string]string{})
	close(release)
	<-done

	var predErr *apperrors.PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, "timed out waiting for a free classifier slot", predErr.Details)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestInvoker_LimitsConcurrency(t *testing.T) {
	var current, peak int32
	release := make(chan struct{})
	runner := &fakeRunner{run: func(ctx context.Context, _ []byte) ([]string, error) {
		n := atomic.AddInt32(&current, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		<-release
		atomic.AddInt32(&current, -1)
		return []string{`>>> Final result: {"top3": [["Psikologi", 0.8]]}`}, nil
	}}
	invoker := NewInvoker(runner, InvokerConfig{MaxConcurrent: 2}, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = invoker.Invoke(context.Background(), map[string]string{})
		}()
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&current) == 2 }, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&peak))
	assert.Equal(t, int32(5), atomic.LoadInt32(&runner.calls))
}
