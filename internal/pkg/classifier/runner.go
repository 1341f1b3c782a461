// Package classifier runs the external major classifier and interprets its output.
//
// The classifier is an opaque program: it receives the questionnaire as a single
// JSON command-line argument and prints diagnostic lines plus one sentinel line
// (see SentinelPrefix) carrying the ranked result.
package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// Runner executes one classification and returns the captured stdout lines.
// On failure the returned lines are whatever was captured before the failure.
type Runner interface {
	Run(ctx context.Context, payload []byte) ([]string, error)
}

// ProcessConfig describes how the classifier process is launched.
type ProcessConfig struct {
	// Binary is the interpreter or executable, e.g. "python3"
	Binary string
	// Args come before the JSON payload, e.g. ["-u", "script/predict.py"]
	Args []string
	// Dir is the working directory; empty means the current one
	Dir string
	// MaxOutputBytes caps captured stdout and stderr separately
	MaxOutputBytes int64
}

const defaultMaxOutputBytes = 1 << 20

// ProcessRunner launches the classifier as a child process.
type ProcessRunner struct {
	config ProcessConfig
	logger zerolog.Logger
}

// NewProcessRunner creates a ProcessRunner
func NewProcessRunner(config ProcessConfig, logger zerolog.Logger) *ProcessRunner {
	if config.MaxOutputBytes <= 0 {
		config.MaxOutputBytes = defaultMaxOutputBytes
	}
	return &ProcessRunner{
		config: config,
		logger: logger.With().Str("component", "classifier_runner").Logger(),
	}
}

// Run starts the process with payload as its last argument and waits for it.
// The process is killed when ctx is done.
func (r *ProcessRunner) Run(ctx context.Context, payload []byte) ([]string, error) {
	args := make([]string, 0, len(r.config.Args)+1)
	args = append(args, r.config.Args...)
	args = append(args, string(payload))

	cmd := exec.CommandContext(ctx, r.config.Binary, args...)
	cmd.Dir = r.config.Dir
	// Do not hang on grandchildren that keep the pipes open after a kill
	cmd.WaitDelay = 2 * time.Second

	var stdoutBuf, stderrBuf bytes.Buffer
	stdout := &limitedWriter{w: &stdoutBuf, max: r.config.MaxOutputBytes}
	stderr := &limitedWriter{w: &stderrBuf, max: r.config.MaxOutputBytes}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	lines := splitLines(stdoutBuf.String())
	if stdout.truncated {
		r.logger.Warn().Int64("discardedBytes", stdout.discarded).Msg("Classifier stdout truncated")
	}

	if err != nil {
		predErr := &apperrors.PredictionError{
			Kind:      apperrors.ErrPredictionExecutionFailed,
			RawOutput: lines,
			Cause:     err,
		}

		var exitErr *exec.ExitError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			predErr.Details = fmt.Sprintf("classifier timed out after %s", duration.Round(time.Millisecond))
			predErr.Cause = ctx.Err()
		case errors.Is(ctx.Err(), context.Canceled):
			predErr.Details = "classifier run canceled"
			predErr.Cause = ctx.Err()
		case errors.As(err, &exitErr):
			predErr.Details = fmt.Sprintf("classifier exited with status %d", exitErr.ExitCode())
			if tail := lastLine(stderrBuf.String()); tail != "" {
				predErr.Details += ": " + tail
			} else if len(lines) > 0 {
				predErr.Details += ": " + lines[len(lines)-1]
			}
		default:
			predErr.Details = err.Error()
		}

		r.logger.Error().
			Err(err).
			Str("binary", r.config.Binary).
			Dur("duration", duration).
			Int("stdoutLines", len(lines)).
			Str("stderr", lastLine(stderrBuf.String())).
			Msg("Classifier process failed")
		return lines, predErr
	}

	r.logger.Debug().
		Str("binary", r.config.Binary).
		Dur("duration", duration).
		Int("stdoutLines", len(lines)).
		Msg("Classifier process finished")

	return lines, nil
}

// splitLines splits captured text the way a line-oriented reader would:
// no trailing empty line and no carriage returns.
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	out = strings.TrimSuffix(out, "\n")
	parts := strings.Split(out, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

func lastLine(out string) string {
	lines := splitLines(strings.TrimSpace(out))
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}

// limitedWriter keeps at most max bytes and silently discards the rest.
type limitedWriter struct {
	w         io.Writer
	max       int64
	written   int64
	truncated bool
	discarded int64
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	n := len(p)

	if lw.written >= lw.max {
		lw.truncated = true
		lw.discarded += int64(n)
		return n, nil
	}

	remaining := lw.max - lw.written
	if int64(n) > remaining {
		lw.truncated = true
		lw.discarded += int64(n) - remaining
		written, err := lw.w.Write(p[:remaining])
		lw.written += int64(written)
		// report the full length so exec does not treat it as a short write
		return n, err
	}

	written, err := lw.w.Write(p)
	lw.written += int64(written)
	return written, err
}
