// Package resilient wraps datasource reads with per-call timeouts, bounded retries and a circuit
// breaker per backend.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/jbeshir/game-discovery/internal/metrics"
	"github.com/sony/gobreaker/v2"
)

type Config struct {
	// Timeout bounds each individual attempt.
	Timeout time.Duration
	// MaxRetries is the number of attempts after the first.
	MaxRetries     uint64
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// BreakerMinRequests is how many requests a measurement interval needs before the breaker may open.
	BreakerMinRequests  uint32
	BreakerFailureRatio float64
	BreakerInterval     time.Duration
	BreakerOpenTimeout  time.Duration
}

// Backend is one external dependency with its own breaker.
type Backend struct {
	name    string
	cfg     Config
	breaker *gobreaker.CircuitBreaker[any]
}

func NewBackend(ctx context.Context, name string, cfg Config) *Backend {
	logger := domain.LoggerFromContext(ctx)
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"backend", name,
				"from", from.String(),
				"to", to.String(),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		// Answers like "not found" mean the backend is healthy.
		IsSuccessful: func(err error) bool {
			return err == nil || isPermanent(err)
		},
	})

	return &Backend{
		name:    name,
		cfg:     cfg,
		breaker: breaker,
	}
}

// call runs fn through the breaker, retrying transient failures with exponential backoff.
// Errors that persist after retries, and calls rejected by an open breaker, are wrapped with
// domain.ErrTransientDependency.
func call[T any](ctx context.Context, b *Backend, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	attempt := func() error {
		res, err := b.breaker.Execute(func() (any, error) {
			attemptCtx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
			defer cancel()
			return fn(attemptCtx)
		})
		if err != nil {
			if isPermanent(err) || ctx.Err() != nil ||
				errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(err)
			}
			return err
		}
		result, _ = res.(T)
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = b.cfg.InitialBackoff
	policy.MaxInterval = b.cfg.MaxBackoff
	policy.MaxElapsedTime = 0

	err := backoff.RetryNotify(
		attempt,
		backoff.WithContext(backoff.WithMaxRetries(policy, b.cfg.MaxRetries), ctx),
		func(err error, wait time.Duration) {
			metrics.DependencyRetries.WithLabelValues(b.name).Inc()
			domain.LoggerFromContext(ctx).DebugContext(ctx, "retrying dependency call",
				"backend", b.name,
				"operation", op,
				"wait", wait,
				"error", err,
			)
		},
	)
	if err != nil {
		var zero T
		if isPermanent(err) || errors.Is(err, context.Canceled) {
			return zero, err
		}
		return zero, fmt.Errorf("%s %s: %w: %w", b.name, op, domain.ErrTransientDependency, err)
	}
	return result, nil
}

// isPermanent reports errors that retrying cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrUnauthorized)
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
