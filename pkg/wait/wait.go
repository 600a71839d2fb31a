// Package wait implements the polling helpers the test suites use to wait for
// services, pods and endpoints to reach a desired state.
package wait

import (
	"context"
	"errors"
	"time"

	"github.com/go-logr/logr"
	"github.com/jpillora/backoff"
)

// ErrTimeout is returned when the condition does not come true within the waiter timeout
var ErrTimeout = errors.New("timed out waiting for the condition")

// Condition is polled until it reports true, an error or the timeout elapses
type Condition func() (bool, error)

const (
	DefaultTimeout  = 3 * time.Minute
	DefaultInterval = time.Second
)

// Waiter polls a condition with either a fixed or an exponentially growing interval
type Waiter struct {
	condition Condition
	timeout   time.Duration
	interval  time.Duration
	backOff   *backoff.Backoff
	reason    string
	logger    logr.Logger
	failFast  Condition
}

// New returns a Waiter for the condition with the default timeout and interval
func New(condition Condition) *Waiter {
	return &Waiter{
		condition: condition,
		timeout:   DefaultTimeout,
		interval:  DefaultInterval,
		logger:    logr.Discard(),
	}
}

func (w *Waiter) Timeout(timeout time.Duration) *Waiter {
	w.timeout = timeout
	return w
}

func (w *Waiter) Interval(interval time.Duration) *Waiter {
	w.interval = interval
	return w
}

// ExponentialBackoff doubles the poll interval after each attempt, bounded by max
func (w *Waiter) ExponentialBackoff(min, max time.Duration) *Waiter {
	w.backOff = &backoff.Backoff{
		Min:    min,
		Max:    max,
		Factor: 2,
		Jitter: false,
	}
	return w
}

// Reason records what is being waited on, it is logged at start and on timeout
func (w *Waiter) Reason(reason string) *Waiter {
	w.reason = reason
	return w
}

func (w *Waiter) Logger(logger logr.Logger) *Waiter {
	w.logger = logger
	return w
}

// FailFast aborts the wait as soon as the passed condition reports true
func (w *Waiter) FailFast(condition Condition) *Waiter {
	w.failFast = condition
	return w
}

// WaitFor polls until the condition reports true. The condition error aborts
// the wait immediately, a false report schedules the next attempt.
func (w *Waiter) WaitFor(ctx context.Context) error {
	if w.reason != "" {
		w.logger.Info("Waiting", "for", w.reason, "timeout", w.timeout)
	}
	deadline := time.Now().Add(w.timeout)
	for {
		if w.failFast != nil {
			failed, err := w.failFast()
			if err != nil {
				return err
			}
			if failed {
				return errors.New("fail fast condition met while waiting for " + w.reason)
			}
		}
		done, err := w.condition()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if time.Now().After(deadline) {
			if w.reason != "" {
				w.logger.Info("Timed out", "waiting for", w.reason)
			}
			return ErrTimeout
		}
		interval := w.interval
		if w.backOff != nil {
			interval = w.backOff.Duration()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// ForValueStabilized polls the supplier until it returns the same value on
// consecutive attempts, then returns that value. Used to detect that a counter
// observed over HTTP has stopped moving before asserting on it.
func ForValueStabilized[T comparable](ctx context.Context, supplier func() (T, error), attempts int, interval time.Duration) (T, error) {
	var last T
	var zero T
	stable := 0
	first := true
	for {
		value, err := supplier()
		if err != nil {
			return zero, err
		}
		if !first && value == last {
			stable++
			if stable >= attempts {
				return value, nil
			}
		} else {
			stable = 0
		}
		last = value
		first = false
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(interval):
		}
	}
}
