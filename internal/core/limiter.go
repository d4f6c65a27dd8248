package core

// limiter.go bounds the number of change sets applied at once.
//
// Every phase of an apply holds a pooled connection, so the limit is usually
// set at or below the pool size. Callers that cannot get a slot within
// maxWait fail with ErrTooManyApplies.

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTooManyApplies is returned when no apply slot frees up in time.
var ErrTooManyApplies = errors.New("too many concurrent change sets, please try again later")

const (
	defaultMaxConcurrentApplies = 4
	defaultApplyWait            = 10 * time.Second
)

// ApplyLimiter is a counting semaphore over change-set applies.
type ApplyLimiter struct {
	sem     *semaphore.Weighted
	max     int
	maxWait time.Duration
	active  atomic.Int64
}

// NewApplyLimiter allows maxConcurrent simultaneous applies; zero or
// negative arguments select the defaults.
func NewApplyLimiter(maxConcurrent int, maxWait time.Duration) *ApplyLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentApplies
	}
	if maxWait <= 0 {
		maxWait = defaultApplyWait
	}
	return &ApplyLimiter{
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		max:     maxConcurrent,
		maxWait: maxWait,
	}
}

// Acquire takes a slot. The caller must Release it. A cancelled ctx returns
// ctx.Err(); running out of wait time returns ErrTooManyApplies.
func (l *ApplyLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	if err := l.sem.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyApplies
	}
	l.active.Add(1)
	return nil
}

// Release returns a slot taken by Acquire.
func (l *ApplyLimiter) Release() {
	l.active.Add(-1)
	l.sem.Release(1)
}

// Active returns the number of applies in progress.
func (l *ApplyLimiter) Active() int {
	return int(l.active.Load())
}

// Max returns the concurrency limit.
func (l *ApplyLimiter) Max() int {
	return l.max
}

// WaitForDrain blocks until no apply is in progress or ctx ends.
func (l *ApplyLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for l.Active() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
