package llm

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"
)

// TimeoutProvider bounds every Generate call, retries included.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so no request outlives d. A non-positive d returns p
// unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	exec := timeout.New[*Response](timeout.Config{DefaultTimeout: t.timeout})

	start := time.Now()
	resp, err := exec.Execute(ctx, t.timeout, func(ctx context.Context) (*Response, error) {
		return t.inner.Generate(ctx, req)
	})
	if err == nil {
		return resp, nil
	}

	// Caller cancellation is not a timeout.
	if ctx.Err() != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) || time.Since(start) >= t.timeout {
		return nil, &ErrTimeout{After: t.timeout, Err: err}
	}
	return nil, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
