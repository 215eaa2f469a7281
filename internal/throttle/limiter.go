// Package throttle paces outbound requests to the storefront.
package throttle

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter is a token bucket shared by every storefront caller in the process.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing rps requests per second with the given burst.
// Non-positive rps disables limiting.
func New(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst <= 0 {
		burst = 1
	}

	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request may proceed or ctx is done.
// A nil Limiter never blocks.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}
