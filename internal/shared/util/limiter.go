package util

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter is a token bucket that paces per-file work. The scan pool and the
// watch re-parse path share one instance so churny edits cannot starve a
// running scan.
type Limiter struct {
	inner *rate.Limiter
}

// NewLimiter creates a limiter admitting perSecond events with the given
// burst. A nil *Limiter admits everything, so callers never branch on
// whether throttling is configured.
func NewLimiter(perSecond float64, burst int) *Limiter {
	return &Limiter{inner: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Allow reports whether one event may proceed now.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.inner.AllowN(time.Now(), 1)
}

// Wait blocks until one token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.inner.WaitN(ctx, 1)
}
