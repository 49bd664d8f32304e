package middleware

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("mutation rate exceeded")

// RateLimiter admits calls at a steady rate with bursts. It satisfies the
// go-grpc-middleware ratelimit.Limiter interface.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows perSecond calls per second with the given burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Limit rejects the call when no token is available.
func (l *RateLimiter) Limit(_ context.Context) error {
	if !l.limiter.Allow() {
		return errRateLimited
	}
	return nil
}
