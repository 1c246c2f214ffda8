package ports

import "time"

// Decision is the rate limiter's answer for one request.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter admits or rejects evaluation attempts per client key.
type RateLimiter interface {
	Allow(key string) Decision
}
