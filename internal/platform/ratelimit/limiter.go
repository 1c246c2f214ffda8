// Package ratelimit provides an in-memory fixed-window request limiter.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is how long the caller must wait before the window
	// resets. Zero when the request was admitted.
	RetryAfter time.Duration
}

type bucket struct {
	count   int
	resetAt time.Time
}

// FixedWindow counts requests per key inside a fixed interval and rejects
// once the cap is reached. Buckets live for the lifetime of the process;
// there is no eviction, so the map grows with the number of distinct keys.
type FixedWindow struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	window  time.Duration
	max     int
	now     func() time.Time
}

// Option customizes a FixedWindow.
type Option func(*FixedWindow)

// WithClock injects the time source, used by tests to step through windows.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindow) {
		if now != nil {
			l.now = now
		}
	}
}

// NewFixedWindow builds a limiter admitting at most max requests per key
// within each window.
func NewFixedWindow(window time.Duration, max int, opts ...Option) *FixedWindow {
	l := &FixedWindow{
		buckets: make(map[string]*bucket),
		window:  window,
		max:     max,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Allow records a request for key and decides whether it is admitted.
// The read-check-write on the bucket is a critical section; gin serves
// requests concurrently.
func (l *FixedWindow) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.After(b.resetAt) {
		l.buckets[key] = &bucket{count: 1, resetAt: now.Add(l.window)}
		return Decision{Allowed: true, Remaining: l.max - 1}
	}
	if b.count >= l.max {
		return Decision{Allowed: false, RetryAfter: b.resetAt.Sub(now)}
	}
	b.count++
	return Decision{Allowed: true, Remaining: l.max - b.count}
}

// Len reports how many buckets are currently held.
func (l *FixedWindow) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
