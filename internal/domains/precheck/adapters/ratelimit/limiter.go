// Package ratelimit adapts the platform fixed-window limiter to the
// precheck rate-limiting port.
package ratelimit

import (
	platformratelimit "github.com/lunapup/adoption-api/internal/platform/ratelimit"

	"github.com/lunapup/adoption-api/internal/domains/precheck/ports"
)

// Adapter bridges admission decisions into port types.
type Adapter struct {
	limiter *platformratelimit.FixedWindow
}

func New(limiter *platformratelimit.FixedWindow) *Adapter {
	return &Adapter{limiter: limiter}
}

func (a *Adapter) Allow(key string) ports.Decision {
	d := a.limiter.Allow(key)
	return ports.Decision{
		Allowed:    d.Allowed,
		Remaining:  d.Remaining,
		RetryAfter: d.RetryAfter,
	}
}

var _ ports.RateLimiter = (*Adapter)(nil)
