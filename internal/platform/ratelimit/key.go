package ratelimit

import (
	"net/http"
	"strings"
)

// FallbackKey groups every unidentifiable client into a single bucket.
const FallbackKey = "unknown"

// ClientKey extracts the rate-limit key for a request: the first entry of
// X-Forwarded-For, then X-Real-IP, then FallbackKey.
func ClientKey(h http.Header) string {
	if xf := h.Get("X-Forwarded-For"); xf != "" {
		return strings.TrimSpace(strings.Split(xf, ",")[0])
	}
	if ip := h.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return FallbackKey
}
