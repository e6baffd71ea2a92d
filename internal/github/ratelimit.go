package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitInfo is a snapshot of the upstream API budget.
type RateLimitInfo struct {
	Remaining int       `json:"remaining"`
	Limit     int       `json:"limit"`
	Reset     time.Time `json:"reset"`
}

// rateLimit tracks the X-RateLimit-* headers across requests. It belongs to
// one client rather than the process, so concurrent sessions stay isolated.
type rateLimit struct {
	mu   sync.Mutex
	info RateLimitInfo
}

func newRateLimit() *rateLimit {
	return &rateLimit{info: RateLimitInfo{Remaining: 60, Limit: 60}}
}

func (rl *rateLimit) update(h http.Header) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v := h.Get("X-RateLimit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rl.info.Remaining = n
		}
	}
	if v := h.Get("X-RateLimit-Limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rl.info.Limit = n
		}
	}
	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if unix, err := strconv.ParseInt(v, 10, 64); err == nil {
			rl.info.Reset = time.Unix(unix, 0)
		}
	}
}

// exhausted reports whether the local budget is spent and still inside the
// reset window.
func (rl *rateLimit) exhausted(now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.info.Remaining <= 0 && now.Before(rl.info.Reset)
}

func (rl *rateLimit) snapshot() RateLimitInfo {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.info
}
