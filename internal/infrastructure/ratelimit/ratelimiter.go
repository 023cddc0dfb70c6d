package ratelimit

import (
	"context"
	"time"
)

// Rule caps requests per key in a sliding window.
type Rule struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	// Allow records one hit for key and reports whether it fits the rule.
	Allow(ctx context.Context, key string, rule Rule) (bool, error)
	// Reset forgets every hit recorded for key.
	Reset(ctx context.Context, key string) error
}
