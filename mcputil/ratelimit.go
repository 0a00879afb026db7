// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package mcputil

import (
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter guards tool calls with a token bucket. Tools that spawn
// browser processes use it so a misbehaving client cannot fork-bomb the
// desktop.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows bursts of burst calls refilling at perSecond
// tokens per second.
func NewRateLimiter(burst int, perSecond float64) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Check consumes one token, returning an error naming the tool when the
// limit is exceeded. It never blocks.
func (r *RateLimiter) Check(toolName string) error {
	if !r.limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for tool %q, please wait before retrying", toolName)
	}
	return nil
}
