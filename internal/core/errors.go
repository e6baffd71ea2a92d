package core

import "errors"

// Fetch-boundary errors. The analytics pipeline itself never produces
// errors; these classify upstream failures for callers.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrUpstream     = errors.New("upstream error")

	ErrInvalidUsername = errors.New("invalid username")
)
