package sdk

import "errors"

// Sentinel errors mapped from API status codes.
// Use errors.Is() to check.
var (
	ErrNotFound    = errors.New("sdk: not found")
	ErrRateLimited = errors.New("sdk: rate limited")
	ErrUnavailable = errors.New("sdk: service unavailable")
	ErrBadRequest  = errors.New("sdk: bad request")
)
