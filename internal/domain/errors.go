package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrIndexUnavailable signals that the hosted search index could not be reached.
	ErrIndexUnavailable = errors.New("search index unavailable")
	// ErrUnsupportedFilter signals a filter shape the compiler cannot express.
	// The synthesizer never produces one; seeing it means a contract violation.
	ErrUnsupportedFilter = errors.New("unsupported filter shape")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrStoreRequired signals a feature that needs the optional cache store.
	ErrStoreRequired = errors.New("persistent store not configured")
)
