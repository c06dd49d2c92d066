package health

import "context"

// IndexChecker checks search index availability.
type IndexChecker interface {
	HealthCheck(ctx context.Context) error
}

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
