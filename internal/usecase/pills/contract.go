package pills

import (
	"context"

	"github.com/slabstack/smartpills/internal/domain"
)

// Index is the hosted search index surface the pipeline needs. distinct
// on Count must match the primary search view so enriched counts are
// directly comparable to what the user will see.
type Index interface {
	Count(ctx context.Context, query, filterExpr string, distinct bool) (int, error)
	Sample(ctx context.Context, query string, n int) ([]domain.Hit, error)
}

// ResponseCache is the optional best-effort response cache.
type ResponseCache interface {
	Get(ctx context.Context, query string) (domain.PillsResponse, bool)
	Put(ctx context.Context, query string, resp domain.PillsResponse)
}
