// Package algolia wraps the hosted Algolia index behind the narrow
// count/sample surface the pill pipeline needs. Relevance ranking, typo
// tolerance, and faceting all stay on the hosted side.
package algolia

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/domain"
)

// Index is an Algolia-backed hosted search index.
type Index struct {
	index  *search.Index
	logger *zap.Logger
}

// Config holds the Algolia connection settings.
type Config struct {
	AppID     string
	APIKey    string
	IndexName string
	Logger    *zap.Logger
}

// NewIndex creates an Algolia index client.
func NewIndex(cfg *Config) *Index {
	client := search.NewClient(cfg.AppID, cfg.APIKey)
	return &Index{
		index:  client.InitIndex(cfg.IndexName),
		logger: cfg.Logger,
	}
}

// Count returns the total hit count for a query, fetching zero rows.
// distinct must match the primary search view so counts are directly
// comparable to what the user sees there.
func (i *Index) Count(ctx context.Context, query, filterExpr string, distinct bool) (int, error) {
	opts := []any{ctx, opt.HitsPerPage(0)}
	if filterExpr != "" {
		opts = append(opts, opt.Filters(filterExpr))
	}
	if distinct {
		opts = append(opts, opt.Distinct(true))
	}

	res, err := i.index.Search(query, opts...)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q: %w", domain.ErrIndexUnavailable, query, err)
	}
	return res.NbHits, nil
}

// Sample fetches the first n hits for a query.
func (i *Index) Sample(ctx context.Context, query string, n int) ([]domain.Hit, error) {
	res, err := i.index.Search(query, ctx, opt.HitsPerPage(n))
	if err != nil {
		return nil, fmt.Errorf("%w: sample %q: %w", domain.ErrIndexUnavailable, query, err)
	}

	var hits []domain.Hit
	if err := res.UnmarshalHits(&hits); err != nil {
		return nil, fmt.Errorf("unmarshal hits: %w", err)
	}
	return hits, nil
}

// Newest fetches the first n hits for a query ordered by the index's
// default ranking, used by saved-search update checks.
func (i *Index) Newest(ctx context.Context, query string, n int) ([]domain.Hit, int, error) {
	res, err := i.index.Search(query, ctx, opt.HitsPerPage(n))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: newest %q: %w", domain.ErrIndexUnavailable, query, err)
	}

	var hits []domain.Hit
	if err := res.UnmarshalHits(&hits); err != nil {
		return nil, 0, fmt.Errorf("unmarshal hits: %w", err)
	}
	return hits, res.NbHits, nil
}

// HealthCheck verifies index availability via a zero-row query.
func (i *Index) HealthCheck(ctx context.Context) error {
	if _, err := i.index.Search("", ctx, opt.HitsPerPage(0)); err != nil {
		return fmt.Errorf("index health check: %w", err)
	}
	return nil
}
