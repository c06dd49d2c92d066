package pills

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/slabstack/smartpills/internal/domain"
	"github.com/slabstack/smartpills/internal/domain/filter"
	"github.com/slabstack/smartpills/internal/metrics"
)

const (
	// minEnrichedCount is the exact-count floor below which a pill is
	// not worth surfacing.
	minEnrichedCount = 5

	// maxKeywordPills and maxFilterPills cap the two partitions of the
	// final list: up to 10 free-text pills plus up to 5 structured ones.
	maxKeywordPills = 10
	maxFilterPills  = 5
)

// enrich replaces provisional counts with exact per-pill counts from the
// index, then re-ranks and caps the list. Lookups run concurrently; each
// pill is independent, so one failed lookup only drops that pill.
func (s *Service) enrich(ctx context.Context, query string, candidates []domain.Pill) []domain.Pill {
	enriched := make([]*domain.Pill, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, pill := range candidates {
		g.Go(func() error {
			count, err := s.lookupCount(ctx, query, pill)
			if err != nil {
				metrics.PillLookupsTotal.WithLabelValues("error").Inc()
				s.logger.Warn("Pill count lookup failed",
					zap.String("pill", pill.ID),
					zap.String("query", query),
					zap.Error(err),
				)
				return nil // zero-information, not fatal: drop the pill, keep the batch
			}
			metrics.PillLookupsTotal.WithLabelValues("ok").Inc()
			pill.Count = count
			enriched[i] = &pill
			return nil
		})
	}
	_ = g.Wait()

	var keyword, structured []domain.Pill
	for _, p := range enriched {
		if p == nil || p.Count < minEnrichedCount {
			continue
		}
		if p.Filter.IsContains() {
			keyword = append(keyword, *p)
		} else {
			structured = append(structured, *p)
		}
	}

	// Rank within each partition by the original sample-based score;
	// the exact count decides survival, not order.
	sortByScore(keyword)
	sortByScore(structured)

	if len(keyword) > maxKeywordPills {
		keyword = keyword[:maxKeywordPills]
	}
	if len(structured) > maxFilterPills {
		structured = structured[:maxFilterPills]
	}
	return append(keyword, structured...)
}

// lookupCount fetches the exact hit count a pill would produce. Keyword
// pills fold their value into the query text; structured pills apply
// their compiled filter to the original query.
func (s *Service) lookupCount(ctx context.Context, query string, pill domain.Pill) (int, error) {
	if pill.Filter.IsContains() {
		keywordQuery := fmt.Sprintf("%s %v", query, pill.Filter.Value)
		return s.index.Count(ctx, keywordQuery, "", true)
	}

	expr, err := filter.Compile(pill.Filter)
	if err != nil {
		// The synthesizer never emits an uncompilable filter; reaching
		// this is a contract violation worth a loud log.
		return 0, fmt.Errorf("compile filter for %s: %w", pill.ID, err)
	}
	return s.index.Count(ctx, query, expr, true)
}
