// Package pills generates quick-filter suggestions for a search query by
// sampling the hosted index, tallying feature frequency, and enriching
// the surviving candidates with exact hit counts.
package pills

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/domain"
	"github.com/slabstack/smartpills/internal/metrics"
)

// Config holds pipeline tuning.
type Config struct {
	Threshold   int // minimum total hits before sampling (default 50)
	SampleSize  int // rows fetched per query (default 100)
	Concurrency int // parallel count lookups (default 8)
}

// Service orchestrates sampling, extraction, synthesis, and enrichment.
type Service struct {
	index       Index
	cache       ResponseCache // nil when no cache store is configured
	threshold   int
	sampleSize  int
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

// New creates a pill generation service. cache may be nil.
func New(index Index, cache ResponseCache, cfg Config, logger *zap.Logger) *Service {
	if cfg.Threshold <= 0 {
		cfg.Threshold = 50
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	return &Service{
		index:       index,
		cache:       cache,
		threshold:   cfg.Threshold,
		sampleSize:  cfg.SampleSize,
		concurrency: cfg.Concurrency,
		logger:      logger,
		now:         time.Now,
	}
}

// Generate produces the pill list for a query. threshold <= 0 falls back
// to the configured default. The empty query is answered from the fixed
// default catalogue instead of sampling.
func (s *Service) Generate(ctx context.Context, query string, threshold int) (domain.PillsResponse, error) {
	if query == "" {
		return s.generateDefault(ctx)
	}
	if threshold <= 0 {
		threshold = s.threshold
	}

	if s.cache != nil {
		if resp, ok := s.cache.Get(ctx, query); ok {
			resp.Cached = true
			return resp, nil
		}
	}

	// Probe total hits first: zero rows, no filter. Queries with too few
	// results produce meaningless frequency estimates, so stop here.
	total, err := s.index.Count(ctx, query, "", false)
	if err != nil {
		return domain.PillsResponse{}, fmt.Errorf("count query %q: %w", query, err)
	}

	if total < threshold {
		return domain.PillsResponse{
			Query:        query,
			TotalResults: total,
			Pills:        []domain.Pill{},
			Reason:       domain.ReasonBelowThreshold,
		}, nil
	}

	sample, err := s.index.Sample(ctx, query, s.sampleSize)
	if err != nil {
		return domain.PillsResponse{}, fmt.Errorf("sample query %q: %w", query, err)
	}

	tally := Extract(sample)
	candidates := Synthesize(tally, s.sampleSize)
	enriched := s.enrich(ctx, query, candidates)
	if enriched == nil {
		enriched = []domain.Pill{}
	}

	metrics.PillsGenerated.Observe(float64(len(enriched)))
	s.logger.Debug("Generated pills",
		zap.String("query", query),
		zap.Int("total", total),
		zap.Int("candidates", len(candidates)),
		zap.Int("pills", len(enriched)),
	)

	resp := domain.PillsResponse{
		Query:        query,
		TotalResults: total,
		Pills:        enriched,
		GeneratedAt:  s.now().UTC().Format(time.RFC3339),
		SampleSize:   s.sampleSize,
	}

	if s.cache != nil {
		s.cache.Put(ctx, query, resp)
	}
	return resp, nil
}
