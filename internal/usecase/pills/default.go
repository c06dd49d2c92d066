package pills

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/slabstack/smartpills/internal/domain"
	"github.com/slabstack/smartpills/internal/domain/filter"
	"github.com/slabstack/smartpills/internal/domain/vocab"
	"github.com/slabstack/smartpills/internal/metrics"
)

// generateDefault answers the empty query from the fixed default
// catalogue: one filtered count lookup per candidate, keep nonzero
// counts, order by count descending.
func (s *Service) generateDefault(ctx context.Context) (domain.PillsResponse, error) {
	if s.cache != nil {
		if resp, ok := s.cache.Get(ctx, ""); ok {
			resp.Cached = true
			return resp, nil
		}
	}

	candidates := vocab.DefaultPills()
	counted := make([]*domain.Pill, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, pill := range candidates {
		g.Go(func() error {
			expr, err := filter.Compile(pill.Filter)
			if err == nil {
				pill.Count, err = s.index.Count(ctx, "", expr, true)
			}
			if err != nil {
				metrics.PillLookupsTotal.WithLabelValues("error").Inc()
				s.logger.Warn("Default pill count lookup failed",
					zap.String("pill", pill.ID),
					zap.Error(err),
				)
				return nil
			}
			metrics.PillLookupsTotal.WithLabelValues("ok").Inc()
			counted[i] = &pill
			return nil
		})
	}
	_ = g.Wait()

	pills := make([]domain.Pill, 0, len(counted))
	for _, p := range counted {
		if p != nil && p.Count > 0 {
			pills = append(pills, *p)
		}
	}
	sort.Slice(pills, func(i, j int) bool {
		if pills[i].Count != pills[j].Count {
			return pills[i].Count > pills[j].Count
		}
		return pills[i].ID < pills[j].ID
	})

	resp := domain.PillsResponse{
		Query:       "",
		Pills:       pills,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}

	if s.cache != nil {
		s.cache.Put(ctx, "", resp)
	}
	return resp, nil
}
