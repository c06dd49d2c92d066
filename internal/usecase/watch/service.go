// Package watch tracks saved searches with a watermark: the newest result
// ID observed at the previous check. Each check scans the newest page for
// that ID; a watermark missing from the page saturates the new-item count
// at the page size instead of reporting a precise number.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/domain"
)

// Service coordinates saved-search update checks.
type Service struct {
	index  Index
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// New creates a watch service.
func New(index Index, store Store, logger *zap.Logger) *Service {
	return &Service{
		index:  index,
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// Create registers a saved search with an empty watermark. The first
// Check establishes the baseline; until then nothing counts as new.
func (s *Service) Create(ctx context.Context, query string) (domain.SavedSearch, error) {
	if query == "" {
		return domain.SavedSearch{}, fmt.Errorf("query is required")
	}

	ss := domain.SavedSearch{
		ID:        s.newID(),
		Query:     query,
		CreatedAt: s.now().UnixMilli(),
	}
	if err := s.store.Save(ctx, ss); err != nil {
		return domain.SavedSearch{}, fmt.Errorf("create saved search: %w", err)
	}
	return ss, nil
}

// Check fetches the newest page for a saved search, diffs it against the
// stored watermark, and advances the watermark to the current newest
// result. The first check returns zero new items and only records the
// baseline.
func (s *Service) Check(ctx context.Context, id string) (domain.WatchResult, error) {
	ss, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.WatchResult{}, err
	}

	hits, total, err := s.index.Newest(ctx, ss.Query, domain.WatchPageSize)
	if err != nil {
		return domain.WatchResult{}, fmt.Errorf("fetch newest for %s: %w", id, err)
	}

	result := domain.WatchResult{Total: total}

	if ss.LastSeenID != "" {
		// Locate the watermark by ID scan, bounded to this page. Not
		// finding it means more than a page of new items arrived; the
		// count saturates rather than pretending to be exact.
		pos := -1
		for i, hit := range hits {
			if hit.ObjectID == ss.LastSeenID {
				pos = i
				break
			}
		}
		if pos >= 0 {
			result.NewItems = pos
		} else {
			result.NewItems = domain.WatchPageSize
			result.Saturated = true
		}
	}

	if len(hits) > 0 {
		ss.LastSeenID = hits[0].ObjectID
	}
	ss.LastSeenCount = total
	if err := s.store.Save(ctx, ss); err != nil {
		// The check result is still valid; a stale watermark only means
		// the next check re-reports the same items.
		s.logger.Warn("Failed to advance watermark", zap.String("id", id), zap.Error(err))
	}

	return result, nil
}

// Delete removes a saved search.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
