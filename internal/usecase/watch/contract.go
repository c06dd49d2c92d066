package watch

import (
	"context"

	"github.com/slabstack/smartpills/internal/domain"
)

// Index fetches the newest page of results for a saved search.
type Index interface {
	Newest(ctx context.Context, query string, n int) ([]domain.Hit, int, error)
}

// Store persists saved searches and their watermarks.
type Store interface {
	Save(ctx context.Context, ss domain.SavedSearch) error
	Get(ctx context.Context, id string) (domain.SavedSearch, error)
	Delete(ctx context.Context, id string) error
}
