// Package watchstore persists saved searches and their update watermarks
// as Redis hashes.
package watchstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/slabstack/smartpills/internal/db"
	"github.com/slabstack/smartpills/internal/domain"
)

const keyPrefix = "saved_search:"

const (
	fieldQuery         = "query"
	fieldLastSeenID    = "last_seen_id"
	fieldLastSeenCount = "last_seen_count"
	fieldCreatedAt     = "created_at"
)

// Store persists saved searches in a hash store.
type Store struct {
	store db.HashStore
}

// New creates a saved-search store.
func New(s db.HashStore) *Store {
	return &Store{store: s}
}

// Save writes a saved search, overwriting any previous watermark.
func (s *Store) Save(ctx context.Context, ss domain.SavedSearch) error {
	fields := map[string]string{
		fieldQuery:         ss.Query,
		fieldLastSeenID:    ss.LastSeenID,
		fieldLastSeenCount: strconv.Itoa(ss.LastSeenCount),
		fieldCreatedAt:     strconv.FormatInt(ss.CreatedAt, 10),
	}
	if err := s.store.HSet(ctx, keyPrefix+ss.ID, fields); err != nil {
		return fmt.Errorf("save search %s: %w", ss.ID, err)
	}
	return nil
}

// Get loads a saved search by ID.
func (s *Store) Get(ctx context.Context, id string) (domain.SavedSearch, error) {
	fields, err := s.store.HGetAll(ctx, keyPrefix+id)
	if err != nil {
		return domain.SavedSearch{}, fmt.Errorf("load search %s: %w", id, err)
	}
	// HGETALL on a missing key returns an empty map, not an error.
	if len(fields) == 0 {
		return domain.SavedSearch{}, fmt.Errorf("search %s: %w", id, domain.ErrNotFound)
	}

	count, _ := strconv.Atoi(fields[fieldLastSeenCount])
	created, _ := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)

	return domain.SavedSearch{
		ID:            id,
		Query:         fields[fieldQuery],
		LastSeenID:    fields[fieldLastSeenID],
		LastSeenCount: count,
		CreatedAt:     created,
	}, nil
}

// Delete removes a saved search. Deleting an unknown ID is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.store.Del(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("delete search %s: %w", id, err)
	}
	return nil
}
