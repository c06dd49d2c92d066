package watch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/domain"
)

// mockIndex implements the Index consumer interface for tests.
type mockIndex struct {
	newestFn func(ctx context.Context, query string, n int) ([]domain.Hit, int, error)
}

func (m *mockIndex) Newest(ctx context.Context, query string, n int) ([]domain.Hit, int, error) {
	if m.newestFn != nil {
		return m.newestFn(ctx, query, n)
	}
	return nil, 0, nil
}

// memStore is an in-memory Store.
type memStore struct {
	searches map[string]domain.SavedSearch
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{searches: make(map[string]domain.SavedSearch)}
}

func (m *memStore) Save(_ context.Context, ss domain.SavedSearch) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.searches[ss.ID] = ss
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (domain.SavedSearch, error) {
	ss, ok := m.searches[id]
	if !ok {
		return domain.SavedSearch{}, domain.ErrNotFound
	}
	return ss, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.searches, id)
	return nil
}

func page(ids ...string) []domain.Hit {
	hits := make([]domain.Hit, len(ids))
	for i, id := range ids {
		hits[i] = domain.Hit{ObjectID: id, Title: "card " + id}
	}
	return hits
}

func newTestService(idx Index, store Store) *Service {
	svc := New(idx, store, zap.NewNop())
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("search-%d", n)
	}
	return svc
}

func TestCreate_RequiresQuery(t *testing.T) {
	svc := newTestService(&mockIndex{}, newMemStore())
	if _, err := svc.Create(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestCheck_FirstCheckEstablishesBaseline(t *testing.T) {
	idx := &mockIndex{newestFn: func(_ context.Context, _ string, n int) ([]domain.Hit, int, error) {
		if n != domain.WatchPageSize {
			t.Errorf("page size = %d, want %d", n, domain.WatchPageSize)
		}
		return page("item-3", "item-2", "item-1"), 250, nil
	}}
	store := newMemStore()
	svc := newTestService(idx, store)

	ss, err := svc.Create(context.Background(), "jordan rookie")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.Check(context.Background(), ss.ID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.NewItems != 0 || result.Saturated {
		t.Errorf("baseline check = %+v, want no new items", result)
	}
	if result.Total != 250 {
		t.Errorf("total = %d", result.Total)
	}

	stored := store.searches[ss.ID]
	if stored.LastSeenID != "item-3" {
		t.Errorf("watermark = %q, want item-3", stored.LastSeenID)
	}
	if stored.LastSeenCount != 250 {
		t.Errorf("watermark count = %d", stored.LastSeenCount)
	}
}

func TestCheck_CountsItemsAheadOfWatermark(t *testing.T) {
	current := page("item-5", "item-4", "item-3", "item-2", "item-1")
	idx := &mockIndex{newestFn: func(context.Context, string, int) ([]domain.Hit, int, error) {
		return current, 105, nil
	}}
	store := newMemStore()
	store.searches["s1"] = domain.SavedSearch{
		ID: "s1", Query: "jordan", LastSeenID: "item-3", LastSeenCount: 103,
	}
	svc := newTestService(idx, store)

	result, err := svc.Check(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.NewItems != 2 || result.Saturated {
		t.Errorf("result = %+v, want 2 new items", result)
	}

	// Watermark advanced to the new newest item.
	if store.searches["s1"].LastSeenID != "item-5" {
		t.Errorf("watermark = %q", store.searches["s1"].LastSeenID)
	}
}

func TestCheck_MissingWatermarkSaturates(t *testing.T) {
	idx := &mockIndex{newestFn: func(context.Context, string, int) ([]domain.Hit, int, error) {
		return page("item-901", "item-900"), 2000, nil
	}}
	store := newMemStore()
	store.searches["s1"] = domain.SavedSearch{
		ID: "s1", Query: "pokemon", LastSeenID: "item-1", LastSeenCount: 500,
	}
	svc := newTestService(idx, store)

	result, err := svc.Check(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !result.Saturated {
		t.Fatal("expected saturated result")
	}
	if result.NewItems != domain.WatchPageSize {
		t.Errorf("new items = %d, want saturation at %d", result.NewItems, domain.WatchPageSize)
	}
}

func TestCheck_UnknownID(t *testing.T) {
	svc := newTestService(&mockIndex{}, newMemStore())
	_, err := svc.Check(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheck_IndexErrorPropagates(t *testing.T) {
	idx := &mockIndex{newestFn: func(context.Context, string, int) ([]domain.Hit, int, error) {
		return nil, 0, domain.ErrIndexUnavailable
	}}
	store := newMemStore()
	store.searches["s1"] = domain.SavedSearch{ID: "s1", Query: "q"}
	svc := newTestService(idx, store)

	if _, err := svc.Check(context.Background(), "s1"); !errors.Is(err, domain.ErrIndexUnavailable) {
		t.Fatalf("expected ErrIndexUnavailable, got %v", err)
	}
}

func TestCheck_WatermarkSaveFailureStillReturnsResult(t *testing.T) {
	idx := &mockIndex{newestFn: func(context.Context, string, int) ([]domain.Hit, int, error) {
		return page("item-2", "item-1"), 2, nil
	}}
	store := newMemStore()
	store.searches["s1"] = domain.SavedSearch{ID: "s1", Query: "q", LastSeenID: "item-1"}
	store.saveErr = errors.New("write failed")
	svc := newTestService(idx, store)

	result, err := svc.Check(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Check must tolerate watermark save failure: %v", err)
	}
	if result.NewItems != 1 {
		t.Errorf("result = %+v", result)
	}
}
