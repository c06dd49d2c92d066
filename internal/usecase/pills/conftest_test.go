package pills

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/domain"
)

// mockIndex implements the Index consumer interface for tests.
type mockIndex struct {
	countFn  func(ctx context.Context, query, filterExpr string, distinct bool) (int, error)
	sampleFn func(ctx context.Context, query string, n int) ([]domain.Hit, error)
}

func (m *mockIndex) Count(ctx context.Context, query, filterExpr string, distinct bool) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, query, filterExpr, distinct)
	}
	return 0, nil
}

func (m *mockIndex) Sample(ctx context.Context, query string, n int) ([]domain.Hit, error) {
	if m.sampleFn != nil {
		return m.sampleFn(ctx, query, n)
	}
	return nil, nil
}

// mockCache implements ResponseCache for tests.
type mockCache struct {
	getFn func(ctx context.Context, query string) (domain.PillsResponse, bool)
	puts  []domain.PillsResponse
}

func (m *mockCache) Get(ctx context.Context, query string) (domain.PillsResponse, bool) {
	if m.getFn != nil {
		return m.getFn(ctx, query)
	}
	return domain.PillsResponse{}, false
}

func (m *mockCache) Put(_ context.Context, _ string, resp domain.PillsResponse) {
	m.puts = append(m.puts, resp)
}

func newTestService(t *testing.T, idx Index, cache ResponseCache) *Service {
	t.Helper()
	return New(idx, cache, Config{}, zap.NewNop())
}

func gradedHit(title string, price float64, service string, grade float64) domain.Hit {
	return domain.Hit{
		Title:          title,
		CurrentPrice:   price,
		GradingService: service,
		Grade:          &grade,
	}
}

// sampleOf repeats a set of hits until the sample has n entries.
func sampleOf(n int, hits ...domain.Hit) []domain.Hit {
	out := make([]domain.Hit, 0, n)
	for i := 0; len(out) < n; i++ {
		out = append(out, hits[i%len(hits)])
	}
	return out
}
