// Package pillcache is the best-effort response cache for generated pill
// lists. Every failure here is a warning plus a pass-through: the primary
// response path never blocks or fails on the cache.
package pillcache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/db"
	"github.com/slabstack/smartpills/internal/domain"
)

const keyPrefix = "smart_pills:"

// defaultKey is the cache key for the empty-query default catalogue.
const defaultKey = keyPrefix + "default"

// store is the consumer interface for the response cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache stores serialized pill responses keyed by normalized query.
type Cache struct {
	store      store
	queryTTL   time.Duration
	defaultTTL time.Duration
	opsTotal   *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a response cache. opsTotal is a counter vec with labels
// "op" and "outcome", passed explicitly (may be nil in tests).
func New(
	s store,
	queryTTL, defaultTTL time.Duration,
	opsTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache {
	return &Cache{
		store:      s,
		queryTTL:   queryTTL,
		defaultTTL: defaultTTL,
		opsTotal:   opsTotal,
		logger:     logger,
	}
}

// Key builds the cache key for a query. The query is lowercased so that
// "LeBron" and "lebron" share one entry; the empty query maps to the
// default-catalogue key.
func Key(query string) string {
	if query == "" {
		return defaultKey
	}
	return keyPrefix + strings.ToLower(query)
}

// Get returns a previously cached response, or ok=false on miss or error.
func (c *Cache) Get(ctx context.Context, query string) (domain.PillsResponse, bool) {
	key := Key(query)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			c.inc("get", "miss")
		} else {
			c.inc("get", "error")
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return domain.PillsResponse{}, false
	}

	var resp domain.PillsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.inc("get", "error")
		c.logger.Warn("Cache entry corrupt", zap.String("key", key), zap.Error(err))
		return domain.PillsResponse{}, false
	}

	c.inc("get", "hit")
	return resp, true
}

// Put stores a response. Empty pill lists are not cached: a transient
// upstream hiccup must not pin an empty result for the whole TTL.
func (c *Cache) Put(ctx context.Context, query string, resp domain.PillsResponse) {
	if len(resp.Pills) == 0 {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		c.inc("set", "error")
		c.logger.Warn("Cache serialize failed", zap.Error(err))
		return
	}

	ttl := c.queryTTL
	if query == "" {
		ttl = c.defaultTTL
	}

	if err := c.store.SetWithTTL(ctx, Key(query), data, ttl); err != nil {
		c.inc("set", "error")
		c.logger.Warn("Cache write failed", zap.String("key", Key(query)), zap.Error(err))
		return
	}
	c.inc("set", "ok")
}

func (c *Cache) inc(op, outcome string) {
	if c.opsTotal != nil {
		c.opsTotal.WithLabelValues(op, outcome).Inc()
	}
}
