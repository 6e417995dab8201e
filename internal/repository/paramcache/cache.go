// Package paramcache caches derived parameter sets keyed by
// (strategy, text, count). Caching is a pure optimization: a miss is never
// an error, derivation is simply recomputed.
package paramcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/seedicon/internal/db"
	"github.com/kailas-cloud/seedicon/internal/domain/figure"
)

// store is the consumer interface for the shared cache backend (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache is a two-layer cache: an in-process LRU in front of an optional
// shared key-value store.
type Cache struct {
	store      store // nil = LRU only
	keyPrefix  string
	ttl        time.Duration
	lru        *lruCache
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a cache. s can be nil to run without a shared backend.
// cacheTotal is a counter vec with labels "layer" and "result", passed explicitly.
func New(
	s store,
	keyPrefix string,
	ttl time.Duration,
	lruSize int,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache {
	return &Cache{
		store:      s,
		keyPrefix:  keyPrefix + "params:",
		ttl:        ttl,
		lru:        newLRU(lruSize),
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns cached primitives for the key, checking the LRU first and
// falling back to the shared store. A store hit repopulates the LRU.
func (c *Cache) Get(ctx context.Context, strategy, text string, count int) ([]figure.ParameterSet, bool) {
	key := c.cacheKey(strategy, text, count)

	if params, ok := c.lru.get(key); ok {
		c.inc("lru", "hit")
		return params, true
	}
	c.inc("lru", "miss")

	if c.store == nil {
		return nil, false
	}

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached params", zap.String("key", key), zap.Error(err))
		}
		c.inc("store", "miss")
		return nil, false
	}

	var params []figure.ParameterSet
	if err := json.Unmarshal(data, &params); err != nil {
		c.logger.Warn("Failed to parse cached params", zap.String("key", key), zap.Error(err))
		c.inc("store", "miss")
		return nil, false
	}
	restoreShapes(params)

	c.inc("store", "hit")
	c.lru.put(key, params)
	return params, true
}

// Put stores primitives in both layers. Store failures are logged, not returned.
func (c *Cache) Put(ctx context.Context, strategy, text string, count int, params []figure.ParameterSet) {
	key := c.cacheKey(strategy, text, count)
	c.lru.put(key, params)

	if c.store == nil {
		return
	}

	data, err := json.Marshal(params)
	if err != nil {
		c.logger.Warn("Failed to encode params for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache params", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) inc(layer, result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(layer, result).Inc()
	}
}

// cacheKey hashes the lookup tuple so seed texts of any length and content
// produce fixed-size store keys.
func (c *Cache) cacheKey(strategy, text string, count int) string {
	h := sha256.New()
	h.Write([]byte(strategy))
	h.Write([]byte{0})
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(count)))
	return c.keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// restoreShapes rebuilds the non-serialized ShapeKind from the wire name.
func restoreShapes(params []figure.ParameterSet) {
	for i := range params {
		if k, ok := figure.ParseShapeKind(params[i].ShapeName); ok {
			params[i].Shape = k
		}
	}
}
