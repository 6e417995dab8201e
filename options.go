package seedicon

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver   string // "valkey" or "redis", empty = no shared store
	addrs    []string
	password string

	keyPrefix string
	cacheTTL  time.Duration
	lruSize   int

	defaultStrategy string
	defaultCount    int
	maxCount        int

	logger *zap.Logger
}

// WithValkey configures a Valkey instance as the shared parameter cache.
func WithValkey(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedis configures a Redis instance as the shared parameter cache.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithKeyPrefix sets the cache key prefix (default "seedicon:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithCacheTTL sets the shared store TTL for cached parameter sets.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) {
		c.cacheTTL = ttl
	}
}

// WithLRUSize sets the in-process LRU capacity (default 512 entries).
func WithLRUSize(n int) Option {
	return func(c *clientConfig) {
		c.lruSize = n
	}
}

// WithDefaultStrategy sets the strategy used when a call names none
// (default "classic").
func WithDefaultStrategy(name string) Option {
	return func(c *clientConfig) {
		c.defaultStrategy = name
	}
}

// WithPrimitiveLimits sets the default and maximum primitive counts.
func WithPrimitiveLimits(defaultCount, maxCount int) Option {
	return func(c *clientConfig) {
		c.defaultCount = defaultCount
		c.maxCount = maxCount
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
