package seedicon

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/seedicon/internal/db"
	dbRedis "github.com/kailas-cloud/seedicon/internal/db/redis"
	dbValkey "github.com/kailas-cloud/seedicon/internal/db/valkey"
	"github.com/kailas-cloud/seedicon/internal/domain/figure"
	"github.com/kailas-cloud/seedicon/internal/repository/paramcache"
	facemeshuc "github.com/kailas-cloud/seedicon/internal/usecase/facemesh"
	identiconuc "github.com/kailas-cloud/seedicon/internal/usecase/identicon"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the seedicon SDK entry point.
type Client struct {
	store   db.Store
	iconSvc *identiconuc.Service
	meshSvc *facemeshuc.Service
}

// New creates a seedicon Client. Without WithValkey or WithRedis the
// client runs fully in-process; derivation needs no external state.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:       "seedicon:",
		cacheTTL:        24 * time.Hour,
		lruSize:         512,
		defaultStrategy: "classic",
		defaultCount:    7,
		maxCount:        64,
		logger:          zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	var store db.Store
	if len(cfg.addrs) > 0 {
		s, err := createStore(cfg)
		if err != nil {
			return nil, err
		}

		ctx := context.Background()
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("seedicon: cache store not ready: %w", err)
		}
		store = s
	}

	return wireClient(store, cfg)
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("seedicon: create valkey store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("seedicon: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("seedicon: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig) (*Client, error) {
	cache := paramcache.New(
		store, cfg.keyPrefix, cfg.cacheTTL, cfg.lruSize, nil, cfg.logger,
	)

	iconSvc := identiconuc.New(
		[]figure.Composer{figure.Classic{}, figure.Orbit{}},
		cfg.defaultStrategy,
		cfg.defaultCount,
		cfg.maxCount,
	).WithCache(cache)

	return &Client{
		store:   store,
		iconSvc: iconSvc,
		meshSvc: facemeshuc.New(),
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks cache store connectivity. Returns nil when no store is
// configured.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Identicon derives the identicon for text. Zero count and empty
// strategy fall back to the client defaults.
func (c *Client) Identicon(ctx context.Context, text string, count int, strategy string) ([]Primitive, error) {
	icon, err := c.iconSvc.Generate(ctx, text, count, strategy)
	if err != nil {
		return nil, fmt.Errorf("identicon: %w", err)
	}
	return fromParameterSets(icon.Primitives), nil
}

// Digest returns the hex digest feeding primitive index of the seed text.
func (c *Client) Digest(text string, index int) string {
	return c.iconSvc.Digest(text, index).String()
}

// Mesh derives the sculpted face mesh for text.
func (c *Client) Mesh(ctx context.Context, text string) (Mesh, error) {
	m, err := c.meshSvc.Generate(ctx, text)
	if err != nil {
		return Mesh{}, fmt.Errorf("mesh: %w", err)
	}
	return fromMesh(m), nil
}

// Strategies lists the registered derivation strategy names.
func (c *Client) Strategies() []string {
	return c.iconSvc.Strategies()
}
