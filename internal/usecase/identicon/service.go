// Package identicon coordinates derivation strategies, caching and
// metrics for identicon generation.
package identicon

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/figure"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
	"github.com/kailas-cloud/seedicon/internal/logger"
	"github.com/kailas-cloud/seedicon/internal/metrics"
)

// Identicon is one derived visual fingerprint.
type Identicon struct {
	Text       string
	Strategy   string
	Primitives []figure.ParameterSet
}

// Service derives identicons. Strategies are registered at construction
// and addressed by name; derivation itself is pure, so the service only
// adds caching, limits and observability.
type Service struct {
	composers       map[string]figure.Composer
	cache           Cache // nil = no caching
	defaultStrategy string
	defaultCount    int
	maxCount        int
}

// New creates a Service with the given strategies. The first composer
// whose name equals defaultStrategy is used when the caller names none.
func New(composers []figure.Composer, defaultStrategy string, defaultCount, maxCount int) *Service {
	m := make(map[string]figure.Composer, len(composers))
	for _, c := range composers {
		m[c.Name()] = c
	}
	return &Service{
		composers:       m,
		defaultStrategy: defaultStrategy,
		defaultCount:    defaultCount,
		maxCount:        maxCount,
	}
}

// WithCache attaches a parameter cache.
func (s *Service) WithCache(c Cache) *Service {
	s.cache = c
	return s
}

// Strategies returns the registered strategy names.
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.composers))
	for name := range s.composers {
		names = append(names, name)
	}
	return names
}

// Digest exposes the digest provider: the 64-char hex digest of (text, index).
func (s *Service) Digest(text string, index int) seed.Digest {
	return seed.New(text, index)
}

// Derive maps an externally supplied digest to a single parameter set.
// The digest is validated first; malformed input is rejected, never
// silently derived.
func (s *Service) Derive(digest string) (figure.ParameterSet, error) {
	d, err := seed.Parse(digest)
	if err != nil {
		return figure.ParameterSet{}, err
	}
	ps, err := figure.Derive(d)
	if err != nil {
		return figure.ParameterSet{}, fmt.Errorf("derive: %w", err)
	}
	return ps, nil
}

// Generate derives the identicon for text. count 0 means the configured
// default; strategy "" means the configured default strategy.
func (s *Service) Generate(ctx context.Context, text string, count int, strategy string) (Identicon, error) {
	if strategy == "" {
		strategy = s.defaultStrategy
	}
	composer, ok := s.composers[strategy]
	if !ok {
		return Identicon{}, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}

	if count == 0 {
		count = s.defaultCount
	}
	if count < 0 || count > s.maxCount {
		return Identicon{}, fmt.Errorf("%w: %d (max %d)", domain.ErrInvalidCount, count, s.maxCount)
	}

	log := logger.FromContext(ctx)

	if s.cache != nil {
		if params, ok := s.cache.Get(ctx, strategy, text, count); ok {
			log.Debug("identicon cache hit",
				zap.String("strategy", strategy),
				zap.Int("count", count),
			)
			return Identicon{Text: text, Strategy: strategy, Primitives: params}, nil
		}
	}

	start := time.Now()
	params, err := composer.Compose(text, count)
	metrics.DeriveDuration.WithLabelValues(strategy).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DerivationsTotal.WithLabelValues(strategy, "error").Inc()
		return Identicon{}, fmt.Errorf("compose %s: %w", strategy, err)
	}
	metrics.DerivationsTotal.WithLabelValues(strategy, "ok").Inc()

	if s.cache != nil {
		s.cache.Put(ctx, strategy, text, count, params)
	}

	log.Debug("identicon derived",
		zap.String("strategy", strategy),
		zap.Int("primitives", len(params)),
		zap.Duration("took", time.Since(start)),
	)

	return Identicon{Text: text, Strategy: strategy, Primitives: params}, nil
}
