package identicon

import (
	"context"

	"github.com/kailas-cloud/seedicon/internal/domain/figure"
)

// Cache stores derived primitive sets keyed by (strategy, text, count).
// Implementations must treat misses and backend failures as soft: a
// derivation can always be recomputed.
type Cache interface {
	Get(ctx context.Context, strategy, text string, count int) ([]figure.ParameterSet, bool)
	Put(ctx context.Context, strategy, text string, count int, params []figure.ParameterSet)
}
