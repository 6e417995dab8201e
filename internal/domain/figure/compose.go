package figure

import (
	"fmt"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

// Composer derives the full primitive set of one identicon. Implementations
// are pure and safe for concurrent use.
type Composer interface {
	// Name is the stable strategy identifier used in the API and cache keys.
	Name() string
	// Compose derives count primitives for the given seed text.
	Compose(text string, count int) ([]ParameterSet, error)
}

// Classic is the baseline strategy: primitive i is derived independently
// from digest(text, i) via the fixed slot table.
type Classic struct{}

// Name returns "classic".
func (Classic) Name() string { return "classic" }

// Compose derives count independent primitives.
func (Classic) Compose(text string, count int) ([]ParameterSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidCount, count)
	}
	out := make([]ParameterSet, count)
	for i := range out {
		ps, err := Derive(seed.New(text, i))
		if err != nil {
			return nil, fmt.Errorf("derive primitive %d: %w", i, err)
		}
		out[i] = ps
	}
	return out, nil
}
