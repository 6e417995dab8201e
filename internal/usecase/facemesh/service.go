// Package facemesh generates digest-sculpted face meshes.
package facemesh

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/seedicon/internal/domain/mesh"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
	"github.com/kailas-cloud/seedicon/internal/logger"
)

// Service turns seed text into a deterministic face mesh.
type Service struct{}

// New creates a Service.
func New() *Service {
	return &Service{}
}

// Generate sculpts the base face with digest(text, 0).
func (s *Service) Generate(ctx context.Context, text string) (mesh.Mesh, error) {
	d := seed.New(text, 0)

	m, err := mesh.Sculpt(d)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("sculpt: %w", err)
	}

	logger.FromContext(ctx).Debug("face mesh generated",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
	)
	return m, nil
}

// FromDigest sculpts the base face with an externally supplied digest.
func (s *Service) FromDigest(digest string) (mesh.Mesh, error) {
	d, err := seed.Parse(digest)
	if err != nil {
		return mesh.Mesh{}, err
	}
	m, err := mesh.Sculpt(d)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("sculpt: %w", err)
	}
	return m, nil
}
