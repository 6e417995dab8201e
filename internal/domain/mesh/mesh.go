// Package mesh sculpts a fixed base face mesh with digest material.
// Each vertex is scaled by a factor derived from one hex nibble of the
// digest, so the same seed always produces the same face.
package mesh

import (
	"fmt"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
}

// baseVertices is the simplified humanoid face: a pyramid-like core with
// an inner layer for relief.
var baseVertices = [][3]float64{
	{0, 0, 0}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1}, {0, 0, 2},
	{0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5},
}

var baseFaces = [][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
	{1, 2, 5}, {2, 3, 5}, {3, 4, 5}, {4, 1, 5},
	{6, 7, 8}, {6, 8, 9},
	{0, 6, 1}, {0, 7, 2}, {0, 8, 3}, {0, 9, 4},
}

// Base returns a fresh copy of the unsculpted face mesh.
func Base() Mesh {
	v := make([][3]float64, len(baseVertices))
	copy(v, baseVertices)
	f := make([][3]int, len(baseFaces))
	copy(f, baseFaces)
	return Mesh{Vertices: v, Faces: f}
}

// Sculpt deforms the base face with the digest: vertex i is scaled by
// 1 + nibble(i mod len)/15, where nibble(i) is the i-th hex character.
// Faces are untouched. Any non-empty valid digest works; the nibble index
// wraps around.
func Sculpt(d seed.Digest) (Mesh, error) {
	if _, err := seed.Parse(d.String()); err != nil {
		return Mesh{}, err
	}

	m := Base()
	s := d.String()
	for i := range m.Vertices {
		nibble, err := hexNibble(s[i%len(s)])
		if err != nil {
			return Mesh{}, err
		}
		factor := 1 + float64(nibble)/15
		m.Vertices[i][0] *= factor
		m.Vertices[i][1] *= factor
		m.Vertices[i][2] *= factor
	}
	return m, nil
}

func hexNibble(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	}
	return 0, fmt.Errorf("%w: nibble %q", domain.ErrInvalidDigest, c)
}
