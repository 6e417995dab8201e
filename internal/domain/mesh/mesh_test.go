package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

func TestBase(t *testing.T) {
	m := Base()
	if len(m.Vertices) != 10 {
		t.Errorf("vertices = %d, want 10", len(m.Vertices))
	}
	if len(m.Faces) != 14 {
		t.Errorf("faces = %d, want 14", len(m.Faces))
	}
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				t.Errorf("face %d references vertex %d out of range", i, idx)
			}
		}
	}

	// Base returns copies: sculpting one mesh must not bleed into the next.
	m.Vertices[0][0] = 99
	if Base().Vertices[0][0] == 99 {
		t.Error("Base() shares vertex storage between calls")
	}
}

func TestSculpt_Deterministic(t *testing.T) {
	d := seed.New("Alice", 0)
	a, err := Sculpt(d)
	if err != nil {
		t.Fatalf("Sculpt: %v", err)
	}
	b, err := Sculpt(d)
	if err != nil {
		t.Fatalf("Sculpt: %v", err)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Errorf("vertex %d not deterministic", i)
		}
	}
}

func TestSculpt_ScalesByNibbles(t *testing.T) {
	// Digest "f0" repeated: vertex 0 nibble 'f' (15) -> factor 2,
	// vertex 1 nibble '0' -> factor 1.
	d := seed.Digest("f0f0f0f0f0")
	m, err := Sculpt(d)
	if err != nil {
		t.Fatalf("Sculpt: %v", err)
	}
	base := Base()
	for c := 0; c < 3; c++ {
		if want := base.Vertices[0][c] * 2; math.Abs(m.Vertices[0][c]-want) > 1e-12 {
			t.Errorf("vertex 0 component %d = %v, want %v", c, m.Vertices[0][c], want)
		}
		if m.Vertices[1][c] != base.Vertices[1][c] {
			t.Errorf("vertex 1 component %d = %v, want unchanged %v", c, m.Vertices[1][c], base.Vertices[1][c])
		}
	}
	if len(m.Faces) != len(base.Faces) {
		t.Errorf("faces changed: %d != %d", len(m.Faces), len(base.Faces))
	}
}

func TestSculpt_ShortDigestWraps(t *testing.T) {
	// 2 hex chars for 10 vertices: nibble index wraps.
	if _, err := Sculpt(seed.Digest("ab")); err != nil {
		t.Fatalf("Sculpt on short digest: %v", err)
	}
}

func TestSculpt_InvalidDigest(t *testing.T) {
	for _, in := range []string{"", "abc", "xyz!"} {
		if _, err := Sculpt(seed.Digest(in)); !errors.Is(err, domain.ErrInvalidDigest) {
			t.Errorf("Sculpt(%q) error = %v, want ErrInvalidDigest", in, err)
		}
	}
}
