package seedicon

import (
	"testing"

	"github.com/kailas-cloud/seedicon/internal/domain/figure"
	"github.com/kailas-cloud/seedicon/internal/domain/mesh"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

func TestFromParameterSet(t *testing.T) {
	ps := figure.ParameterSet{
		Shape:     figure.ShapeTorus,
		ShapeName: figure.ShapeTorus.String(),
		Position:  figure.Vec3{X: 1, Y: -2, Z: 3},
		Scale:     figure.Vec3{X: 0.5, Y: 1.5, Z: 2.5},
		Rotation:  figure.Vec3{X: 0.1, Y: 0.2, Z: 0.3},
		Color:     figure.HSL{H: 120, S: 0.7, L: 0.5},
		Opacity:   0.75,
		Wireframe: true,
	}

	p := fromParameterSet(ps)
	if p.Shape != "torus" {
		t.Errorf("shape = %q, want %q", p.Shape, "torus")
	}
	if p.Position != (Vec3{X: 1, Y: -2, Z: 3}) {
		t.Errorf("position = %+v", p.Position)
	}
	if p.Color != (HSL{H: 120, S: 0.7, L: 0.5}) {
		t.Errorf("color = %+v", p.Color)
	}
	if p.Opacity != 0.75 || !p.Wireframe {
		t.Errorf("opacity/wireframe = %v/%v", p.Opacity, p.Wireframe)
	}
}

func TestFromParameterSets_Derived(t *testing.T) {
	ps, err := figure.Derive(seed.New("Alice", 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := fromParameterSets([]figure.ParameterSet{ps})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Shape != ps.ShapeName {
		t.Errorf("shape = %q, want %q", out[0].Shape, ps.ShapeName)
	}
}

func TestFromMesh(t *testing.T) {
	m := mesh.Base()
	out := fromMesh(m)
	if len(out.Vertices) != len(m.Vertices) || len(out.Faces) != len(m.Faces) {
		t.Errorf("converted mesh sizes differ: %d/%d vs %d/%d",
			len(out.Vertices), len(out.Faces), len(m.Vertices), len(m.Faces))
	}
}
