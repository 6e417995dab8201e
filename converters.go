package seedicon

import (
	"github.com/kailas-cloud/seedicon/internal/domain/figure"
	"github.com/kailas-cloud/seedicon/internal/domain/mesh"
)

func fromParameterSet(ps figure.ParameterSet) Primitive {
	return Primitive{
		Shape:     ps.ShapeName,
		Position:  Vec3(ps.Position),
		Scale:     Vec3(ps.Scale),
		Rotation:  Vec3(ps.Rotation),
		Color:     HSL(ps.Color),
		Opacity:   ps.Opacity,
		Wireframe: ps.Wireframe,
	}
}

func fromParameterSets(sets []figure.ParameterSet) []Primitive {
	out := make([]Primitive, len(sets))
	for i, ps := range sets {
		out[i] = fromParameterSet(ps)
	}
	return out
}

func fromMesh(m mesh.Mesh) Mesh {
	return Mesh{Vertices: m.Vertices, Faces: m.Faces}
}
