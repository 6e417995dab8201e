package figure

// ShapeKind selects the geometry of one rendered primitive. The set is
// closed: renderers map each variant to a concrete mesh via a total table,
// with no default case.
type ShapeKind int

// Shape variants in slot order. The ordinal feeds wireframe parity and must
// stay stable: reordering changes every existing identicon.
const (
	ShapeCube ShapeKind = iota
	ShapeSphere
	ShapeCone
	ShapeCylinder
	ShapeTorus
	ShapeOctahedron
	ShapeDodecahedron
	ShapeIcosahedron
)

// ShapeCount is the number of shape variants.
const ShapeCount = 8

var shapeNames = [ShapeCount]string{
	"cube", "sphere", "cone", "cylinder",
	"torus", "octahedron", "dodecahedron", "icosahedron",
}

// IsValid checks that the kind is one of the fixed variants.
func (k ShapeKind) IsValid() bool {
	return k >= 0 && k < ShapeCount
}

// Wireframe reports whether a primitive of this kind renders as wireframe.
// Even ordinals are wireframe, odd ones solid.
func (k ShapeKind) Wireframe() bool {
	return int(k)%2 == 0
}

func (k ShapeKind) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return shapeNames[k]
}

// ParseShapeKind resolves a shape name back to its kind.
// Returns ShapeCube and false for unrecognized names.
func ParseShapeKind(name string) (ShapeKind, bool) {
	for i, n := range shapeNames {
		if n == name {
			return ShapeKind(i), true
		}
	}
	return ShapeCube, false
}
