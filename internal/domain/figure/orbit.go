package figure

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

// Orbit layout constants. The ring size and radius are fixed by the
// strategy, not derived: only color, scale jitter and rotation vary with
// the seed.
const (
	orbitRingSize   = 8
	orbitRingRadius = 3.5
	orbitHeadScale  = 1.5
	orbitAuxScale   = 0.6
)

// orbitAuxShapes are the three sub-shapes the ring cycles through by
// index modulo 3.
var orbitAuxShapes = [3]ShapeKind{ShapeCube, ShapeSphere, ShapeCone}

// Orbit is the alternate strategy: one fixed head shape at the origin with
// digest-derived color, scale jitter and rotation, surrounded by a fixed
// ring of auxiliary primitives evenly spaced by angle and sharing a
// digest-derived tilt. All digest material comes from digest(text, 0).
type Orbit struct{}

// Name returns "orbit".
func (Orbit) Name() string { return "orbit" }

// Compose derives the head plus the fixed ring. The requested count is
// ignored: the layout always holds 1+orbitRingSize primitives.
func (Orbit) Compose(text string, _ int) ([]ParameterSet, error) {
	d := seed.New(text, 0)

	hue, err := Scalar(d, slotHue, 360)
	if err != nil {
		return nil, fmt.Errorf("orbit hue: %w", err)
	}
	color := HSL{H: hue, S: colorSaturation, L: colorLightness}

	jitter, err := Scalar(d, slotScaleX, 0.5)
	if err != nil {
		return nil, fmt.Errorf("orbit scale jitter: %w", err)
	}

	rot, err := deriveVec(d, slotRotX, 2*math.Pi, 0)
	if err != nil {
		return nil, fmt.Errorf("orbit rotation: %w", err)
	}

	tilt, err := Scalar(d, slotRotX, 2*math.Pi)
	if err != nil {
		return nil, fmt.Errorf("orbit tilt: %w", err)
	}

	out := make([]ParameterSet, 0, 1+orbitRingSize)

	headScale := orbitHeadScale + jitter
	out = append(out, ParameterSet{
		Shape:     ShapeIcosahedron,
		ShapeName: ShapeIcosahedron.String(),
		Position:  Vec3{},
		Scale:     Vec3{X: headScale, Y: headScale, Z: headScale},
		Rotation:  rot,
		Color:     color,
		Opacity:   1,
		Wireframe: ShapeIcosahedron.Wireframe(),
	})

	for i := 0; i < orbitRingSize; i++ {
		angle := 2 * math.Pi * float64(i) / orbitRingSize
		shape := orbitAuxShapes[i%len(orbitAuxShapes)]
		out = append(out, ParameterSet{
			Shape:     shape,
			ShapeName: shape.String(),
			Position: Vec3{
				X: orbitRingRadius * math.Cos(angle),
				Y: 0,
				Z: orbitRingRadius * math.Sin(angle),
			},
			Scale:     Vec3{X: orbitAuxScale, Y: orbitAuxScale, Z: orbitAuxScale},
			Rotation:  Vec3{X: tilt, Y: angle, Z: 0},
			Color:     color,
			Opacity:   1,
			Wireframe: shape.Wireframe(),
		})
	}

	return out, nil
}
