// Package figure maps digests to visual attributes. Derivation is a pure
// function: one digest in, one bounded ParameterSet out. Each attribute
// reads its own fixed slot of the digest so changing how one attribute is
// derived never perturbs another.
package figure

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

// Fixed slot assignments. Frozen: renumbering changes every existing
// identicon.
const (
	slotShape   = 0
	slotPosX    = 1
	slotPosY    = 2
	slotPosZ    = 3
	slotScaleX  = 4
	slotScaleY  = 5
	slotScaleZ  = 6
	slotHue     = 7
	slotRotX    = 8
	slotRotY    = 9
	slotRotZ    = 10
	slotOpacity = 11
)

// Fixed saturation/lightness for derived colors.
const (
	colorSaturation = 0.70
	colorLightness  = 0.50
)

// ParameterSet holds the derived visual attributes of one primitive.
// It is pure value data: recomputed on demand, cached only as an
// optimization, never mutated.
type ParameterSet struct {
	Shape     ShapeKind `json:"-"`
	ShapeName string    `json:"shape"`
	Position  Vec3      `json:"position"`
	Scale     Vec3      `json:"scale"`
	Rotation  Vec3      `json:"rotation"`
	Color     HSL       `json:"color"`
	Opacity   float64   `json:"opacity"`
	Wireframe bool      `json:"wireframe"`
}

// Scalar extracts the byte at the given slot and rescales it linearly into
// [0, rng]. Slots wrap modulo the number of byte segments, so every slot
// index stays valid even for digests shorter than the highest slot.
func Scalar(d seed.Digest, slot int, rng float64) (float64, error) {
	n := d.Bytes()
	if n == 0 {
		return 0, fmt.Errorf("%w: empty", domain.ErrInvalidDigest)
	}
	b, err := d.Byte(slot % n)
	if err != nil {
		return 0, err
	}
	return float64(b) / 255 * rng, nil
}

// Derive maps a digest to a full ParameterSet using the fixed slot table.
// The only failure mode is a malformed digest; a valid digest of any even
// hex length produces a complete in-range result.
func Derive(d seed.Digest) (ParameterSet, error) {
	if _, err := seed.Parse(d.String()); err != nil {
		return ParameterSet{}, err
	}

	shapeRaw, err := Scalar(d, slotShape, ShapeCount)
	if err != nil {
		return ParameterSet{}, err
	}
	shape := ShapeKind(math.Floor(shapeRaw))
	if !shape.IsValid() {
		// Byte 255 rescales to exactly ShapeCount; wrap to the first variant.
		shape = ShapeCube
	}

	var ps ParameterSet
	ps.Shape = shape
	ps.ShapeName = shape.String()
	ps.Wireframe = shape.Wireframe()

	if ps.Position, err = deriveVec(d, slotPosX, 10, -5); err != nil {
		return ParameterSet{}, err
	}
	if ps.Scale, err = deriveVec(d, slotScaleX, 2, 0.5); err != nil {
		return ParameterSet{}, err
	}
	if ps.Rotation, err = deriveVec(d, slotRotX, 2*math.Pi, 0); err != nil {
		return ParameterSet{}, err
	}

	hue, err := Scalar(d, slotHue, 360)
	if err != nil {
		return ParameterSet{}, err
	}
	ps.Color = HSL{H: hue, S: colorSaturation, L: colorLightness}

	op, err := Scalar(d, slotOpacity, 0.5)
	if err != nil {
		return ParameterSet{}, err
	}
	ps.Opacity = 0.5 + op

	return ps, nil
}

// deriveVec reads three consecutive slots into a Vec3, each component
// rescaled into [offset, offset+rng].
func deriveVec(d seed.Digest, firstSlot int, rng, offset float64) (Vec3, error) {
	var v [3]float64
	for i := range v {
		s, err := Scalar(d, firstSlot+i, rng)
		if err != nil {
			return Vec3{}, err
		}
		v[i] = s + offset
	}
	return Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
