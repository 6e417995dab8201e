package figure

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/kailas-cloud/seedicon/internal/domain"
	"github.com/kailas-cloud/seedicon/internal/domain/seed"
)

// Pinned: sha256("Alice0").
const aliceDigest = seed.Digest("e2e90d225b4a14c1459d11c4fa78af88fdc6bb5854b4562a8ecf5ac4dd0f49cc")

func TestScalar(t *testing.T) {
	tests := []struct {
		digest seed.Digest
		slot   int
		rng    float64
		want   float64
	}{
		{"00", 0, 10, 0},
		{"ff", 0, 10, 10},
		{"ff", 0, 360, 360},
		{"80", 0, 2, float64(0x80) / 255 * 2},
		{aliceDigest, 0, 8, float64(0xe2) / 255 * 8},
		{aliceDigest, 7, 360, float64(0xc1) / 255 * 360},
		// Slot 32 wraps to slot 0 on a 32-byte digest.
		{aliceDigest, 32, 8, float64(0xe2) / 255 * 8},
		// Slot 11 on a 2-byte digest wraps to slot 1.
		{"e2e9", 11, 1, float64(0xe9) / 255},
	}
	for _, tc := range tests {
		got, err := Scalar(tc.digest, tc.slot, tc.rng)
		if err != nil {
			t.Fatalf("Scalar(%q, %d, %v) error: %v", tc.digest, tc.slot, tc.rng, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Scalar(%q, %d, %v) = %v, want %v", tc.digest, tc.slot, tc.rng, got, tc.want)
		}
	}
}

func TestScalar_EmptyDigest(t *testing.T) {
	if _, err := Scalar("", 0, 10); !errors.Is(err, domain.ErrInvalidDigest) {
		t.Errorf("Scalar on empty digest: error = %v, want ErrInvalidDigest", err)
	}
}

func TestDerive_PinnedShape(t *testing.T) {
	ps, err := Derive(aliceDigest)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	// Byte 0 of the Alice digest is 0xe2 = 226; floor(226/255*8) = 7.
	if ps.Shape != ShapeIcosahedron {
		t.Errorf("Shape = %v, want %v", ps.Shape, ShapeIcosahedron)
	}
	if ps.ShapeName != "icosahedron" {
		t.Errorf("ShapeName = %q, want %q", ps.ShapeName, "icosahedron")
	}
	if ps.Wireframe {
		t.Error("Wireframe = true for odd ordinal, want false")
	}
	wantHue := float64(0xc1) / 255 * 360
	if math.Abs(ps.Color.H-wantHue) > 1e-12 {
		t.Errorf("Hue = %v, want %v", ps.Color.H, wantHue)
	}
}

func TestDerive_ShapeOverflowFallsBack(t *testing.T) {
	// First byte 0xff rescales to exactly ShapeCount, past the last variant.
	d := seed.Digest("ff00000000000000000000000000000000000000000000000000000000000000")
	ps, err := Derive(d)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if ps.Shape != ShapeCube {
		t.Errorf("Shape = %v, want fallback %v", ps.Shape, ShapeCube)
	}
}

func TestDerive_RangeInvariants(t *testing.T) {
	for i := 0; i < 64; i++ {
		d := seed.New(fmt.Sprintf("user-%d", i), i%4)
		ps, err := Derive(d)
		if err != nil {
			t.Fatalf("Derive(%s): %v", d, err)
		}
		assertInRange(t, "position.x", ps.Position.X, -5, 5)
		assertInRange(t, "position.y", ps.Position.Y, -5, 5)
		assertInRange(t, "position.z", ps.Position.Z, -5, 5)
		assertInRange(t, "scale.x", ps.Scale.X, 0.5, 2.5)
		assertInRange(t, "scale.y", ps.Scale.Y, 0.5, 2.5)
		assertInRange(t, "scale.z", ps.Scale.Z, 0.5, 2.5)
		assertInRange(t, "rotation.x", ps.Rotation.X, 0, 2*math.Pi)
		assertInRange(t, "rotation.y", ps.Rotation.Y, 0, 2*math.Pi)
		assertInRange(t, "rotation.z", ps.Rotation.Z, 0, 2*math.Pi)
		assertInRange(t, "hue", ps.Color.H, 0, 360)
		assertInRange(t, "opacity", ps.Opacity, 0.5, 1)
		if !ps.Shape.IsValid() {
			t.Errorf("Derive(%s): shape %d out of set", d, ps.Shape)
		}
		if ps.Color.S != 0.70 || ps.Color.L != 0.50 {
			t.Errorf("Derive(%s): S/L = %v/%v, want fixed 0.70/0.50", d, ps.Color.S, ps.Color.L)
		}
		if ps.Wireframe != (int(ps.Shape)%2 == 0) {
			t.Errorf("Derive(%s): wireframe %v inconsistent with ordinal %d", d, ps.Wireframe, ps.Shape)
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	a, err := Derive(aliceDigest)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := Derive(aliceDigest)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if a != b {
		t.Errorf("Derive not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestDerive_WrapOnShortDigest(t *testing.T) {
	// 2 bytes cover slots 0-1; slots 2-11 must wrap, not fail.
	ps, err := Derive(seed.Digest("e2e9"))
	if err != nil {
		t.Fatalf("Derive on short digest: %v", err)
	}
	if !ps.Shape.IsValid() {
		t.Errorf("shape %d out of set", ps.Shape)
	}
	assertInRange(t, "opacity", ps.Opacity, 0.5, 1)
}

func TestDerive_InvalidDigest(t *testing.T) {
	for _, in := range []string{"", "abc", "zzzz", "E2E9"} {
		if _, err := Derive(seed.Digest(in)); !errors.Is(err, domain.ErrInvalidDigest) {
			t.Errorf("Derive(%q) error = %v, want ErrInvalidDigest", in, err)
		}
	}
}

func assertInRange(t *testing.T, field string, v, lo, hi float64) {
	t.Helper()
	if v < lo || v > hi {
		t.Errorf("%s = %v, want within [%v, %v]", field, v, lo, hi)
	}
}
