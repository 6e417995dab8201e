package seed

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/seedicon/internal/domain"
)

// Pinned SHA-256 vectors: these must hold on every platform and release.
const (
	aliceDigest = "e2e90d225b4a14c1459d11c4fa78af88fdc6bb5854b4562a8ecf5ac4dd0f49cc" // sha256("Alice0")
	emptyDigest = "5feceb66ffc86f38d952786c6d696c79c2dbc239dd4e91b46729d73a27fb57e9" // sha256("0")
)

func TestNew_PinnedVectors(t *testing.T) {
	tests := []struct {
		text  string
		index int
		want  string
	}{
		{"Alice", 0, aliceDigest},
		{"", 0, emptyDigest},
	}
	for _, tc := range tests {
		if got := New(tc.text, tc.index); got.String() != tc.want {
			t.Errorf("New(%q, %d) = %s, want %s", tc.text, tc.index, got, tc.want)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	inputs := []struct {
		text  string
		index int
	}{
		{"Alice", 0},
		{"", 0},
		{"Bob", 42},
		{"日本語", 7},
	}
	for _, in := range inputs {
		a := New(in.text, in.index)
		b := New(in.text, in.index)
		if a != b {
			t.Errorf("New(%q, %d) not deterministic: %s != %s", in.text, in.index, a, b)
		}
		if len(a) != HexLen {
			t.Errorf("New(%q, %d) length = %d, want %d", in.text, in.index, len(a), HexLen)
		}
	}
}

func TestNew_IndexSensitivity(t *testing.T) {
	for _, text := range []string{"Alice", "Bob", "", "x"} {
		for i := 0; i < 8; i++ {
			if New(text, i) == New(text, i+1) {
				t.Errorf("New(%q, %d) == New(%q, %d)", text, i, text, i+1)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"full digest", aliceDigest, true},
		{"short even hex", "e2e90d", true},
		{"single byte", "ff", true},
		{"empty", "", false},
		{"odd length", "e2e", false},
		{"uppercase", "E2E90D", false},
		{"non-hex", "zz1234", false},
		{"whitespace", "e2 90d2", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Parse(tc.input)
			if tc.ok {
				if err != nil {
					t.Fatalf("Parse(%q) error: %v", tc.input, err)
				}
				if d.String() != tc.input {
					t.Errorf("Parse(%q) = %q", tc.input, d)
				}
				return
			}
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tc.input)
			}
			if !errors.Is(err, domain.ErrInvalidDigest) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidDigest", tc.input, err)
			}
		})
	}
}

func TestByte(t *testing.T) {
	d := Digest("e2e90d")
	tests := []struct {
		offset int
		want   uint8
	}{
		{0, 0xe2},
		{1, 0xe9},
		{2, 0x0d},
	}
	for _, tc := range tests {
		got, err := d.Byte(tc.offset)
		if err != nil {
			t.Fatalf("Byte(%d) error: %v", tc.offset, err)
		}
		if got != tc.want {
			t.Errorf("Byte(%d) = %#x, want %#x", tc.offset, got, tc.want)
		}
	}

	if _, err := d.Byte(3); !errors.Is(err, domain.ErrInvalidDigest) {
		t.Errorf("Byte(3) error = %v, want ErrInvalidDigest", err)
	}
	if _, err := d.Byte(-1); !errors.Is(err, domain.ErrInvalidDigest) {
		t.Errorf("Byte(-1) error = %v, want ErrInvalidDigest", err)
	}
}

func TestBytes(t *testing.T) {
	if got := New("Alice", 0).Bytes(); got != 32 {
		t.Errorf("Bytes() = %d, want 32", got)
	}
	if got := Digest("abcd").Bytes(); got != 2 {
		t.Errorf("Bytes() = %d, want 2", got)
	}
}
