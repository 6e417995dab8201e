// Package seed derives deterministic digests from (text, index) pairs.
// A digest is the sole input to attribute derivation: the same pair always
// yields the same digest across runs and platforms.
package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/seedicon/internal/domain"
)

// HexLen is the length of a full SHA-256 digest in hex characters.
const HexLen = 64

// Digest is a lowercase hex-encoded hash. Digests are opaque byte material,
// never secrets. Construct via New or Parse.
type Digest string

// New hashes text with the decimal form of index appended (no separator)
// and returns the 64-char lowercase hex digest. The index lets one seed
// text drive multiple distinct primitives.
func New(text string, index int) Digest {
	sum := sha256.Sum256([]byte(text + strconv.Itoa(index)))
	return Digest(hex.EncodeToString(sum[:]))
}

// Parse validates an externally supplied digest string.
// The digest must be non-empty, even-length lowercase hex. Full 64-char
// digests are the norm; shorter ones remain usable because slot lookups
// wrap around, but odd lengths and non-hex characters are rejected.
func Parse(s string) (Digest, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", domain.ErrInvalidDigest)
	}
	if len(s)%2 != 0 {
		return "", fmt.Errorf("%w: odd length %d", domain.ErrInvalidDigest, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("%w: non-hex character at position %d", domain.ErrInvalidDigest, i)
		}
	}
	return Digest(s), nil
}

// Bytes returns the number of byte segments available for slot extraction.
func (d Digest) Bytes() int { return len(d) / 2 }

// Byte extracts the 2-hex-char segment at the given byte offset as 0-255.
// The offset must be within [0, Bytes()); callers normally go through the
// slot-wrap rule in the figure package.
func (d Digest) Byte(offset int) (uint8, error) {
	start := offset * 2
	if start < 0 || start+2 > len(d) {
		return 0, fmt.Errorf("%w: byte offset %d out of range", domain.ErrInvalidDigest, offset)
	}
	v, err := strconv.ParseUint(string(d[start:start+2]), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: segment %q", domain.ErrInvalidDigest, string(d[start:start+2]))
	}
	return uint8(v), nil
}

// String returns the hex form.
func (d Digest) String() string { return string(d) }
