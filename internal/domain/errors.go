package domain

import "errors"

var (
	// ErrInvalidDigest signals a malformed digest (wrong length or non-hex input).
	ErrInvalidDigest = errors.New("invalid digest")
	// ErrUnknownStrategy signals an unrecognized derivation strategy name.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrInvalidCount signals a primitive count outside the allowed range.
	ErrInvalidCount = errors.New("invalid primitive count")
)
