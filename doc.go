// Package seedicon derives deterministic visual identities from seed text.
//
// The same seed always produces the same set of primitives, so avatars
// can be regenerated anywhere without storing them. Derivation is pure
// SHA-256 arithmetic; an optional Valkey/Redis store caches derived
// parameter sets for hot seeds.
//
// Basic usage:
//
//	client, err := seedicon.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	primitives, err := client.Identicon(ctx, "alice@example.com", 7, "classic")
package seedicon
