package ouigen

import "github.com/cespare/xxhash/v2"

// Fingerprint returns the 64-bit xxHash digest of an emitted artifact.
// Because generation is deterministic, comparing fingerprints of a committed
// artifact and a fresh in-memory render detects a stale artifact without a
// byte-by-byte diff.
func Fingerprint(artifact []byte) uint64 {
	return xxhash.Sum64(artifact)
}
