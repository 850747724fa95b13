package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContentKey returns the hex sha256 of s. Identical input always maps to
// the same key, which is what the extraction cache relies on.
func HashContentKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
