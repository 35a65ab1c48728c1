package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// IDLength is the length in hex characters of every opaque identifier
// in the system: identity ids, session ids, reset tokens, account ids.
const IDLength = 64

// NewID generates a cryptographically secure opaque identifier: the
// hex-encoded SHA-256 of 64 bytes drawn from the system CSPRNG. The
// result carries well over the 160 bits of entropy sessions require.
func NewID() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}

// ValidID reports whether s has the shape of a NewID output. It does
// not vouch for existence, only format.
func ValidID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
