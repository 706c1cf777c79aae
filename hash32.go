package lightmerkle

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Hash32 is a 32-byte [Digest],
// sized for SHA-256 and SHA3-256 outputs.
type Hash32 [32]byte

func (h Hash32) Compare(other Hash32) int {
	return bytes.Compare(h[:], other[:])
}

// IsZero reports whether h is the reserved zero digest.
func (h Hash32) IsZero() bool {
	return h == Hash32{}
}

// String returns the lowercase hex encoding of h.
func (h Hash32) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash32 parses the hex encoding produced by [Hash32.String].
func ParseHash32(s string) (Hash32, error) {
	var h Hash32
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("failed to decode hash: %w", err)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("hash must be %d bytes (got %d)", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}
