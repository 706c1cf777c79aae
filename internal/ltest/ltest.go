// Package ltest contains helpers shared by the tests in this module.
package ltest

import (
	"crypto/sha256"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/neilotoole/slogt"
)

// RandomDataForTest returns a byte slice of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t testing.TB, sz int) []byte {
	// SHA-256 output is exactly the ChaCha8 seed size.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]byte, sz)
	if _, err := chacha.Read(out); err != nil {
		panic(err)
	}
	return out
}

// RandomItemsForTest returns n items of size sz each,
// drawn from one deterministic stream for the test.
func RandomItemsForTest(t testing.TB, n, sz int) [][]byte {
	mem := RandomDataForTest(t, n*sz)
	items := make([][]byte, n)
	for i := range items {
		items[i] = mem[i*sz : (i+1)*sz : (i+1)*sz]
	}
	return items
}

// NewLogger returns a logger that writes through t.Log,
// so output is only shown for failing or verbose tests.
func NewLogger(t testing.TB) *slog.Logger {
	return slogt.New(t)
}
