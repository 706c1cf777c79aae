// Package lmsha3 provides a [lightmerkle.Hasher] backed by SHA3-256.
package lmsha3

import (
	"hash"

	"github.com/gordian-engine/lightmerkle"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

// Hasher is a [lightmerkle.Hasher] for [lightmerkle.Hash32] digests,
// using the same leaf and node prefixes as package lmsha256.
type Hasher struct {
	// Streams item bytes.
	h hash.Hash

	// Scratch state for Leaf and Node,
	// so that they never disturb a partially written item.
	scratch hash.Hash
}

var _ lightmerkle.Hasher[lightmerkle.Hash32] = (*Hasher)(nil)

func New() *Hasher {
	return &Hasher{
		h:       sha3.New256(),
		scratch: sha3.New256(),
	}
}

func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

func (h *Hasher) Reset() {
	h.h.Reset()
}

func (h *Hasher) Sum() lightmerkle.Hash32 {
	var out lightmerkle.Hash32
	h.h.Sum(out[:0])
	return out
}

func (h *Hasher) Leaf(leaf lightmerkle.Hash32) lightmerkle.Hash32 {
	s := h.scratch
	s.Reset()
	_, _ = s.Write([]byte{leafPrefix})
	_, _ = s.Write(leaf[:])

	var out lightmerkle.Hash32
	s.Sum(out[:0])
	return out
}

func (h *Hasher) Node(left, right lightmerkle.Hash32) lightmerkle.Hash32 {
	s := h.scratch
	s.Reset()
	_, _ = s.Write([]byte{nodePrefix})
	_, _ = s.Write(left[:])
	_, _ = s.Write(right[:])

	var out lightmerkle.Hash32
	s.Sum(out[:0])
	return out
}
