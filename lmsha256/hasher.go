// Package lmsha256 provides a [lightmerkle.Hasher] backed by SHA-256.
package lmsha256

import (
	"crypto/sha256"
	"hash"

	"github.com/gordian-engine/lightmerkle"
)

const HashSize = sha256.Size

// Domain separation prefixes, so that a leaf can never be mistaken for a node.
const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

// Hasher is a [lightmerkle.Hasher] for [lightmerkle.Hash32] digests.
//
// Leaf hashes are SHA256(0x00 || leaf)
// and node hashes are SHA256(0x01 || left || right).
//
// A Hasher must not be used concurrently; create one per goroutine with [New].
type Hasher struct {
	h   hash.Hash
	buf [1 + 2*HashSize]byte
}

var _ lightmerkle.Hasher[lightmerkle.Hash32] = (*Hasher)(nil)

func New() *Hasher {
	return &Hasher{h: sha256.New()}
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
	h.buf[0] = leafPrefix
	copy(h.buf[1:], leaf[:])
	return sha256.Sum256(h.buf[:1+HashSize])
}

func (h *Hasher) Node(left, right lightmerkle.Hash32) lightmerkle.Hash32 {
	h.buf[0] = nodePrefix
	copy(h.buf[1:], left[:])
	copy(h.buf[1+HashSize:], right[:])
	return sha256.Sum256(h.buf[:])
}
