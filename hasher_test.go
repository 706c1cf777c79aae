package lightmerkle_test

import (
	"cmp"
	"encoding/binary"
	"hash"
	"hash/fnv"

	"github.com/gordian-engine/lightmerkle"
)

// fnvDigest and fnvHasher are a simple, test-only hasher implementation.
// FNV is not a cryptographic hash,
// but the small digests keep test assertions easy to follow.
type fnvDigest uint64

func (d fnvDigest) Compare(other fnvDigest) int {
	return cmp.Compare(d, other)
}

type fnvHasher struct {
	h hash.Hash64
}

var _ lightmerkle.Hasher[fnvDigest] = (*fnvHasher)(nil)

func newFNV() *fnvHasher {
	return &fnvHasher{h: fnv.New64a()}
}

func (f *fnvHasher) Write(p []byte) (int, error) { return f.h.Write(p) }
func (f *fnvHasher) Reset()                      { f.h.Reset() }
func (f *fnvHasher) Sum() fnvDigest              { return fnvDigest(f.h.Sum64()) }

func (f *fnvHasher) Leaf(leaf fnvDigest) fnvDigest {
	return fnvSum(append([]byte("L."), be(leaf)...))
}

func (f *fnvHasher) Node(left, right fnvDigest) fnvDigest {
	b := append([]byte("N."), be(left)...)
	return fnvSum(append(b, be(right)...))
}

func be(d fnvDigest) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(d))
}

func fnvSum(b []byte) fnvDigest {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return fnvDigest(h.Sum64())
}

// fnvLeaf is the leaf digest that Build produces for the given item.
func fnvLeaf(item string) fnvDigest {
	f := newFNV()
	return f.Leaf(fnvSum([]byte(item)))
}

// fnvNode is a convenience wrapper around fnvHasher.Node.
func fnvNode(left, right fnvDigest) fnvDigest {
	return newFNV().Node(left, right)
}

func byteItems(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
