package lightmerkle

import (
	"github.com/bits-and-blooms/bitset"
)

// Proof is an inclusion proof for one leaf of a [Tree].
//
// The lemma starts with the leaf digest, continues with one sibling per tier
// below the root, and ends with the root.
// Bit k of the path is set when the proven node at tier k was a left child.
//
// A Proof holds its own copies of the digests
// and does not reference the Tree it came from.
type Proof[T Digest[T]] struct {
	lemma []T
	path  *bitset.BitSet
}

// NewProof assembles a proof from a lemma and path
// that were produced by [*Tree.Prove] and transported elsewhere.
// The lemma must be exactly two entries longer than the path.
func NewProof[T Digest[T]](lemma []T, path []bool) (Proof[T], error) {
	if len(lemma) != len(path)+2 {
		return Proof[T]{}, &InvalidProofError{
			LemmaLen: len(lemma),
			PathLen:  len(path),
		}
	}

	bs := bitset.New(uint(len(path)))
	for i, left := range path {
		if left {
			bs.Set(uint(i))
		}
	}

	l := make([]T, len(lemma))
	copy(l, lemma)

	return Proof[T]{lemma: l, path: bs}, nil
}

// Prove returns the inclusion proof for the leaf at index i.
// Only original leaves can be proven;
// any other index yields an [*IndexOutOfRangeError].
func (t *Tree[T]) Prove(i int) (Proof[T], error) {
	if i < 0 || i >= t.olen {
		return Proof[T]{}, &IndexOutOfRangeError{Index: i, Len: t.olen}
	}

	var zero T

	// Leaf, one sibling per tier below the root, then the root.
	lemma := make([]T, 1, t.height+1)
	lemma[0] = t.data[i]

	path := bitset.New(uint(t.height - 1))

	// base is the offset of the current tier in t.data,
	// step is the tier's width,
	// and j is the proven node's index within the tier.
	base, step, j := 0, t.leafs, i
	for tier := uint(0); step > 1; tier++ {
		var pair int
		if j&1 == 0 {
			// Left child; the builder paired it with itself
			// if the right sibling is padding.
			if t.data[base+j+1] == zero {
				pair = base + j
			} else {
				pair = base + j + 1
			}
			path.Set(tier)
		} else {
			// Right children always have a real left sibling.
			pair = base + j - 1
		}

		lemma = append(lemma, t.data[pair])

		base += step
		step >>= 1
		j >>= 1
	}

	lemma = append(lemma, t.Root())

	return Proof[T]{lemma: lemma, path: path}, nil
}

// Lemma returns a copy of the proof's digests:
// the leaf, each sibling from the bottom up, and the root.
func (p Proof[T]) Lemma() []T {
	out := make([]T, len(p.lemma))
	copy(out, p.lemma)
	return out
}

// Path returns the direction bits, bottom up.
// A true value means the proven node was the left child at that tier.
func (p Proof[T]) Path() []bool {
	n := p.pathLen()
	out := make([]bool, n)
	for i := range n {
		out[i] = p.path.Test(uint(i))
	}
	return out
}

// PathBits returns a copy of the direction bits as a bitset.
func (p Proof[T]) PathBits() *bitset.BitSet {
	if p.path == nil {
		return bitset.New(0)
	}
	return p.path.Clone()
}

// Siblings returns the number of sibling digests in the lemma,
// which equals the length of the path.
func (p Proof[T]) Siblings() int {
	return p.pathLen()
}

// Sibling returns the sibling digest at tier k, counting from the leaves.
func (p Proof[T]) Sibling(k int) T {
	return p.lemma[k+1]
}

// IsLeft reports whether the proven node was the left child at tier k.
func (p Proof[T]) IsLeft(k int) bool {
	return p.path.Test(uint(k))
}

// Item returns the leaf digest being proven.
func (p Proof[T]) Item() T {
	return p.lemma[0]
}

// Root returns the root digest recorded in the proof.
func (p Proof[T]) Root() T {
	return p.lemma[len(p.lemma)-1]
}

// Index returns the leaf index encoded by the path.
// A right turn at tier k contributes bit k of the index.
func (p Proof[T]) Index() int {
	idx := 0
	for k := range p.pathLen() {
		if !p.path.Test(uint(k)) {
			idx |= 1 << k
		}
	}
	return idx
}

func (p Proof[T]) pathLen() int {
	if p.path == nil {
		return 0
	}
	return int(p.path.Len())
}
