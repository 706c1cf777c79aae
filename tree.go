package lightmerkle

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/gordian-engine/lightmerkle/internal/lmbits"
)

// Tree is a binary Merkle tree whose leaf count is padded to a power of two.
//
// Leaves occupy the first LeafCount entries of the backing slice,
// each subsequent tier follows the one below it,
// and the root is the final entry.
//
// Create a Tree with [Build], [BuildFromData], [BuildFromHashes], or [BuildFromSeq].
// A Tree is never modified after it is built,
// so it is safe to call its methods concurrently.
type Tree[T Digest[T]] struct {
	// Every node, leaves first, root last.
	data []T

	// Number of real leaves.
	olen int

	// Leaf count including padding; always a power of two.
	leafs int

	// Number of tiers, including the leaf tier and the root.
	height int
}

// Build hashes each item with h and builds a tree over the resulting leaves.
//
// Each item is hashed by resetting h, writing the item,
// and passing h.Sum() through h.Leaf.
//
// Build returns an [*InvalidInputError] if there are fewer than two items.
func Build[T Digest[T]](items [][]byte, h Hasher[T]) (*Tree[T], error) {
	t, err := newTree[T](len(items))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		t.data = append(t.data, hashLeaf(h, rawItem(item)))
	}

	t.build(h)
	return t, nil
}

// BuildFromData is like [Build] but streams typed values
// into h through their WriteHash methods.
func BuildFromData[T Digest[T], O Hashable](items []O, h Hasher[T]) (*Tree[T], error) {
	t, err := newTree[T](len(items))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		t.data = append(t.data, hashLeaf(h, item))
	}

	t.build(h)
	return t, nil
}

// BuildFromHashes builds a tree over digests that the caller already computed.
// Each digest is still passed through h.Leaf,
// so that leaves are domain-separated from internal nodes.
func BuildFromHashes[T Digest[T]](digests []T, h Hasher[T]) (*Tree[T], error) {
	t, err := newTree[T](len(digests))
	if err != nil {
		return nil, err
	}

	for _, d := range digests {
		t.data = append(t.data, h.Leaf(d))
	}

	t.build(h)
	return t, nil
}

// BuildFromSeq builds a tree over the digests yielded by seq,
// which must yield exactly sizeHint values.
//
// The tree layout depends on the element count,
// so a negative sizeHint (an unknown length) is rejected
// with an [*InvalidInputError], as is a sequence that yields
// more or fewer values than sizeHint.
func BuildFromSeq[T Digest[T]](seq iter.Seq[T], sizeHint int, h Hasher[T]) (*Tree[T], error) {
	if sizeHint < 0 {
		return nil, &InvalidInputError{
			Count:  -1,
			Reason: "sequence length must be known in advance",
		}
	}

	t, err := newTree[T](sizeHint)
	if err != nil {
		return nil, err
	}

	n := 0
	for d := range seq {
		n++
		if n > sizeHint {
			return nil, &InvalidInputError{
				Count:  n,
				Reason: fmt.Sprintf("sequence yielded more than the %d hinted values", sizeHint),
			}
		}
		t.data = append(t.data, h.Leaf(d))
	}
	if n != sizeHint {
		return nil, &InvalidInputError{
			Count:  n,
			Reason: fmt.Sprintf("sequence yielded fewer than the %d hinted values", sizeHint),
		}
	}

	t.build(h)
	return t, nil
}

// newTree validates the leaf count and returns a tree
// whose data slice is empty but has capacity for every node.
func newTree[T Digest[T]](n int) (*Tree[T], error) {
	if n < 2 {
		return nil, &InvalidInputError{
			Count:  n,
			Reason: "a tree requires at least 2 items",
		}
	}

	// 2*leafs-1 must fit in an int.
	if bits.Len(uint(n)) >= bits.UintSize-2 {
		return nil, &InvalidInputError{
			Count:  n,
			Reason: "too many items",
		}
	}

	leafs := lmbits.NextPow2(uint(n))
	size := 2*leafs - 1

	return &Tree[T]{
		data: make([]T, 0, size),

		olen:   n,
		leafs:  int(leafs),
		height: int(lmbits.Log2Pow2(size + 1)),
	}, nil
}

// build pads the leaf tier and fills in every tier above it.
// t.data must contain exactly the olen real leaves.
func (t *Tree[T]) build(h Hasher[T]) {
	size := 2*t.leafs - 1
	if len(t.data) != t.olen {
		panic(fmt.Errorf(
			"BUG: tree expected %d leaves before build, got %d",
			t.olen, len(t.data),
		))
	}

	// Padding leaves and all the internal nodes start as zero;
	// padding leaves stay that way.
	t.data = t.data[:size]
	clear(t.data[t.olen:])

	var zero T

	// Merge pairs left to right, tier by tier.
	// Parents of tier k are written immediately after tier k,
	// so one pass over the slice fills every tier through the root.
	j := t.leafs
	for i := 0; i < size-1; i += 2 {
		left, right := t.data[i], t.data[i+1]
		switch {
		case left == zero:
			// No left child means the whole subtree is padding.
			t.data[j] = zero
		case right == zero:
			// A left child without a right sibling is paired with itself.
			t.data[j] = h.Node(left, left)
		default:
			t.data[j] = h.Node(left, right)
		}
		j++
	}
}

// Root returns the Merkle root.
func (t *Tree[T]) Root() T {
	return t.data[len(t.data)-1]
}

// OriginalLen returns the number of items the tree was built from,
// excluding padding.
func (t *Tree[T]) OriginalLen() int {
	return t.olen
}

// Len returns the number of nodes in the tree,
// which is always 2*LeafCount()-1.
func (t *Tree[T]) Len() int {
	return len(t.data)
}

// Height returns the number of tiers in the tree,
// counting both the leaf tier and the root.
func (t *Tree[T]) Height() int {
	return t.height
}

// LeafCount returns the number of leaves including padding,
// which is always a power of two.
func (t *Tree[T]) LeafCount() int {
	return t.leafs
}

// Leaf returns the leaf digest at index i,
// which must be one of the original leaves.
func (t *Tree[T]) Leaf(i int) (T, error) {
	if i < 0 || i >= t.olen {
		var zero T
		return zero, &IndexOutOfRangeError{Index: i, Len: t.olen}
	}
	return t.data[i], nil
}

// Nodes returns a copy of every node in the tree, in layout order.
func (t *Tree[T]) Nodes() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	return out
}

// All iterates over every node in layout order without copying.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, d := range t.data {
			if !yield(i, d) {
				return
			}
		}
	}
}
