package lightmerkle

import "io"

// Digest is the constraint for hash values stored in a [Tree].
//
// The zero value of a Digest is reserved:
// the tree uses it to mark padding leaves and fully absent subtrees.
type Digest[T any] interface {
	comparable

	// Compare returns -1, 0, or +1
	// depending on whether the receiver sorts before, equal to, or after other.
	Compare(other T) int
}

// Hasher is the user-defined interface for hashing leaves and nodes.
//
// The Write, Sum, and Reset methods stream the bytes of a single item.
// Leaf turns a streamed item digest (or a caller-supplied digest) into a leaf,
// and Node hashes the concatenation of two child digests.
//
// Leaf and Node may reuse the streaming state,
// so callers must call Reset before streaming a new item.
// Hashers are stateful and must not be shared across goroutines.
type Hasher[T Digest[T]] interface {
	io.Writer

	Reset()
	Sum() T

	Leaf(leaf T) T
	Node(left, right T) T
}

// Hashable is implemented by typed values that can be used with [BuildFromData].
// WriteHash must write a canonical encoding of the value to w.
type Hashable interface {
	WriteHash(w io.Writer)
}

// rawItem adapts a byte slice to [Hashable].
type rawItem []byte

func (r rawItem) WriteHash(w io.Writer) {
	_, _ = w.Write(r)
}

// HashItem returns the leaf digest for a raw item,
// computed the same way [Build] computes each leaf.
func HashItem[T Digest[T]](h Hasher[T], item []byte) T {
	return hashLeaf(h, rawItem(item))
}

func hashLeaf[T Digest[T], O Hashable](h Hasher[T], item O) T {
	h.Reset()
	item.WriteHash(h)
	return h.Leaf(h.Sum())
}
