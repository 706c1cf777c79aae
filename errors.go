package lightmerkle

import "fmt"

// InvalidInputError is returned from the Build functions
// when the input cannot form a tree:
// fewer than two items, or a length that is not known in advance.
type InvalidInputError struct {
	// Count is the number of items supplied, or -1 if it was unknown.
	Count int

	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Count < 0 {
		return "invalid merkle tree input: " + e.Reason
	}
	return fmt.Sprintf("invalid merkle tree input (%d items): %s", e.Count, e.Reason)
}

// IndexOutOfRangeError is returned from [*Tree.Prove] and [*Tree.Leaf]
// when the requested index is not one of the original, unpadded leaves.
type IndexOutOfRangeError struct {
	Index, Len int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("leaf index %d out of range [0, %d)", e.Index, e.Len)
}

// InvalidProofError is returned from [NewProof]
// when the lemma and path lengths are inconsistent.
type InvalidProofError struct {
	LemmaLen, PathLen int
}

func (e *InvalidProofError) Error() string {
	return fmt.Sprintf(
		"invalid proof: lemma length %d must be path length %d plus 2",
		e.LemmaLen, e.PathLen,
	)
}
