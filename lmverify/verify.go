// Package lmverify checks [lightmerkle.Proof] values against a trusted root.
//
// A verifier only needs the root, the item, and the proof;
// it never needs the tree itself.
// It must use a hasher that matches the one the tree was built with.
package lmverify

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/lightmerkle"
)

// ErrVerifyFailed is wrapped by every verification failure.
var ErrVerifyFailed = errors.New("merkle proof verification failed")

// Fold recomputes the root implied by p,
// starting from the proof's own leaf digest
// and hashing in each sibling according to the path.
func Fold[T lightmerkle.Digest[T]](h lightmerkle.Hasher[T], p lightmerkle.Proof[T]) T {
	cur := p.Item()
	for k := range p.Siblings() {
		sib := p.Sibling(k)
		if p.IsLeft(k) {
			cur = h.Node(cur, sib)
		} else {
			cur = h.Node(sib, cur)
		}
	}
	return cur
}

// VerifyDigest reports whether p proves that the item digest leaf
// is included in the tree with the given root.
// The leaf digest is passed through h.Leaf,
// matching [lightmerkle.BuildFromHashes].
func VerifyDigest[T lightmerkle.Digest[T]](
	h lightmerkle.Hasher[T], root, leaf T, p lightmerkle.Proof[T],
) error {
	return verifyLeaf(h, root, h.Leaf(leaf), p)
}

// VerifyItem reports whether p proves that the raw item
// is included in the tree with the given root.
// The item is hashed the same way as in [lightmerkle.Build].
func VerifyItem[T lightmerkle.Digest[T]](
	h lightmerkle.Hasher[T], root T, item []byte, p lightmerkle.Proof[T],
) error {
	return verifyLeaf(h, root, lightmerkle.HashItem(h, item), p)
}

func verifyLeaf[T lightmerkle.Digest[T]](
	h lightmerkle.Hasher[T], root, leaf T, p lightmerkle.Proof[T],
) error {
	if p.Siblings() == 0 {
		return fmt.Errorf("%w: proof has no siblings", ErrVerifyFailed)
	}

	if leaf != p.Item() {
		return fmt.Errorf("%w: item does not match proof leaf", ErrVerifyFailed)
	}

	if p.Root() != root {
		return fmt.Errorf("%w: proof was made for a different root", ErrVerifyFailed)
	}

	if got := Fold(h, p); got != root {
		return fmt.Errorf("%w: proof path does not reproduce root", ErrVerifyFailed)
	}

	return nil
}
