// Package lightmerkle contains a binary Merkle tree
// stored in a single linear slice, and inclusion proofs for its leaves.
//
// A tree over four leaves looks like:
//
//	        root = h(h12 + h34)
//	       /                   \
//	h12 = h(h1 + h2)      h34 = h(h3 + h4)
//	   /       \             /       \
//	  h1       h2           h3       h4
//
// and is laid out in memory as:
//
//	[h1 h2 h3 h4 h12 h34 root]
//
// The root is always the last element.
//
// Leaf counts that are not a power of two are padded up to the next power of two
// with the zero value of the digest type.
// A parent whose children are both absent is also the zero digest,
// and a parent with only a left child is the hash of that child paired with itself.
// [*Tree.Prove] mirrors that rule when it selects siblings,
// so the builder and the proof generator must always change together.
//
// The zero digest is reserved to mark absent nodes.
// A real hash output equal to the zero digest would be misread as padding;
// that collision is not guarded against.
//
// See package lmverify for checking a [Proof] against a trusted root.
package lightmerkle
