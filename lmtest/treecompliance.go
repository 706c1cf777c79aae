package lmtest

import (
	"fmt"
	"testing"

	"github.com/gordian-engine/lightmerkle"
	"github.com/gordian-engine/lightmerkle/internal/lmbits"
	"github.com/gordian-engine/lightmerkle/internal/ltest"
	"github.com/gordian-engine/lightmerkle/lmverify"
	"github.com/stretchr/testify/require"
)

// TreeSizes are the leaf counts exercised by [TestTreeCompliance]:
// powers of two and their successors.
var TreeSizes = []int{2, 3, 4, 5, 8, 9, 16, 17}

// TestTreeCompliance builds trees of every size in [TreeSizes] with the hasher,
// and checks that every proof verifies and that tampered proofs do not.
func TestTreeCompliance[T lightmerkle.Digest[T]](t *testing.T, f HasherFactory[T]) {
	for _, n := range TreeSizes {
		t.Run(fmt.Sprintf("%d leaves", n), func(t *testing.T) {
			t.Parallel()

			items := ltest.RandomItemsForTest(t, n, 24)

			tree, err := lightmerkle.Build(items, f())
			require.NoError(t, err)

			require.Equal(t, n, tree.OriginalLen())
			require.Equal(t, int(lmbits.NextPow2(uint(n))), tree.LeafCount())
			require.Equal(t, 2*tree.LeafCount()-1, tree.Len())

			again, err := lightmerkle.Build(items, f())
			require.NoError(t, err)
			require.Equal(t, tree.Root(), again.Root())

			h := f()
			for i, item := range items {
				p, err := tree.Prove(i)
				require.NoError(t, err)

				require.Len(t, p.Lemma(), len(p.Path())+2)
				require.Len(t, p.Path(), tree.Height()-1)
				require.Equal(t, i, p.Index())

				require.NoError(t, lmverify.VerifyItem(h, tree.Root(), item, p))
				require.Equal(t, tree.Root(), lmverify.Fold(h, p))
			}
		})
	}

	t.Run("tampered siblings fail", func(t *testing.T) {
		t.Parallel()

		const n = 9
		items := ltest.RandomItemsForTest(t, n, 16)

		tree, err := lightmerkle.Build(items, f())
		require.NoError(t, err)

		h := f()
		for i, item := range items {
			p, err := tree.Prove(i)
			require.NoError(t, err)

			lemma := p.Lemma()
			for k := 1; k < len(lemma)-1; k++ {
				bad := make([]T, len(lemma))
				copy(bad, lemma)

				// Replace the sibling with a digest of unrelated data.
				h.Reset()
				_, _ = h.Write([]byte(fmt.Sprintf("tamper %d %d", i, k)))
				bad[k] = h.Sum()

				bp, err := lightmerkle.NewProof(bad, p.Path())
				require.NoError(t, err)

				require.NotEqual(t, tree.Root(), lmverify.Fold(h, bp))
				require.ErrorIs(t, lmverify.VerifyItem(h, tree.Root(), item, bp), lmverify.ErrVerifyFailed)
			}
		}
	})

	t.Run("wrong item fails", func(t *testing.T) {
		t.Parallel()

		items := ltest.RandomItemsForTest(t, 5, 16)

		tree, err := lightmerkle.Build(items, f())
		require.NoError(t, err)

		p, err := tree.Prove(2)
		require.NoError(t, err)

		err = lmverify.VerifyItem(f(), tree.Root(), items[3], p)
		require.ErrorIs(t, err, lmverify.ErrVerifyFailed)
	})
}
