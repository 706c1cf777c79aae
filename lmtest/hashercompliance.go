// Package lmtest contains compliance suites
// for [lightmerkle.Hasher] implementations.
package lmtest

import (
	"testing"

	"github.com/gordian-engine/lightmerkle"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a fresh hasher.
// Each subtest calls it so that subtests may run in parallel.
type HasherFactory[T lightmerkle.Digest[T]] func() lightmerkle.Hasher[T]

// TestHasherCompliance checks the properties of a hasher
// that the tree builder and the verifiers rely on.
func TestHasherCompliance[T lightmerkle.Digest[T]](t *testing.T, f HasherFactory[T]) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		_, _ = h.Write([]byte("deterministic_data"))
		d1 := h.Sum()

		h = f()
		_, _ = h.Write([]byte("deterministic_data"))
		d2 := h.Sum()

		require.Equal(t, d1, d2)
		require.Zero(t, d1.Compare(d2))
	})

	t.Run("reset clears streamed data", func(t *testing.T) {
		t.Parallel()

		h := f()
		_, _ = h.Write([]byte("stale"))
		h.Reset()
		_, _ = h.Write([]byte("fresh"))
		got := h.Sum()

		h = f()
		_, _ = h.Write([]byte("fresh"))
		require.Equal(t, h.Sum(), got)
	})

	t.Run("leaf and node do not disturb reset", func(t *testing.T) {
		t.Parallel()

		h := f()
		_, _ = h.Write([]byte("a"))
		a := h.Sum()
		_ = h.Leaf(a)
		_ = h.Node(a, a)

		h.Reset()
		_, _ = h.Write([]byte("a"))
		require.Equal(t, a, h.Sum())
	})

	t.Run("outputs are never zero", func(t *testing.T) {
		t.Parallel()

		var zero T

		h := f()
		_, _ = h.Write([]byte("x"))
		d := h.Sum()
		require.NotEqual(t, zero, d)
		require.NotEqual(t, zero, h.Leaf(d))
		require.NotEqual(t, zero, h.Node(d, d))
	})

	t.Run("leaf is domain separated", func(t *testing.T) {
		t.Parallel()

		h := f()
		_, _ = h.Write([]byte("x"))
		d := h.Sum()

		require.NotEqual(t, d, h.Leaf(d))
		require.NotEqual(t, h.Leaf(d), h.Node(d, d))
	})

	t.Run("node respects order", func(t *testing.T) {
		t.Parallel()

		h := f()
		_, _ = h.Write([]byte("left"))
		l := h.Sum()
		h.Reset()
		_, _ = h.Write([]byte("right"))
		r := h.Sum()

		require.NotEqual(t, h.Node(l, r), h.Node(r, l))
	})

	t.Run("compare is a total order", func(t *testing.T) {
		t.Parallel()

		h := f()
		_, _ = h.Write([]byte("one"))
		a := h.Sum()
		h.Reset()
		_, _ = h.Write([]byte("two"))
		b := h.Sum()

		require.Zero(t, a.Compare(a))
		require.Equal(t, -a.Compare(b), b.Compare(a))
		require.NotZero(t, a.Compare(b))
	})
}
