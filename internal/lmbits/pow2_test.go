package lmbits_test

import (
	"math/bits"
	"testing"

	"github.com/gordian-engine/lightmerkle/internal/lmbits"
	"github.com/stretchr/testify/require"
)

func TestNextPow2(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in, want uint
	}{
		{in: 1, want: 1},
		{in: 2, want: 2},
		{in: 3, want: 4},
		{in: 4, want: 4},
		{in: 5, want: 8},
		{in: 7, want: 8},
		{in: 9, want: 16},
		{in: 17, want: 32},
		{in: 1024, want: 1024},
		{in: 1025, want: 2048},
		{in: 1<<20 - 1, want: 1 << 20},
		{in: 1<<20 + 1, want: 1 << 21},
	} {
		require.Equal(t, tc.want, lmbits.NextPow2(tc.in), "NextPow2(%d)", tc.in)
	}
}

func TestNextPow2_topBit(t *testing.T) {
	t.Parallel()

	top := uint(1) << (bits.UintSize - 1)
	require.Equal(t, top, lmbits.NextPow2(top))
	require.Equal(t, top, lmbits.NextPow2(top-1))
	require.Equal(t, top, lmbits.NextPow2((top>>1)+1))
}

func TestLog2Pow2(t *testing.T) {
	t.Parallel()

	for i := range uint(bits.UintSize) {
		require.Equal(t, i, lmbits.Log2Pow2(1<<i))
	}
}

func TestIsPow2(t *testing.T) {
	t.Parallel()

	require.False(t, lmbits.IsPow2(0))
	require.True(t, lmbits.IsPow2(1))
	require.True(t, lmbits.IsPow2(64))
	require.False(t, lmbits.IsPow2(65))
}
