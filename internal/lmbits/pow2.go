// Package lmbits contains the sizing arithmetic
// shared by the tree builder and the proof generator.
package lmbits

import "math/bits"

// NextPow2 returns n if it is already a power of two,
// otherwise the smallest power of two greater than n.
//
// NextPow2(0) is 0. If the next power of two does not fit in a uint,
// the result wraps to 0; callers reject such sizes before calling.
func NextPow2(n uint) uint {
	if n == 0 {
		return 0
	}

	// Smear the highest set bit of n-1 into every lower bit,
	// then increment to reach the next power.
	n--
	for shift := 1; shift < bits.UintSize; shift <<= 1 {
		n |= n >> shift
	}
	return n + 1
}

// Log2Pow2 returns the base 2 logarithm of n,
// which must be a power of two.
// The result is meaningless for any other input.
func Log2Pow2(n uint) uint {
	return uint(bits.TrailingZeros(n))
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n uint) bool {
	return n != 0 && n&(n-1) == 0
}
