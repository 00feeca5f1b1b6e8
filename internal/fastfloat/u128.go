package fastfloat

import "math/bits"

// mul128 computes the full 128-bit product of a and b, returning the
// high and low 64-bit halves.
func mul128(a, b uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(a, b)
	return hi, lo
}

// addCarry128 adds b into the low half of the (hi, lo) pair,
// propagating the carry out of the low half into the high half, and
// returns the resulting pair.
func addCarry128(hi, lo, b uint64) (nhi, nlo uint64) {
	var carry uint64
	nlo, carry = bits.Add64(lo, b, 0)
	nhi, _ = bits.Add64(hi, 0, carry)
	return nhi, nlo
}
