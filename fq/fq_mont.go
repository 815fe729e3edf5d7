// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

import (
	"math/bits"

	"gitlab.com/yawning/bls12381-voi/internal/helpers"
)

// Elements are kept in the Montgomery domain, with the wide
// 64 x 64 -> 128 bit operations expressed via math/bits.  The Montgomery
// reduction is based on Algorithm 14.32 in the Handbook of Applied
// Cryptography <http://cacr.uwaterloo.ca/hac/about/chap14.pdf>.  Carries
// and borrows derived from element values are only ever folded back in
// as masks, never branched on.

// adc computes `a + b + carry`, returning the sum and the new carry.
func adc(a, b, carry uint64) (uint64, uint64) {
	s, c1 := bits.Add64(a, b, 0)
	s, c2 := bits.Add64(s, carry, 0)

	// `carry` is unconstrained, so the carry out can be up to 2, and
	// MUST be accumulated rather than ORed.
	return s, c1 + c2
}

// sbb computes `a - (b + borrow)`, returning the difference and the new
// borrow (0 or 1).
func sbb(a, b, borrow uint64) (uint64, uint64) {
	d, b1 := bits.Sub64(a, b, borrow)
	return d, b1
}

// mac computes `a + (b * c) + carry`, returning the result and the new
// carry.
func mac(a, b, c, carry uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(b, c)
	lo, cc := bits.Add64(lo, a, 0)
	hi, _ = bits.Add64(hi, 0, cc)
	lo, cc = bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, cc)
	return lo, hi
}

// reduceSub returns `a - b mod q`, assuming both inputs are below `2 * q`.
// The final borrow is used as a mask to add the modulus back, rather than
// a branch.
func reduceSub(a, b *[4]uint64) [4]uint64 {
	d0, borrow := sbb(a[0], b[0], 0)
	d1, borrow := sbb(a[1], b[1], borrow)
	d2, borrow := sbb(a[2], b[2], borrow)
	d3, borrow := sbb(a[3], b[3], borrow)

	// If the subtraction borrowed, mask = 0xfff...fff, otherwise
	// mask = 0x000...000, so `q & mask` conditionally undoes the
	// subtraction.
	mask := -borrow

	d0, carry := adc(d0, mSat[0]&mask, 0)
	d1, carry = adc(d1, mSat[1]&mask, carry)
	d2, carry = adc(d2, mSat[2]&mask, carry)
	d3, _ = adc(d3, mSat[3]&mask, carry)

	return [4]uint64{d0, d1, d2, d3}
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *Element) Negate(a *Element) *Element {
	// Subtract `a` from the modulus.  The final borrow is ignored
	// because it cannot underflow; `a` is always in the field.
	d0, borrow := sbb(mSat[0], a.m[0], 0)
	d1, borrow := sbb(mSat[1], a.m[1], borrow)
	d2, borrow := sbb(mSat[2], a.m[2], borrow)
	d3, _ := sbb(mSat[3], a.m[3], borrow)

	// The result equals the modulus if `a` was zero.  Build a mask that
	// is all-zeros iff `a` was zero, and all-ones otherwise, to force
	// the zero case back to zero.
	mask := helpers.Uint64IsZero(a.m[0]|a.m[1]|a.m[2]|a.m[3]) - 1

	fe.m = [4]uint64{d0 & mask, d1 & mask, d2 & mask, d3 & mask}
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *Element) Add(a, b *Element) *Element {
	// The final carry is ignored because both operands are below q,
	// so the sum fits in 256 bits.
	d0, carry := adc(a.m[0], b.m[0], 0)
	d1, carry := adc(a.m[1], b.m[1], carry)
	d2, carry := adc(a.m[2], b.m[2], carry)
	d3, _ := adc(a.m[3], b.m[3], carry)

	// Unconditionally subtract the modulus to bring the value into
	// canonical range.  Do NOT replace this with a branch on the carry:
	// the subtract-then-mask-add sequence is the constant-time contract.
	sum := [4]uint64{d0, d1, d2, d3}
	fe.m = reduceSub(&sum, &mSat)
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *Element) Subtract(a, b *Element) *Element {
	fe.m = reduceSub(&a.m, &b.m)
	return fe
}

// Double sets `fe = a + a` and returns `fe`.
func (fe *Element) Double(a *Element) *Element {
	return fe.Add(a, a)
}

// Multiply sets `fe = a * b` and returns `fe`.
func (fe *Element) Multiply(a, b *Element) *Element {
	// Schoolbook multiplication.
	r0, carry := mac(0, a.m[0], b.m[0], 0)
	r1, carry := mac(0, a.m[0], b.m[1], carry)
	r2, carry := mac(0, a.m[0], b.m[2], carry)
	r3, r4 := mac(0, a.m[0], b.m[3], carry)

	r1, carry = mac(r1, a.m[1], b.m[0], 0)
	r2, carry = mac(r2, a.m[1], b.m[1], carry)
	r3, carry = mac(r3, a.m[1], b.m[2], carry)
	r4, r5 := mac(r4, a.m[1], b.m[3], carry)

	r2, carry = mac(r2, a.m[2], b.m[0], 0)
	r3, carry = mac(r3, a.m[2], b.m[1], carry)
	r4, carry = mac(r4, a.m[2], b.m[2], carry)
	r5, r6 := mac(r5, a.m[2], b.m[3], carry)

	r3, carry = mac(r3, a.m[3], b.m[0], 0)
	r4, carry = mac(r4, a.m[3], b.m[1], carry)
	r5, carry = mac(r5, a.m[3], b.m[2], carry)
	r6, r7 := mac(r6, a.m[3], b.m[3], carry)

	fe.m = montgomeryReduce(r0, r1, r2, r3, r4, r5, r6, r7)
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *Element) Square(a *Element) *Element {
	// Compute the distinct cross-limb products once, then double them
	// with a single shift across the limb array, and finally add in the
	// diagonal terms.  This halves the multiply count versus Multiply.
	r1, carry := mac(0, a.m[0], a.m[1], 0)
	r2, carry := mac(0, a.m[0], a.m[2], carry)
	r3, r4 := mac(0, a.m[0], a.m[3], carry)

	r3, carry = mac(r3, a.m[1], a.m[2], 0)
	r4, r5 := mac(r4, a.m[1], a.m[3], carry)

	r5, r6 := mac(r5, a.m[2], a.m[3], 0)

	r7 := r6 >> 63
	r6 = (r6 << 1) | (r5 >> 63)
	r5 = (r5 << 1) | (r4 >> 63)
	r4 = (r4 << 1) | (r3 >> 63)
	r3 = (r3 << 1) | (r2 >> 63)
	r2 = (r2 << 1) | (r1 >> 63)
	r1 = r1 << 1

	r0, carry := mac(0, a.m[0], a.m[0], 0)
	r1, carry = adc(0, r1, carry)
	r2, carry = mac(r2, a.m[1], a.m[1], carry)
	r3, carry = adc(0, r3, carry)
	r4, carry = mac(r4, a.m[2], a.m[2], carry)
	r5, carry = adc(0, r5, carry)
	r6, carry = mac(r6, a.m[3], a.m[3], carry)
	r7, _ = adc(0, r7, carry)

	fe.m = montgomeryReduce(r0, r1, r2, r3, r4, r5, r6, r7)
	return fe
}

// montgomeryReduce folds the 512-bit value `r0..r7` back to a canonical
// 256-bit value, dividing by R in the process.
func montgomeryReduce(r0, r1, r2, r3, r4, r5, r6, r7 uint64) [4]uint64 {
	k := r0 * montInv
	_, carry := mac(r0, k, mSat[0], 0)
	r1, carry = mac(r1, k, mSat[1], carry)
	r2, carry = mac(r2, k, mSat[2], carry)
	r3, carry = mac(r3, k, mSat[3], carry)
	r4, carry2 := adc(r4, 0, carry)

	k = r1 * montInv
	_, carry = mac(r1, k, mSat[0], 0)
	r2, carry = mac(r2, k, mSat[1], carry)
	r3, carry = mac(r3, k, mSat[2], carry)
	r4, carry = mac(r4, k, mSat[3], carry)
	r5, carry2 = adc(r5, carry2, carry)

	k = r2 * montInv
	_, carry = mac(r2, k, mSat[0], 0)
	r3, carry = mac(r3, k, mSat[1], carry)
	r4, carry = mac(r4, k, mSat[2], carry)
	r5, carry = mac(r5, k, mSat[3], carry)
	r6, carry2 = adc(r6, carry2, carry)

	k = r3 * montInv
	_, carry = mac(r3, k, mSat[0], 0)
	r4, carry = mac(r4, k, mSat[1], carry)
	r5, carry = mac(r5, k, mSat[2], carry)
	r6, carry = mac(r6, k, mSat[3], carry)
	r7, _ = adc(r7, carry2, carry)

	// The result may be up to one modulus too large.
	t := [4]uint64{r4, r5, r6, r7}
	return reduceSub(&t, &mSat)
}
