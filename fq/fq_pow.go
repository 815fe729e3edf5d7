// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

// Pow sets `fe = a ^ by`, where `by` is a 256-bit little-endian limb
// encoded exponent, and returns `fe`.  The exponent bits only ever select
// data, never control flow, so this is safe for secret bases and secret
// exponents.
func (fe *Element) Pow(a *Element, by *[4]uint64) *Element {
	base := NewElementFrom(a)
	res := NewElement().One()
	tmp := NewElement()

	for i := 3; i >= 0; i-- {
		limb := by[i]
		for j := 63; j >= 0; j-- {
			res.Square(res)
			tmp.Multiply(res, base)
			res.ConditionalSelect(res, tmp, (limb>>uint(j))&1)
		}
	}

	return fe.Set(res)
}

// PowVartime sets `fe = a ^ by`, where `by` is a 256-bit little-endian
// limb encoded exponent, and returns `fe`.
//
// This routine is variable-time with respect to the exponent.  If the
// exponent is a fixed public value it is effectively constant-time, which
// is how the inversion and square root exponents use it.
func (fe *Element) PowVartime(a *Element, by *[4]uint64) *Element {
	base := NewElementFrom(a)
	res := NewElement().One()

	for i := 3; i >= 0; i-- {
		limb := by[i]
		for j := 63; j >= 0; j-- {
			res.Square(res)
			if (limb>>uint(j))&1 == 1 {
				res.Multiply(res, base)
			}
		}
	}

	return fe.Set(res)
}

// Pow2k sets `fe = a ^ (2^k)` and returns `fe`.  k MUST be non-zero.
func (fe *Element) Pow2k(a *Element, k uint) *Element {
	if k == 0 {
		// This could just set fe = a, but "don't do that".
		panic("fq: k out of bounds")
	}

	fe.Square(a)
	for i := uint(1); i < k; i++ {
		fe.Square(fe)
	}

	return fe
}
