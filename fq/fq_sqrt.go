// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

// Exponents used by the Legendre symbol and Tonelli-Shanks, as 256-bit
// little-endian limb vectors.  All are fixed public functions of q, so
// PowVartime is safe.
var (
	// (q - 1) / 2
	expLegendre = [4]uint64{
		0x7fffffff80000000,
		0xa9ded2017fff2dff,
		0x199cec0404d0ec02,
		0x39f6d3a994cebea4,
	}

	// t, where q - 1 = t * 2^32 with t odd
	expT = [4]uint64{
		0xfffe5bfeffffffff,
		0x09a1d80553bda402,
		0x299d7d483339d808,
		0x0000000073eda753,
	}

	// (t + 1) / 2
	expTPlus1Over2 = [4]uint64{
		0x7fff2dff80000000,
		0x04d0ec02a9ded201,
		0x94cebea4199cec04,
		0x0000000039f6d3a9,
	}
)

// legendreVartime returns the Legendre symbol of `a` (0, 1, or -1, as a
// field element), computed via Euler's criterion `a^((q-1)/2)`.
func legendreVartime(a *Element) *Element {
	return NewElement().PowVartime(a, &expLegendre)
}

// IsSquareVartime returns 1 iff `fe` has a square root, 0 otherwise.
// Zero counts as a square.
//
// This routine is variable-time.
func (fe *Element) IsSquareVartime() uint64 {
	ls := legendreVartime(fe)
	if ls.IsZero() == 1 || ls.Equal(&feOne) == 1 {
		return 1
	}
	return 0
}

// SqrtVartime sets `fe = Sqrt(a)`, and returns 1 iff the square root
// exists.  If no square root exists, `fe = 0`, and 0 is returned.  The
// square root of zero is zero.
//
// This routine is variable-time: both the Legendre symbol and the
// Tonelli-Shanks refinement loop branch on values derived from `a`, so
// it MUST NOT be used on secret data.
func (fe *Element) SqrtVartime(a *Element) (*Element, uint64) {
	ls := legendreVartime(a)
	switch {
	case ls.IsZero() == 1:
		// a = 0, which is its own square root.
		return fe.Set(a), 1
	case ls.Equal(&feOne) != 1:
		// a is a non-residue.
		return fe.Zero(), 0
	}

	// Tonelli-Shanks for q mod 16 = 1, per
	// https://eprint.iacr.org/2012/685.pdf (page 12, algorithm 5).

	c := NewElementFrom(&feRootOfUnity)
	r := NewElement().PowVartime(a, &expTPlus1Over2)
	w := NewElement().PowVartime(a, &expT)
	m := uint(twoAdicity)

	// Each iteration strictly decreases m, so this terminates in at
	// most twoAdicity rounds.
	for w.Equal(&feOne) != 1 {
		i := uint(1)
		w2i := NewElement().Square(w)
		for w2i.Equal(&feOne) != 1 {
			w2i.Square(w2i)
			i++
		}

		for j := uint(0); j < m-i-1; j++ {
			c.Square(c)
		}

		r.Multiply(r, c)
		c.Square(c)
		w.Multiply(w, c)
		m = i
	}

	// Set fe only after the loop, to support the input and output
	// aliasing.
	return fe.Set(r), 1
}
