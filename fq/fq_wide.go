// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

import "gitlab.com/yawning/bls12381-voi/internal/helpers"

// SetWideBytes sets `fe = src % q`, where `src` is a 64-byte little-endian
// encoding of `fe`, and returns `fe`.  This routine exists so that field
// elements can be derived from (eg) hash output with negligible bias.
func (fe *Element) SetWideBytes(src *[WideElementSize]byte) *Element {
	// Split src into d0 + d1 * 2^256, with both halves in the raw
	// (non-Montgomery) saturated representation.  Then
	//
	//   d0 * R^2 / R + d1 * R^3 / R = (d0 + d1 * 2^256) * R mod q
	//
	// with each product folded through the usual Montgomery reduction,
	// which tolerates the unreduced halves.
	var lo, hi Element
	lo.m = helpers.BytesToSaturated((*[ElementSize]byte)(src[:ElementSize]))
	hi.m = helpers.BytesToSaturated((*[ElementSize]byte)(src[ElementSize:]))

	lo.Multiply(&lo, &feR2)
	hi.Multiply(&hi, &feR3)

	return fe.Add(&lo, &hi)
}
