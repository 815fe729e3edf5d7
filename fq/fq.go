// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package fq implements arithmetic modulo the prime
// q = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001,
// the scalar field of BLS12-381 and the base field of Jubjub.
package fq

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gitlab.com/yawning/bls12381-voi/internal/disalloweq"
	"gitlab.com/yawning/bls12381-voi/internal/helpers"
)

const (
	// ElementSize is the size of a field element in bytes.
	ElementSize = 32

	// WideElementSize is the size of a wide field element in bytes.
	WideElementSize = 64

	// twoAdicity is the largest `s` such that `2^s` divides `q - 1`.
	twoAdicity = 32

	// montInv = -(q^-1 mod 2^64) mod 2^64
	montInv uint64 = 0xfffffffeffffffff
)

var (
	// mSat is the modulus in the fully-saturated representation.
	mSat = [4]uint64{
		0xffffffff00000001,
		0x53bda402fffe5bfe,
		0x3339d80809a1d805,
		0x73eda753299d7d48,
	}

	// feOne is 1 in the Montgomery domain (R = 2^256 mod q).
	feOne = Element{
		m: [4]uint64{
			0x00000001fffffffe,
			0x5884b7fa00034802,
			0x998c4fefecbc4ff5,
			0x1824b159acc5056f,
		},
	}

	// feR2 is R^2 = 2^512 mod q, used to convert into the Montgomery
	// domain.
	feR2 = Element{
		m: [4]uint64{
			0xc999e990f3f29c6d,
			0x2b6cedcb87925c23,
			0x05d314967254398f,
			0x0748d9d99f59ff11,
		},
	}

	// feR3 is R^3 = 2^768 mod q, used by the wide reduction.
	feR3 = Element{
		m: [4]uint64{
			0xc62c1807439b73af,
			0x1b3e0d188cf06990,
			0x73d13c71c7b5f418,
			0x6e2a5bb9c8db33e9,
		},
	}

	// feRootOfUnity is a primitive 2^32-th root of unity (GENERATOR^t,
	// where q - 1 = t * 2^32 with t odd), in the Montgomery domain.
	feRootOfUnity = Element{
		m: [4]uint64{
			0xb9b58d8c5f0e466a,
			0x5b1b4c801819d7ec,
			0x0af53ae352a31e64,
			0x5bf3adda19e9b27b,
		},
	}
)

// Element is a field element.  All arguments and receivers are allowed
// to alias.  The zero value is a valid zero element.
type Element struct {
	_ disalloweq.DisallowEqual
	m [4]uint64
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *Element) Zero() *Element {
	for i := range fe.m {
		fe.m[i] = 0
	}
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *Element) One() *Element {
	return fe.Set(&feOne)
}

// Set sets `fe = a` and returns `fe`.
func (fe *Element) Set(a *Element) *Element {
	copy(fe.m[:], a.m[:])
	return fe
}

// SetUint64 sets `fe = n` and returns `fe`.
func (fe *Element) SetUint64(n uint64) *Element {
	fe.m = [4]uint64{n, 0, 0, 0}

	// Convert to the Montgomery domain by computing (n * R^2) / R = n * R.
	return fe.Multiply(fe, &feR2)
}

// SetCanonicalBytes sets `fe = src`, where `src` is a 32-byte little-endian
// encoding of `fe`, and returns `fe`.  If `src` is not a canonical encoding
// of `fe` (not strictly less than q), SetCanonicalBytes returns nil and an
// error, and the receiver is unchanged.
//
// This routine is variable-time with respect to `src`.
func (fe *Element) SetCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	l := helpers.BytesToSaturated(src)

	if !saturatedInRange(&l) {
		return nil, errors.New("fq: value out of range")
	}

	return fe.uncheckedSetSaturated(&l), nil
}

// MustSetCanonicalBytes sets `fe = src`, where `src` MUST be a 32-byte
// canonical little-endian encoding of `fe`, and returns `fe`.
func (fe *Element) MustSetCanonicalBytes(src *[ElementSize]byte) *Element {
	if _, err := fe.SetCanonicalBytes(src); err != nil {
		panic(err)
	}
	return fe
}

// Bytes returns the canonical little-endian encoding of `fe`.
func (fe *Element) Bytes() []byte {
	// Blah blah blah outline blah escape analysis blah.
	var dst [ElementSize]byte
	return fe.getBytes(&dst)
}

func (fe *Element) getBytes(dst *[ElementSize]byte) []byte {
	// Convert out of the Montgomery domain by computing (fe * R) / R = fe.
	nm := montgomeryReduce(fe.m[0], fe.m[1], fe.m[2], fe.m[3], 0, 0, 0, 0)

	helpers.PutSaturatedBytes(dst, &nm)

	return dst[:]
}

// ConditionalSelect sets `fe = a` iff `ctrl == 0`, `fe = b` otherwise,
// and returns `fe`.
func (fe *Element) ConditionalSelect(a, b *Element, ctrl uint64) *Element {
	fe.m[0] = helpers.Uint64Select(ctrl, a.m[0], b.m[0])
	fe.m[1] = helpers.Uint64Select(ctrl, a.m[1], b.m[1])
	fe.m[2] = helpers.Uint64Select(ctrl, a.m[2], b.m[2])
	fe.m[3] = helpers.Uint64Select(ctrl, a.m[3], b.m[3])
	return fe
}

// Equal returns 1 iff `fe == a`, 0 otherwise.
func (fe *Element) Equal(a *Element) uint64 {
	// Elements are always kept reduced in the Montgomery domain, so
	// limb-wise equality is equality of the underlying field elements.
	return helpers.LimbsAreEqual(&fe.m, &a.m)
}

// IsZero returns 1 iff `fe == 0`, 0 otherwise.
func (fe *Element) IsZero() uint64 {
	return helpers.Uint64IsZero(fe.m[0] | fe.m[1] | fe.m[2] | fe.m[3])
}

// IsOdd returns 1 iff `fe % 2 == 1`, 0 otherwise.
func (fe *Element) IsOdd() uint64 {
	nm := montgomeryReduce(fe.m[0], fe.m[1], fe.m[2], fe.m[3], 0, 0, 0, 0)

	return helpers.Uint64IsNonzero(nm[0] & 1)
}

// String returns the big-endian hex representation of `fe`, prefixed
// with "0x".
func (fe *Element) String() string {
	b := fe.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return "0x" + hex.EncodeToString(b)
}

// MustRandomize randomizes and returns `fe`, or panics.
func (fe *Element) MustRandomize() *Element {
	var b [ElementSize]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			panic("fq: entropy source failure")
		}
		if _, err := fe.SetCanonicalBytes(&b); err == nil {
			return fe
		}
	}
}

func (fe *Element) uncheckedSetSaturated(a *[4]uint64) *Element {
	fe.m = *a

	// Convert to the Montgomery domain by computing (a * R^2) / R = a * R.
	return fe.Multiply(fe, &feR2)
}

// NewElement returns a new zero Element.
func NewElement() *Element {
	return &Element{}
}

// NewElementFrom creates a new Element from another.
func NewElementFrom(other *Element) *Element {
	return NewElement().Set(other)
}

// NewElementFromUint64 creates a new Element from a uint64.
func NewElementFromUint64(n uint64) *Element {
	return NewElement().SetUint64(n)
}

// NewElementFromSaturated creates a new Element from the raw saturated
// representation.
func NewElementFromSaturated(l3, l2, l1, l0 uint64) *Element {
	l := [4]uint64{l0, l1, l2, l3}

	// Yes, this panics if you fuck up.  Why are you using this for
	// anything but pre-computed constants?
	if !saturatedInRange(&l) {
		panic("fq: saturated limbs out of range")
	}

	return NewElement().uncheckedSetSaturated(&l)
}

// NewElementFromCanonicalBytes creates a new Element from the canonical
// little-endian byte representation.
func NewElementFromCanonicalBytes(src *[ElementSize]byte) (*Element, error) {
	e, err := NewElement().SetCanonicalBytes(src)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// NewElementFromCanonicalHex creates a new Element from the canonical
// big-endian hex representation, or panics.  The "0x" prefix is optional,
// and the value may be short (zero-padded on the left).
func NewElementFromCanonicalHex(s string) *Element {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) > 2*ElementSize {
		panic("fq: hex value exceeds element size")
	}

	var pad [2 * ElementSize]byte
	for i := range pad {
		pad[i] = '0'
	}
	copy(pad[2*ElementSize-len(s):], s)

	b := helpers.MustBytesFromHex(string(pad[:]))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return NewElement().MustSetCanonicalBytes((*[ElementSize]byte)(b))
}

// saturatedInRange returns true iff `a < q`, in variable-time.
func saturatedInRange(a *[4]uint64) bool {
	for i := 3; i >= 0; i-- {
		if a[i] < mSat[i] {
			return true
		}
		if a[i] > mSat[i] {
			return false
		}
	}

	// Value is equal to the modulus.
	return false
}
