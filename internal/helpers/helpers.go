// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package helpers provides useful shared internal helpers.
package helpers

import (
	"encoding/binary"
	"encoding/hex"
)

// Uint64IsZero returns 1 iff `x == 0`, 0 otherwise, in constant time.
func Uint64IsZero(x uint64) uint64 {
	return Uint64IsNonzero(x) ^ 1
}

// Uint64IsNonzero returns 1 iff `x != 0`, 0 otherwise, in constant time.
func Uint64IsNonzero(x uint64) uint64 {
	return (x | -x) >> 63
}

// Uint64Equal returns 1 iff `a == b`, 0 otherwise, in constant time.
func Uint64Equal(a, b uint64) uint64 {
	return Uint64IsZero(a ^ b)
}

// Uint64Select returns `a` iff `ctrl == 0`, `b` otherwise, in constant
// time.
func Uint64Select(ctrl, a, b uint64) uint64 {
	mask := -Uint64IsNonzero(ctrl)
	return a ^ (mask & (a ^ b))
}

// LimbsAreEqual returns 1 iff `a == b`, 0 otherwise, in constant time.
// Unlike a short-circuiting comparison, every limb is always examined.
func LimbsAreEqual(a, b *[4]uint64) uint64 {
	return Uint64Equal(a[0], b[0]) &
		Uint64Equal(a[1], b[1]) &
		Uint64Equal(a[2], b[2]) &
		Uint64Equal(a[3], b[3])
}

// BytesToSaturated converts a 32-byte little-endian encoding to the
// fully-saturated limb representation.
func BytesToSaturated(src *[32]byte) [4]uint64 {
	return [4]uint64{
		binary.LittleEndian.Uint64(src[0:8]),
		binary.LittleEndian.Uint64(src[8:16]),
		binary.LittleEndian.Uint64(src[16:24]),
		binary.LittleEndian.Uint64(src[24:32]),
	}
}

// PutSaturatedBytes writes the 32-byte little-endian encoding of the
// fully-saturated limb representation `src` to `dst`.
func PutSaturatedBytes(dst *[32]byte, src *[4]uint64) {
	binary.LittleEndian.PutUint64(dst[0:8], src[0])
	binary.LittleEndian.PutUint64(dst[8:16], src[1])
	binary.LittleEndian.PutUint64(dst[16:24], src[2])
	binary.LittleEndian.PutUint64(dst[24:32], src[3])
}

// MustBytesFromHex returns the byte representation of the hex encoded
// string, or panics.
func MustBytesFromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("internal/helpers: failed to parse hex: " + err.Error())
	}
	return b
}
