// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package helpers

import (
	"math"
	"testing"
)

func TestUint64IsZero(t *testing.T) {
	for _, v := range []uint64{
		0,
		1,
		math.MaxUint64,
	} {
		var expected uint64
		if v == 0 {
			expected = 1
		}
		if res := Uint64IsZero(v); res != expected {
			t.Errorf("Uint64IsZero(%d) = %d; want %d", v, res, expected)
		}
	}
}

func TestUint64IsNonzero(t *testing.T) {
	for _, v := range []uint64{
		0,
		1,
		math.MaxUint64,
	} {
		var expected uint64
		if v != 0 {
			expected = 1
		}
		if res := Uint64IsNonzero(v); res != expected {
			t.Errorf("Uint64IsNonzero(%d) = %d; want %d", v, res, expected)
		}
	}
}

func TestUint64Equal(t *testing.T) {
	for _, tc := range []struct {
		a, b, expected uint64
	}{
		{0, 0, 1},
		{0, 1, 0},
		{math.MaxUint64, math.MaxUint64, 1},
		{math.MaxUint64, math.MaxUint64 - 1, 0},
		{69, 69, 1},
	} {
		if res := Uint64Equal(tc.a, tc.b); res != tc.expected {
			t.Errorf("Uint64Equal(%d, %d) = %d; want %d", tc.a, tc.b, res, tc.expected)
		}
	}
}

func TestUint64Select(t *testing.T) {
	const (
		a uint64 = 0xdeadbeefcafebabe
		b uint64 = 0x123456789abcdef0
	)
	for _, tc := range []struct {
		ctrl, expected uint64
	}{
		{0, a},
		{1, b},
		{math.MaxUint64, b},
	} {
		if res := Uint64Select(tc.ctrl, a, b); res != tc.expected {
			t.Errorf("Uint64Select(%d, a, b) = %x; want %x", tc.ctrl, res, tc.expected)
		}
	}
}

func TestLimbsAreEqual(t *testing.T) {
	a := [4]uint64{1, 2, 3, 4}
	b := a
	if res := LimbsAreEqual(&a, &b); res != 1 {
		t.Errorf("LimbsAreEqual(a, a) = %d; want 1", res)
	}

	// Every limb position must be examined.
	for i := range b {
		b = a
		b[i]++
		if res := LimbsAreEqual(&a, &b); res != 0 {
			t.Errorf("LimbsAreEqual(a, b), limb %d differs = %d; want 0", i, res)
		}
	}
}

func TestSaturatedBytes(t *testing.T) {
	var src [32]byte
	for i := range src {
		src[i] = byte(i)
	}

	l := BytesToSaturated(&src)
	if l[0] != 0x0706050403020100 || l[3] != 0x1f1e1d1c1b1a1918 {
		t.Errorf("BytesToSaturated: unexpected limbs %x", l)
	}

	var dst [32]byte
	PutSaturatedBytes(&dst, &l)
	if dst != src {
		t.Errorf("PutSaturatedBytes(BytesToSaturated(src)) != src")
	}
}

func TestMustBytesFromHex(t *testing.T) {
	b := MustBytesFromHex("deadbeef")
	if len(b) != 4 || b[0] != 0xde || b[3] != 0xef {
		t.Errorf("MustBytesFromHex: unexpected result %x", b)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBytesFromHex: expected panic on invalid input")
		}
	}()
	MustBytesFromHex("not hex")
}
