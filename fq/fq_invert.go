// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

// Invert sets `fe = 1/a` and returns `fe`.  Since the inverse is computed
// as `a ^ (q - 2)`, `Invert(0) = 0` rather than an error; callers that
// need "inversion is undefined at zero" semantics check IsZero themselves.
//
// The exponentiation uses a fixed addition chain (found with
// https://github.com/kwantam/addchain), so the operation sequence is
// independent of the value of `a`.
func (fe *Element) Invert(a *Element) *Element {
	t10 := NewElementFrom(a)
	t0 := NewElement().Square(t10)
	t1 := NewElement().Multiply(t0, t10)
	t16 := NewElement().Square(t0)
	t6 := NewElement().Square(t16)
	t5 := NewElement().Multiply(t6, t0)
	t0.Multiply(t6, t16)
	t12 := NewElement().Multiply(t5, t16)
	t2 := NewElement().Square(t6)
	t7 := NewElement().Multiply(t5, t6)
	t15 := NewElement().Multiply(t0, t5)
	t17 := NewElement().Square(t12)
	t1.Multiply(t1, t17)
	t3 := NewElement().Multiply(t7, t2)
	t8 := NewElement().Multiply(t1, t17)
	t4 := NewElement().Multiply(t8, t2)
	t9 := NewElement().Multiply(t8, t7)
	t7.Multiply(t4, t5)
	t11 := NewElement().Multiply(t4, t17)
	t5.Multiply(t9, t17)
	t14 := NewElement().Multiply(t7, t15)
	t13 := NewElement().Multiply(t11, t12)
	t12.Multiply(t11, t17)
	t15.Multiply(t15, t12)
	t16.Multiply(t16, t15)
	t3.Multiply(t3, t16)
	t17.Multiply(t17, t3)
	t0.Multiply(t0, t17)
	t6.Multiply(t6, t0)
	t2.Multiply(t2, t6)

	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t17)
	t0.Pow2k(t0, 9)
	t0.Multiply(t0, t16)
	t0.Pow2k(t0, 9)
	t0.Multiply(t0, t15)
	t0.Pow2k(t0, 9)
	t0.Multiply(t0, t15)
	t0.Pow2k(t0, 7)
	t0.Multiply(t0, t14)
	t0.Pow2k(t0, 7)
	t0.Multiply(t0, t13)
	t0.Pow2k(t0, 10)
	t0.Multiply(t0, t12)
	t0.Pow2k(t0, 9)
	t0.Multiply(t0, t11)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t8)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t10)
	t0.Pow2k(t0, 14)
	t0.Multiply(t0, t9)
	t0.Pow2k(t0, 10)
	t0.Multiply(t0, t8)
	t0.Pow2k(t0, 15)
	t0.Multiply(t0, t7)
	t0.Pow2k(t0, 10)
	t0.Multiply(t0, t6)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t5)
	t0.Pow2k(t0, 16)
	t0.Multiply(t0, t3)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 7)
	t0.Multiply(t0, t4)
	t0.Pow2k(t0, 9)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t3)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t3)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 8)
	t0.Multiply(t0, t2)
	t0.Pow2k(t0, 5)
	t0.Multiply(t0, t1)
	t0.Pow2k(t0, 5)
	t0.Multiply(t0, t1)

	return fe.Set(t0)
}
