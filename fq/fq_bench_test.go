// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

import "testing"

func BenchmarkElement(b *testing.B) {
	b.Run("Add", func(b *testing.B) {
		fe, a := NewElement().MustRandomize(), NewElement().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fe.Add(fe, a)
		}
	})
	b.Run("Multiply", func(b *testing.B) {
		fe, a := NewElement().MustRandomize(), NewElement().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fe.Multiply(fe, a)
		}
	})
	b.Run("Square", func(b *testing.B) {
		fe := NewElement().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fe.Square(fe)
		}
	})
	b.Run("Pow", func(b *testing.B) {
		fe := NewElement().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fe.Pow(fe, &expQMinus2)
		}
	})
	b.Run("Invert/addchain", func(b *testing.B) {
		fe := NewElement().MustRandomize()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			fe.Invert(fe)
		}
	})
	b.Run("SqrtVartime", func(b *testing.B) {
		fe := NewElement()
		a := NewElement().MustRandomize()
		a.Square(a)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = fe.SqrtVartime(a)
		}
	})
}
