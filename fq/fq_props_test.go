// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package fq

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// genElement generates random canonical field elements.  The top two bits
// are cleared so the rejection step never loops (q > 2^254).
func genElement() gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		var b [ElementSize]byte
		for i := range b {
			b[i] = byte(params.NextUint64())
		}
		b[ElementSize-1] &= 0x3f

		fe := NewElement().MustSetCanonicalBytes(&b)
		return gopter.NewGenResult(fe, gopter.NoShrinker)
	}
}

func genExponent() gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		e := &[4]uint64{
			params.NextUint64(),
			params.NextUint64(),
			params.NextUint64(),
			params.NextUint64(),
		}
		return gopter.NewGenResult(e, gopter.NoShrinker)
	}
}

func TestFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("(a + b) - b == a", prop.ForAll(
		func(a, b *Element) bool {
			fe := NewElement().Add(a, b)
			fe.Subtract(fe, b)
			return fe.Equal(a) == 1
		},
		genElement(), genElement(),
	))

	properties.Property("-(-a) == a", prop.ForAll(
		func(a *Element) bool {
			fe := NewElement().Negate(a)
			fe.Negate(fe)
			return fe.Equal(a) == 1
		},
		genElement(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a *Element) bool {
			fe := NewElement().Negate(a)
			fe.Add(fe, a)
			return fe.IsZero() == 1
		},
		genElement(),
	))

	properties.Property("a + b == b + a", prop.ForAll(
		func(a, b *Element) bool {
			ab := NewElement().Add(a, b)
			ba := NewElement().Add(b, a)
			return ab.Equal(ba) == 1
		},
		genElement(), genElement(),
	))

	properties.Property("a * b == b * a", prop.ForAll(
		func(a, b *Element) bool {
			ab := NewElement().Multiply(a, b)
			ba := NewElement().Multiply(b, a)
			return ab.Equal(ba) == 1
		},
		genElement(), genElement(),
	))

	properties.Property("(a * b) * c == a * (b * c)", prop.ForAll(
		func(a, b, c *Element) bool {
			lhs := NewElement().Multiply(a, b)
			lhs.Multiply(lhs, c)
			rhs := NewElement().Multiply(b, c)
			rhs.Multiply(a, rhs)
			return lhs.Equal(rhs) == 1
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a * (b + c) == a*b + a*c", prop.ForAll(
		func(a, b, c *Element) bool {
			lhs := NewElement().Add(b, c)
			lhs.Multiply(a, lhs)
			ab := NewElement().Multiply(a, b)
			ac := NewElement().Multiply(a, c)
			rhs := NewElement().Add(ab, ac)
			return lhs.Equal(rhs) == 1
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a * 1 == a", prop.ForAll(
		func(a *Element) bool {
			fe := NewElement().Multiply(a, NewElement().One())
			return fe.Equal(a) == 1
		},
		genElement(),
	))

	properties.Property("a * 0 == 0", prop.ForAll(
		func(a *Element) bool {
			fe := NewElement().Multiply(a, NewElement().Zero())
			return fe.IsZero() == 1
		},
		genElement(),
	))

	properties.Property("square(a) == a * a", prop.ForAll(
		func(a *Element) bool {
			sq := NewElement().Square(a)
			mul := NewElement().Multiply(a, a)
			return sq.Equal(mul) == 1
		},
		genElement(),
	))

	properties.Property("double(a) == a + a", prop.ForAll(
		func(a *Element) bool {
			dbl := NewElement().Double(a)
			sum := NewElement().Add(a, a)
			return dbl.Equal(sum) == 1
		},
		genElement(),
	))

	properties.Property("a != 0 -> a * a^-1 == 1", prop.ForAll(
		func(a *Element) bool {
			if a.IsZero() == 1 {
				return true
			}
			fe := NewElement().Invert(a)
			fe.Multiply(fe, a)
			return fe.Equal(NewElement().One()) == 1
		},
		genElement(),
	))

	properties.Property("decode(encode(a)) == a", prop.ForAll(
		func(a *Element) bool {
			fe, err := NewElement().SetCanonicalBytes((*[ElementSize]byte)(a.Bytes()))
			return err == nil && fe.Equal(a) == 1
		},
		genElement(),
	))

	properties.Property("pow(a, e) == pow_vartime(a, e)", prop.ForAll(
		func(a *Element, e *[4]uint64) bool {
			ct := NewElement().Pow(a, e)
			vt := NewElement().PowVartime(a, e)
			return ct.Equal(vt) == 1
		},
		genElement(), genExponent(),
	))

	properties.Property("sqrt(a^2)^2 == a^2", prop.ForAll(
		func(a *Element) bool {
			aSq := NewElement().Square(a)
			root, ok := NewElement().SqrtVartime(aSq)
			if ok != 1 {
				return false
			}
			root.Square(root)
			return root.Equal(aSq) == 1
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
