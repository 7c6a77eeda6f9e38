package transreal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// axiomValues spans every operand kind: nullity, both infinities, negative
// and positive rationals, zero, and an approximate (inexact) root.
func axiomValues(t *testing.T) []Number {
	t.Helper()
	sqrt2, _ := FromInt(2).Root(2)
	return []Number{
		Nullity(),
		NegativeInfinity(),
		ratio(t, -3, 2),
		sqrt2.Neg(),
		FromInt(-1),
		ratio(t, -1, 3),
		Zero(),
		ratio(t, 1, 3),
		FromInt(1),
		sqrt2,
		ratio(t, 3, 2),
		Infinity(),
	}
}

func TestAdditiveAssociativity(t *testing.T) {
	values := axiomValues(t)
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				left := a.Add(b.Add(c))
				right := a.Add(b).Add(c)
				assert.True(t, left.Identical(right), "(%s + (%s + %s))", a, b, c)
			}
		}
	}
}

func TestAdditiveCommutativity(t *testing.T) {
	values := axiomValues(t)
	for _, a := range values {
		for _, b := range values {
			assert.True(t, a.Add(b).Identical(b.Add(a)), "%s + %s", a, b)
		}
	}
}

func TestAdditiveIdentity(t *testing.T) {
	for _, a := range axiomValues(t) {
		assert.True(t, Zero().Add(a).Identical(a), a.String())
	}
}

func TestAdditiveNullity(t *testing.T) {
	for _, a := range axiomValues(t) {
		assert.True(t, Nullity().Add(a).IsNullity(), a.String())
	}
}

func TestAdditiveInfinity(t *testing.T) {
	for _, a := range axiomValues(t) {
		if a.Identical(NegativeInfinity()) || a.IsNullity() {
			continue
		}
		assert.True(t, a.Add(Infinity()).Identical(Infinity()), a.String())
	}
}

func TestSubtractionAsSumWithOpposite(t *testing.T) {
	values := axiomValues(t)
	for _, a := range values {
		for _, b := range values {
			assert.True(t, a.Sub(b).Identical(a.Add(b.Neg())), "%s - %s", a, b)
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, a := range axiomValues(t) {
		assert.True(t, a.Neg().Neg().Identical(a), a.String())
	}
}

func TestAdditiveInverse(t *testing.T) {
	for _, a := range axiomValues(t) {
		if a.IsInfinite() || a.IsNullity() {
			continue
		}
		assert.True(t, a.Sub(a).Identical(Zero()), a.String())
	}
}

func TestMultiplicativeAssociativity(t *testing.T) {
	values := axiomValues(t)
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				left := a.Mul(b.Mul(c))
				right := a.Mul(b).Mul(c)
				assert.True(t, left.Identical(right), "(%s * (%s * %s))", a, b, c)
			}
		}
	}
}

func TestMultiplicativeCommutativity(t *testing.T) {
	values := axiomValues(t)
	for _, a := range values {
		for _, b := range values {
			assert.True(t, a.Mul(b).Identical(b.Mul(a)), "%s * %s", a, b)
		}
	}
}

func TestMultiplicativeIdentity(t *testing.T) {
	for _, a := range axiomValues(t) {
		assert.True(t, One().Mul(a).Identical(a), a.String())
	}
}

func TestMultiplicativeNullity(t *testing.T) {
	for _, a := range axiomValues(t) {
		assert.True(t, Nullity().Mul(a).IsNullity(), a.String())
	}
}

func TestDivisionAsProductWithReciprocal(t *testing.T) {
	values := axiomValues(t)
	for _, a := range values {
		for _, b := range values {
			assert.True(t, a.Div(b).Identical(a.Mul(b.reciprocal())), "%s / %s", a, b)
		}
	}
}

func TestMultiplicativeInverse(t *testing.T) {
	for _, a := range axiomValues(t) {
		if a.IsInfinite() || a.IsNullity() || a.Equal(Zero()) {
			continue
		}
		assert.True(t, a.Div(a).Identical(One()), a.String())
	}
}
