package transreal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestRootExact(t *testing.T) {
	t.Run("cube root of 64 is exactly 4", func(t *testing.T) {
		r, err := FromInt(64).Root(3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), r.Numerator().Int64())
		assert.Equal(t, int64(1), r.Denominator().Int64())
	})

	t.Run("rational with exact roots on both sides", func(t *testing.T) {
		r, err := ratio(t, 9, 16).Root(2)
		require.NoError(t, err)
		assert.True(t, r.Equal(ratio(t, 3, 4)))
	})

	t.Run("odd root of negative value", func(t *testing.T) {
		r, err := FromInt(-27).Root(3)
		require.NoError(t, err)
		assert.True(t, r.Equal(FromInt(-3)))
	})

	t.Run("first root is identity", func(t *testing.T) {
		r, err := ratio(t, 22, 7).Root(1)
		require.NoError(t, err)
		assert.True(t, r.Equal(ratio(t, 22, 7)))
	})
}

func TestRootApproximate(t *testing.T) {
	t.Run("sqrt 2 squares back within tolerance", func(t *testing.T) {
		r, err := FromInt(2).Root(2)
		require.NoError(t, err)
		require.True(t, r.IsFinite())
		squared := r.Mul(r)
		diff := squared.Sub(FromInt(2)).Abs()
		tolerance := ratio(t, 1, 1_000_000_000)
		assert.True(t, diff.Less(tolerance), "difference %s", diff)
	})

	t.Run("approximation matches the float", func(t *testing.T) {
		r, err := FromInt(5).Root(2)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(r.Float64(), 2.2360679774997896, 1e-12))
	})

	t.Run("operand beyond float64 range stays finite", func(t *testing.T) {
		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
		r, err := FromBigInt(huge).Root(3)
		require.NoError(t, err)
		require.True(t, r.IsFinite())
		require.Positive(t, r.Sign())
		cubedOverOperand := r.Pow(FromInt(3)).Div(FromBigInt(huge))
		assert.True(t, scalar.EqualWithinAbs(cubedOverOperand.Float64(), 1, 1e-9))
	})

	t.Run("operand below float64 range stays positive", func(t *testing.T) {
		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
		tiny, err := FromBigRatio(big.NewInt(1), huge)
		require.NoError(t, err)
		r, err := tiny.Root(3)
		require.NoError(t, err)
		require.True(t, r.IsFinite())
		require.Positive(t, r.Sign())
		cubedOverOperand := r.Pow(FromInt(3)).Div(tiny)
		assert.True(t, scalar.EqualWithinAbs(cubedOverOperand.Float64(), 1, 1e-9))
	})

	t.Run("negative operand beyond float64 range", func(t *testing.T) {
		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil)
		r, err := FromBigInt(new(big.Int).Neg(huge)).Root(3)
		require.NoError(t, err)
		require.True(t, r.IsFinite())
		assert.Negative(t, r.Sign())
	})
}

func TestRootSpecials(t *testing.T) {
	cases := []struct {
		name   string
		value  Number
		degree int
		want   Number
	}{
		{"nullity", Nullity(), 2, Nullity()},
		{"positive infinity even", Infinity(), 2, Infinity()},
		{"positive infinity odd", Infinity(), 3, Infinity()},
		{"negative infinity odd", NegativeInfinity(), 3, NegativeInfinity()},
		{"negative infinity even", NegativeInfinity(), 2, Nullity()},
		{"negative base even degree", FromInt(-4), 2, Nullity()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.value.Root(tc.degree)
			require.NoError(t, err)
			assert.True(t, r.Identical(tc.want), "got %s want %s", r, tc.want)
		})
	}
}

func TestRootDegreeContract(t *testing.T) {
	for _, degree := range []int{0, -1} {
		_, err := FromInt(4).Root(degree)
		assert.ErrorIs(t, err, ErrInvalidValue)
	}
}

func TestIntegerRoot(t *testing.T) {
	t.Run("large exact root", func(t *testing.T) {
		base := big.NewInt(1234567891)
		x := new(big.Int).Exp(base, big.NewInt(5), nil)
		root, exact := integerRoot(x, 5)
		assert.True(t, exact)
		assert.Zero(t, root.Cmp(base))
	})

	t.Run("inexact reports floor", func(t *testing.T) {
		root, exact := integerRoot(big.NewInt(26), 2)
		assert.False(t, exact)
		assert.Equal(t, int64(5), root.Int64())
	})
}

func TestSqrt(t *testing.T) {
	assert.True(t, FromInt(16).Sqrt().Equal(FromInt(4)))
	assert.True(t, FromInt(-1).Sqrt().IsNullity())
}

func TestPow(t *testing.T) {
	t.Run("integer powers are exact", func(t *testing.T) {
		assert.True(t, FromInt(2).Pow(FromInt(10)).Equal(FromInt(1024)))
		assert.True(t, ratio(t, 2, 3).Pow(FromInt(2)).Equal(ratio(t, 4, 9)))
	})

	t.Run("negative power inverts", func(t *testing.T) {
		assert.True(t, FromInt(2).Pow(FromInt(-2)).Equal(ratio(t, 1, 4)))
		assert.True(t, Zero().Pow(FromInt(-1)).Identical(Infinity()))
	})

	t.Run("zero power", func(t *testing.T) {
		assert.True(t, FromInt(7).Pow(Zero()).Equal(One()))
		assert.True(t, Zero().Pow(Zero()).IsNullity())
	})

	t.Run("fractional power routes through root", func(t *testing.T) {
		r := FromInt(64).Pow(ratio(t, 1, 3))
		assert.True(t, r.Equal(FromInt(4)))
		assert.True(t, FromInt(8).Pow(ratio(t, 2, 3)).Equal(FromInt(4)))
	})

	t.Run("infinite power trichotomy", func(t *testing.T) {
		assert.True(t, ratio(t, 1, 2).Pow(Infinity()).Equal(Zero()))
		assert.True(t, FromInt(1).Pow(Infinity()).IsNullity())
		assert.True(t, FromInt(-1).Pow(Infinity()).IsNullity())
		assert.True(t, FromInt(2).Pow(Infinity()).Identical(Infinity()))
	})

	t.Run("infinite base parity", func(t *testing.T) {
		assert.True(t, NegativeInfinity().Pow(FromInt(2)).Identical(Infinity()))
		assert.True(t, NegativeInfinity().Pow(FromInt(3)).Identical(NegativeInfinity()))
	})

	t.Run("nullity absorbs", func(t *testing.T) {
		assert.True(t, Nullity().Pow(FromInt(2)).IsNullity())
		assert.True(t, FromInt(2).Pow(Nullity()).IsNullity())
	})
}
