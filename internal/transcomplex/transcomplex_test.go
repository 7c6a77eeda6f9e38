package transcomplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/BenjaminEHowe/transmaths/internal/transreal"
)

func ratio(t *testing.T, num, den int64) transreal.Number {
	t.Helper()
	n, err := transreal.FromRatio(num, den)
	require.NoError(t, err)
	return n
}

func TestFromPolarCanonicalization(t *testing.T) {
	t.Run("nullity magnitude forces angle to zero", func(t *testing.T) {
		for _, angle := range []transreal.Number{
			transreal.Zero(),
			ratio(t, 3, 4),
			transreal.Infinity(),
			transreal.Nullity(),
		} {
			n := FromPolar(transreal.Nullity(), angle)
			assert.True(t, n.Magnitude().IsNullity(), angle.String())
			assert.True(t, n.Angle().Equal(transreal.Zero()), angle.String())
		}
	})

	t.Run("nullity angle yields the point at nullity", func(t *testing.T) {
		n := FromPolar(transreal.FromInt(2), transreal.Nullity())
		assert.True(t, n.Magnitude().IsNullity())
		assert.True(t, n.Angle().Equal(transreal.Zero()))
	})

	t.Run("infinite angle yields the point at nullity", func(t *testing.T) {
		for _, angle := range []transreal.Number{transreal.Infinity(), transreal.NegativeInfinity()} {
			n := FromPolar(transreal.FromInt(2), angle)
			assert.True(t, n.Magnitude().IsNullity(), angle.String())
			assert.True(t, n.Angle().Equal(transreal.Zero()), angle.String())
		}
	})

	t.Run("negative magnitude rotates by pi", func(t *testing.T) {
		n := FromPolar(transreal.FromInt(-2), transreal.Zero())
		assert.True(t, n.Magnitude().Equal(transreal.FromInt(2)))
		assert.True(t, n.Angle().Equal(transreal.Pi()))
	})

	t.Run("zero magnitude is the origin", func(t *testing.T) {
		n := FromPolar(transreal.Zero(), ratio(t, 5, 7))
		assert.True(t, n.Magnitude().Equal(transreal.Zero()))
		assert.True(t, n.Angle().Equal(transreal.Zero()))
	})

	t.Run("ordinary polar input passes through", func(t *testing.T) {
		n := FromPolar(ratio(t, 3, 2), ratio(t, 1, 4))
		assert.True(t, n.Magnitude().Equal(ratio(t, 3, 2)))
		assert.True(t, n.Angle().Equal(ratio(t, 1, 4)))
	})

	t.Run("infinite magnitude is allowed", func(t *testing.T) {
		n := FromPolar(transreal.Infinity(), transreal.Zero())
		assert.True(t, n.Magnitude().Identical(transreal.Infinity()))
	})
}

func TestFromCartesian(t *testing.T) {
	t.Run("pythagorean triple is exact", func(t *testing.T) {
		n := FromCartesian(transreal.FromInt(3), transreal.FromInt(4))
		assert.True(t, n.Magnitude().Equal(transreal.FromInt(5)))
		assert.True(t, scalar.EqualWithinAbs(n.Angle().Float64(), math.Atan2(4, 3), 1e-12))
	})

	t.Run("negative quadrant angle", func(t *testing.T) {
		n := FromCartesian(transreal.FromInt(-1), transreal.FromInt(-1))
		require.True(t, n.Magnitude().IsFinite())
		assert.True(t, scalar.EqualWithinAbs(n.Magnitude().Float64(), math.Sqrt2, 1e-12))
		assert.True(t, scalar.EqualWithinAbs(n.Angle().Float64(), -3*math.Pi/4, 1e-12))
	})

	t.Run("nullity component collapses to the point at nullity", func(t *testing.T) {
		n := FromCartesian(transreal.Nullity(), transreal.FromInt(1))
		assert.True(t, n.Magnitude().IsNullity())
		assert.True(t, n.Angle().Equal(transreal.Zero()))
	})

	t.Run("infinite component has infinite magnitude", func(t *testing.T) {
		n := FromCartesian(transreal.Infinity(), transreal.FromInt(1))
		assert.True(t, n.Magnitude().Identical(transreal.Infinity()))
		assert.True(t, scalar.EqualWithinAbs(n.Angle().Float64(), 0, 1e-12))
	})

	t.Run("origin", func(t *testing.T) {
		n := FromCartesian(transreal.Zero(), transreal.Zero())
		assert.True(t, n.Magnitude().Equal(transreal.Zero()))
		assert.True(t, n.Angle().Equal(transreal.Zero()))
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "(nullity,0)", PointAtNullity().String())
	assert.Equal(t, "(3/2,1/4)", FromPolar(ratio(t, 3, 2), ratio(t, 1, 4)).String())
}
