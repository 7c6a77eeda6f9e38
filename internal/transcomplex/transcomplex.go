// Package transcomplex implements the transcomplex number: a polar
// magnitude/angle pair over transreal components, sharing the transreal
// special values for its magnitude. Only construction and canonicalization
// are implemented; transcomplex arithmetic is future work upstream and is
// deliberately absent here.
package transcomplex

import (
	"math"

	"github.com/BenjaminEHowe/transmaths/internal/transreal"
)

// Number is an immutable transcomplex number in polar form. The canonical
// point at nullity is (nullity, 0): a nullity magnitude always forces the
// angle to finite zero.
type Number struct {
	magnitude transreal.Number
	angle     transreal.Number
}

// PointAtNullity returns the canonical (nullity, 0) point.
func PointAtNullity() Number {
	return Number{magnitude: transreal.Nullity(), angle: transreal.Zero()}
}

// FromPolar constructs a transcomplex number from a magnitude and an angle
// in radians. Canonicalization rules, in order:
//
//   - A nullity magnitude or angle yields the point at nullity.
//   - An infinite angle is not a direction, so it also yields the point at
//     nullity.
//   - A negative magnitude is rotated: (m, a) becomes (|m|, a + pi). The
//     rotation uses the exact-rational pi approximation, matching the
//     approximate nature of every derived angle. Upstream left this case
//     unspecified; rotation keeps construction total where rejection would
//     introduce the only error path in the package.
//   - A zero magnitude forces the angle to zero, making the origin unique.
func FromPolar(magnitude, angle transreal.Number) Number {
	if magnitude.IsNullity() || angle.IsNullity() || angle.IsInfinite() {
		return PointAtNullity()
	}
	if magnitude.Sign() < 0 {
		magnitude = magnitude.Abs()
		angle = angle.Add(transreal.Pi())
	}
	if magnitude.Equal(transreal.Zero()) {
		angle = transreal.Zero()
	}
	return Number{magnitude: magnitude, angle: angle}
}

// FromCartesian constructs a transcomplex number from finite real and
// imaginary transreal parts: the magnitude is the square root of the sum of
// squares and the angle is the atan2 float approximation carried back into
// an exact binary rational. A nullity component yields the point at
// nullity; an infinite component yields an infinite magnitude with the
// angle the float infinities determine.
func FromCartesian(real, imag transreal.Number) Number {
	if real.IsNullity() || imag.IsNullity() {
		return PointAtNullity()
	}
	angle := transreal.FromFloat(math.Atan2(imag.Float64(), real.Float64()))
	if real.IsInfinite() || imag.IsInfinite() {
		return FromPolar(transreal.Infinity(), angle)
	}
	magnitude := real.Mul(real).Add(imag.Mul(imag)).Sqrt()
	return FromPolar(magnitude, angle)
}

// Magnitude returns the magnitude component.
func (n Number) Magnitude() transreal.Number { return n.magnitude }

// Angle returns the angle component in radians.
func (n Number) Angle() transreal.Number { return n.angle }

// Polar returns the (magnitude, angle) pair.
func (n Number) Polar() (transreal.Number, transreal.Number) {
	return n.magnitude, n.angle
}

// String renders the polar pair as "(magnitude,angle)".
func (n Number) String() string {
	return "(" + n.magnitude.String() + "," + n.angle.String() + ")"
}
