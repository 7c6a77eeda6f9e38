package transreal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// ErrInvalidValue indicates a caller contract violation, such as constructing
// a number with an explicit zero denominator or requesting a non-positive
// root degree. Mathematical degeneracy (0/0, inf-inf, ...) is never an error.
var ErrInvalidValue = errors.New("invalid transreal value")

// form discriminates the variants of a transreal number.
type form uint8

const (
	formFinite form = iota
	formPositiveInfinity
	formNegativeInfinity
	formNullity
)

// Number is a transreal number: an exact rational extended with positive
// infinity, negative infinity and nullity. Finite values are stored as a
// reduced numerator/denominator pair with the denominator strictly positive
// and the sign carried by the numerator. Numbers are immutable; every
// operation returns a fresh value, so concurrent reads are safe.
//
// The zero value of Number is not valid; use the constructors.
type Number struct {
	form form
	num  *big.Int // reduced, sign carrier; nil for non-finite forms
	den  *big.Int // > 0; nil for non-finite forms
}

var (
	intOne = big.NewInt(1)
	intTen = big.NewInt(10)
)

// Zero returns the finite value 0.
func Zero() Number { return Number{form: formFinite, num: big.NewInt(0), den: big.NewInt(1)} }

// One returns the finite value 1.
func One() Number { return Number{form: formFinite, num: big.NewInt(1), den: big.NewInt(1)} }

// Infinity returns positive infinity.
func Infinity() Number { return Number{form: formPositiveInfinity} }

// NegativeInfinity returns negative infinity.
func NegativeInfinity() Number { return Number{form: formNegativeInfinity} }

// Nullity returns the absorbing value produced by indeterminate operations.
func Nullity() Number { return Number{form: formNullity} }

// Pi returns the upstream approximation of pi,
// 3141592653589793238462643 / 10^24.
func Pi() Number {
	num, _ := new(big.Int).SetString("3141592653589793238462643", 10)
	den := new(big.Int).Exp(intTen, big.NewInt(24), nil)
	return Number{form: formFinite, num: num, den: den}
}

// FromInt constructs a finite number from an integer.
func FromInt(v int64) Number {
	return Number{form: formFinite, num: big.NewInt(v), den: big.NewInt(1)}
}

// FromBigInt constructs a finite number from an arbitrary-precision integer.
func FromBigInt(v *big.Int) Number {
	return Number{form: formFinite, num: new(big.Int).Set(v), den: big.NewInt(1)}
}

// FromRatio constructs a finite number from a numerator/denominator pair.
// The pair is reduced to lowest terms with the sign normalized onto the
// numerator. An explicit zero denominator is a contract violation: the
// non-finite values are reached only as operation results, never as raw
// constructor input.
func FromRatio(num, den int64) (Number, error) {
	return FromBigRatio(big.NewInt(num), big.NewInt(den))
}

// FromBigRatio is FromRatio over arbitrary-precision integers.
func FromBigRatio(num, den *big.Int) (Number, error) {
	if den.Sign() == 0 {
		return Number{}, fmt.Errorf("%w: zero denominator", ErrInvalidValue)
	}
	return makeRatio(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// makeRatio normalizes an owned (num, den) pair with den != 0.
func makeRatio(num, den *big.Int) Number {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(intOne) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if num.Sign() == 0 {
		den.SetInt64(1)
	}
	return Number{form: formFinite, num: num, den: den}
}

// FromFloat constructs a number from a binary floating-point value. Finite
// inputs convert exactly to the rational the IEEE-754 bit pattern denotes,
// never through decimal rounding: the nearest double to one third becomes
// exactly 6004799503160661/18014398509481984. The float infinities map to
// the transreal infinities and NaN maps to nullity.
func FromFloat(v float64) Number {
	switch {
	case math.IsInf(v, 1):
		return Infinity()
	case math.IsInf(v, -1):
		return NegativeInfinity()
	case math.IsNaN(v):
		return Nullity()
	}
	r := new(big.Rat).SetFloat64(v)
	return Number{form: formFinite, num: r.Num(), den: r.Denom()}
}

// Parse converts a string to a transreal number. It accepts the named
// special values ("infinity", "-infinity", "nullity"), integers, fractions
// of the form "n/d" and decimal strings.
func Parse(s string) (Number, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infinity", "inf":
		return Infinity(), nil
	case "-infinity", "-inf":
		return NegativeInfinity(), nil
	case "nullity":
		return Nullity(), nil
	}
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Number{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidValue, s)
	}
	return Number{form: formFinite, num: r.Num(), den: r.Denom()}, nil
}

// IsFinite reports whether the number is an exact rational.
func (n Number) IsFinite() bool { return n.form == formFinite }

// IsInfinite reports whether the number is positive or negative infinity.
func (n Number) IsInfinite() bool {
	return n.form == formPositiveInfinity || n.form == formNegativeInfinity
}

// IsNullity reports whether the number is nullity.
func (n Number) IsNullity() bool { return n.form == formNullity }

// Sign returns -1, 0 or +1 for negative, zero and positive values. The sign
// of nullity is 0.
func (n Number) Sign() int {
	switch n.form {
	case formPositiveInfinity:
		return 1
	case formNegativeInfinity:
		return -1
	case formNullity:
		return 0
	}
	return n.num.Sign()
}

// Numerator returns a copy of the numerator of a finite value. It returns
// nil for the non-finite forms.
func (n Number) Numerator() *big.Int {
	if n.form != formFinite {
		return nil
	}
	return new(big.Int).Set(n.num)
}

// Denominator returns a copy of the denominator of a finite value. It
// returns nil for the non-finite forms.
func (n Number) Denominator() *big.Int {
	if n.form != formFinite {
		return nil
	}
	return new(big.Int).Set(n.den)
}

// Rat returns the exact rational value of a finite number, or nil otherwise.
func (n Number) Rat() *big.Rat {
	if n.form != formFinite {
		return nil
	}
	return new(big.Rat).SetFrac(n.num, n.den)
}

// Float64 converts to the nearest float64. Infinities map to the float
// infinities and nullity maps to NaN.
func (n Number) Float64() float64 {
	switch n.form {
	case formPositiveInfinity:
		return math.Inf(1)
	case formNegativeInfinity:
		return math.Inf(-1)
	case formNullity:
		return math.NaN()
	}
	f, _ := n.Rat().Float64()
	return f
}

// String renders the canonical debug form: "infinity", "-infinity",
// "nullity", an integer, or "n/d".
func (n Number) String() string {
	switch n.form {
	case formPositiveInfinity:
		return "infinity"
	case formNegativeInfinity:
		return "-infinity"
	case formNullity:
		return "nullity"
	}
	if n.den.Cmp(intOne) == 0 {
		return n.num.String()
	}
	return n.num.String() + "/" + n.den.String()
}
