package transreal

import (
	"fmt"
	"math"
	"math/big"
)

// Root returns the degree-th root of n. The degree must be a positive
// integer; anything else is a contract violation, not a transreal value.
//
// Exact extraction is attempted first: if both the numerator and the
// denominator have exact integer roots the result is the exact rational
// (Root(3) of 64 is exactly 4). Otherwise the result is a float64
// approximation converted back through the exact binary-rational path; the
// approximate result carries no marker distinguishing it from an exact one.
//
// A negative finite base with an even degree returns nullity. The
// mathematically complete answer is a transcomplex value, which upstream
// never implemented; the gap is preserved rather than papered over.
func (n Number) Root(degree int) (Number, error) {
	if degree < 1 {
		return Number{}, fmt.Errorf("%w: root degree must be a positive integer, got %d", ErrInvalidValue, degree)
	}
	switch n.form {
	case formNullity:
		return Nullity(), nil
	case formPositiveInfinity:
		return Infinity(), nil
	case formNegativeInfinity:
		if degree%2 == 0 {
			return Nullity(), nil
		}
		return NegativeInfinity(), nil
	}
	neg := n.num.Sign() < 0
	if neg && degree%2 == 0 {
		return Nullity(), nil
	}

	numRoot, numExact := integerRoot(new(big.Int).Abs(n.num), degree)
	denRoot, denExact := integerRoot(n.den, degree)
	if numExact && denExact {
		if neg {
			numRoot.Neg(numRoot)
		}
		return makeRatio(numRoot, denRoot), nil
	}

	f := approxRoot(new(big.Int).Abs(n.num), n.den, degree)
	if neg {
		f = -f
	}
	return FromFloat(f), nil
}

// approxRoot computes (num/den)^(1/degree) for positive num, den as a
// float64. The ratio is rescaled by a power of two before it meets
// math.Pow, so operands far outside float64 range still produce a finite
// approximation instead of collapsing to infinity or zero.
func approxRoot(num, den *big.Int, degree int) float64 {
	e := num.BitLen() - den.BitLen()
	q, rem := e/degree, e%degree
	if rem < 0 {
		q--
		rem += degree
	}
	// num/den lies in (2^(e-1), 2^(e+1)); divide out 2^e to land near 1
	scaled := new(big.Rat).SetFrac(num, den)
	switch {
	case e > 0:
		scaled.Quo(scaled, new(big.Rat).SetInt(new(big.Int).Lsh(intOne, uint(e))))
	case e < 0:
		scaled.Mul(scaled, new(big.Rat).SetInt(new(big.Int).Lsh(intOne, uint(-e))))
	}
	m, _ := scaled.Float64()
	d := float64(degree)
	return math.Ldexp(math.Pow(m, 1/d)*math.Pow(2, float64(rem)/d), q)
}

// integerRoot computes the floor of the degree-th root of x >= 0 by Newton
// iteration on big integers, and reports whether the root is exact.
func integerRoot(x *big.Int, degree int) (*big.Int, bool) {
	if x.Sign() == 0 || x.Cmp(intOne) == 0 || degree == 1 {
		return new(big.Int).Set(x), true
	}
	d := big.NewInt(int64(degree))
	d1 := big.NewInt(int64(degree - 1))

	// start from a power of two guaranteed to overestimate the root
	guess := new(big.Int).Lsh(intOne, uint((x.BitLen()+degree-1)/degree))
	for {
		pow := new(big.Int).Exp(guess, d1, nil)
		next := new(big.Int).Quo(x, pow)
		next.Add(next, new(big.Int).Mul(d1, guess))
		next.Quo(next, d)
		if next.Cmp(guess) >= 0 {
			break
		}
		guess = next
	}
	pow := new(big.Int).Exp(guess, d, nil)
	return guess, pow.Cmp(x) == 0
}

// Sqrt is shorthand for Root(2).
func (n Number) Sqrt() Number {
	r, _ := n.Root(2)
	return r
}

// Pow raises n to a transreal power, following the upstream semantics: a
// negative power inverts the base, a zero power of zero is nullity, a
// fractional power routes through Root, and an infinite power resolves by
// the trichotomy on |n| (inside the unit interval, on it, outside it).
// A nullity base or power always yields nullity.
func (n Number) Pow(power Number) Number {
	if n.form == formNullity || power.form == formNullity {
		return Nullity()
	}
	if power.Sign() < 0 {
		return n.reciprocal().Pow(power.Neg())
	}

	switch {
	case power.IsInfinite(): // positive infinity after the sign flip
		a := n.Abs()
		switch {
		case a.Less(One()):
			return Zero()
		case a.Equal(One()):
			return Nullity()
		}
		return Infinity()

	case power.Equal(Zero()):
		if n.Equal(Zero()) {
			return Nullity()
		}
		return One()

	case power.Equal(One()):
		return n

	case power.Less(One()):
		// strictly between 0 and 1: an integer power under a root
		if !power.den.IsInt64() {
			return FromFloat(math.Pow(n.Float64(), power.Float64()))
		}
		r, _ := n.Pow(FromBigInt(power.num)).Root(int(power.den.Int64()))
		return r
	}

	if power.den.Cmp(intOne) == 0 {
		if n.IsInfinite() {
			// infinity keeps its magnitude, sign by exponent parity
			if n.form == formNegativeInfinity && power.num.Bit(0) == 0 {
				return Infinity()
			}
			return Number{form: n.form}
		}
		num := new(big.Int).Exp(n.num, power.num, nil)
		den := new(big.Int).Exp(n.den, power.num, nil)
		return makeRatio(num, den)
	}

	// power > 1 and fractional: split into whole and fractional parts
	whole := new(big.Int).Div(power.num, power.den)
	rem := new(big.Int).Mod(power.num, power.den)
	frac := makeRatio(rem, new(big.Int).Set(power.den))
	return n.Pow(FromBigInt(whole)).Mul(n.Pow(frac))
}

// Floor returns the largest integer value less than or equal to n. The
// non-finite values floor to themselves.
func (n Number) Floor() Number {
	if n.form != formFinite || n.den.Cmp(intOne) == 0 {
		return n
	}
	// big.Int.Div floors for positive divisors
	return FromBigInt(new(big.Int).Div(n.num, n.den))
}

// FloorDiv returns the floor of n / other.
func (n Number) FloorDiv(other Number) Number {
	return n.Div(other).Floor()
}

// Mod returns n - other * (n FloorDiv other).
func (n Number) Mod(other Number) Number {
	return n.Sub(other.Mul(n.FloorDiv(other)))
}

// Round returns n rounded toward negative infinity at the given number of
// decimal places. Negative places round at integer positions: Round(-2)
// keeps hundreds.
func (n Number) Round(decimalPlaces int) Number {
	if n.form != formFinite {
		return n
	}
	pow := new(big.Int).Exp(intTen, big.NewInt(int64(abs64(decimalPlaces))), nil)
	scale := FromBigInt(pow)
	if decimalPlaces < 0 {
		scale = makeRatio(big.NewInt(1), pow)
	}
	return n.Mul(scale).Floor().Div(scale)
}

func abs64(v int) int64 {
	if v < 0 {
		return -int64(v)
	}
	return int64(v)
}
