package transreal

import "math/big"

// Arithmetic is total: every operation is defined for every pair of
// operands. The rules are applied in precedence order: nullity absorbs,
// indeterminate infinite combinations resolve to nullity, a lone infinity
// propagates with standard sign arithmetic, division of a finite value by
// finite zero yields a signed infinity (or nullity for 0/0), and two finite
// operands fall through to exact rational arithmetic.

// Add returns n + other.
func (n Number) Add(other Number) Number {
	if n.form == formNullity || other.form == formNullity {
		return Nullity()
	}
	if n.IsInfinite() && other.IsInfinite() {
		if n.form == other.form {
			return Number{form: n.form}
		}
		return Nullity() // infinity + -infinity
	}
	if n.IsInfinite() {
		return Number{form: n.form}
	}
	if other.IsInfinite() {
		return Number{form: other.form}
	}
	if n.den.Cmp(other.den) == 0 {
		return makeRatio(new(big.Int).Add(n.num, other.num), new(big.Int).Set(n.den))
	}
	num := new(big.Int).Mul(n.num, other.den)
	num.Add(num, new(big.Int).Mul(other.num, n.den))
	return makeRatio(num, new(big.Int).Mul(n.den, other.den))
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return n.Add(other.Neg())
}

// Neg returns -n. The negation of nullity is nullity.
func (n Number) Neg() Number {
	switch n.form {
	case formPositiveInfinity:
		return NegativeInfinity()
	case formNegativeInfinity:
		return Infinity()
	case formNullity:
		return Nullity()
	}
	return Number{form: formFinite, num: new(big.Int).Neg(n.num), den: new(big.Int).Set(n.den)}
}

// Abs returns the absolute value.
func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}
	return n
}

// Mul returns n * other.
func (n Number) Mul(other Number) Number {
	if n.form == formNullity || other.form == formNullity {
		return Nullity()
	}
	if n.IsInfinite() || other.IsInfinite() {
		sign := n.Sign() * other.Sign()
		switch {
		case sign > 0:
			return Infinity()
		case sign < 0:
			return NegativeInfinity()
		}
		return Nullity() // 0 * infinity
	}
	num := new(big.Int).Mul(n.num, other.num)
	den := new(big.Int).Mul(n.den, other.den)
	return makeRatio(num, den)
}

// Div returns n / other. Division by finite zero yields the signed infinity
// matching the dividend's sign, or nullity when the dividend is also zero;
// infinity / infinity is nullity.
func (n Number) Div(other Number) Number {
	if n.form == formNullity || other.form == formNullity {
		return Nullity()
	}
	if n.IsInfinite() && other.IsInfinite() {
		return Nullity()
	}
	if n.IsInfinite() {
		// infinity / finite, including finite zero: the reciprocal of zero
		// is positive infinity, so only the dividend's sign can flip
		if other.Sign() < 0 {
			return Number{form: n.form}.Neg()
		}
		return Number{form: n.form}
	}
	if other.IsInfinite() {
		return Zero()
	}
	if other.num.Sign() == 0 {
		switch {
		case n.num.Sign() > 0:
			return Infinity()
		case n.num.Sign() < 0:
			return NegativeInfinity()
		}
		return Nullity() // 0 / 0
	}
	num := new(big.Int).Mul(n.num, other.den)
	den := new(big.Int).Mul(n.den, other.num)
	return makeRatio(num, den)
}

// reciprocal returns 1 / n exactly, without routing through Div.
func (n Number) reciprocal() Number {
	switch n.form {
	case formPositiveInfinity, formNegativeInfinity:
		return Zero()
	case formNullity:
		return Nullity()
	}
	if n.num.Sign() == 0 {
		return Infinity()
	}
	return makeRatio(new(big.Int).Set(n.den), new(big.Int).Set(n.num))
}
