package transreal

import "math/big"

// Equal reports whether two numbers are equal. Finite values compare
// structurally on their reduced numerator/denominator pairs. Nullity is
// unordered and compares unequal to everything, including another nullity;
// use Identical for a reflexive structural check.
func (n Number) Equal(other Number) bool {
	if n.form == formNullity || other.form == formNullity {
		return false
	}
	if n.form != other.form {
		return false
	}
	if n.form != formFinite {
		return true
	}
	return n.num.Cmp(other.num) == 0 && n.den.Cmp(other.den) == 0
}

// Identical reports whether two numbers have the same representation. Unlike
// Equal it is reflexive for nullity; it exists so that callers (and tests)
// can deduplicate or assert on nullity results without weakening the
// unordered equality semantics of Equal.
func (n Number) Identical(other Number) bool {
	if n.form != other.form {
		return false
	}
	if n.form != formFinite {
		return true
	}
	return n.num.Cmp(other.num) == 0 && n.den.Cmp(other.den) == 0
}

// Cmp compares two numbers under the total order
// -infinity < finite < +infinity. The boolean is false when the operands are
// unordered, which happens exactly when either is nullity.
func (n Number) Cmp(other Number) (int, bool) {
	if n.form == formNullity || other.form == formNullity {
		return 0, false
	}
	rank := func(f form) int {
		switch f {
		case formNegativeInfinity:
			return -1
		case formPositiveInfinity:
			return 1
		}
		return 0
	}
	rn, ro := rank(n.form), rank(other.form)
	if rn != ro {
		if rn < ro {
			return -1, true
		}
		return 1, true
	}
	if n.form != formFinite {
		return 0, true
	}
	// cross-multiply; denominators are positive so the direction holds
	left := new(big.Int).Mul(n.num, other.den)
	right := new(big.Int).Mul(other.num, n.den)
	return left.Cmp(right), true
}

// Less reports n < other. It is false whenever either operand is nullity.
func (n Number) Less(other Number) bool {
	c, ok := n.Cmp(other)
	return ok && c < 0
}

// Greater reports n > other. It is false whenever either operand is nullity.
func (n Number) Greater(other Number) bool {
	c, ok := n.Cmp(other)
	return ok && c > 0
}

// LessOrEqual reports n <= other under the same nullity rules.
func (n Number) LessOrEqual(other Number) bool {
	return n.Less(other) || n.Equal(other)
}

// GreaterOrEqual reports n >= other under the same nullity rules.
func (n Number) GreaterOrEqual(other Number) bool {
	return n.Greater(other) || n.Equal(other)
}
