// Package transreal implements exact transreal arithmetic: the rational
// numbers extended with positive infinity, negative infinity and nullity,
// under which every arithmetic operation is total. Division by zero never
// fails; it produces a signed infinity, or nullity when the operation is
// classically indeterminate (0/0, infinity - infinity, 0 * infinity).
//
// Finite values are exact arbitrary-precision rationals, so arithmetic on
// them is lossless. Root extraction detects exact rational roots and only
// falls back to a binary floating-point approximation when no exact root
// exists.
package transreal
