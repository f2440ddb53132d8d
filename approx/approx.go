package approx

import "math"

const (
	// Epsilon is the relative tolerance threshold shared by Equal and
	// EqualSlice. Two values closer than this, after normalization by
	// their combined magnitude, are considered equal.
	Epsilon = 1.0e-15

	// MaxMagnitude caps the normalizer |x|+|y| so that the relative
	// comparison cannot overflow when both operands sit near the
	// float64 maximum (≈1.7977e308).
	MaxMagnitude = 1.797693134862315e308
)

// Equal reports whether x and y are equal within Epsilon.
//
// Decision order:
//  1. x == y                      → true (covers exact matches and ±0).
//  2. exactly one operand is zero → |x−y| < Epsilon (absolute tolerance;
//     a relative one would divide by ~0).
//  3. both nonzero                → |x−y| / min(|x|+|y|, MaxMagnitude) < Epsilon.
//
// Equal is pure and total over finite float64 values; NaN and ±Inf
// operands yield unspecified results.
func Equal(x, y float64) bool {
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	if x == 0 || y == 0 {
		return diff < Epsilon
	}

	return diff/math.Min(math.Abs(x)+math.Abs(y), MaxMagnitude) < Epsilon
}

// EqualSlice reports whether a and b have the same length and are
// element-wise equal within Epsilon. A length mismatch is never equal.
func EqualSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
