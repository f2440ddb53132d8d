package series

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlmath/combin"
)

// Cosine — truncated Maclaurin expansion
//
// Description:
//
//	cos(x) ≈ Σ_{k=0}^{N} (-1)^k · x^(2k) / (2k)!
//	with N = DefaultCosineOrder (16), i.e. 17 terms, evaluated through
//	SumAt with x as the fixed point.
//
// Accuracy:
//
//	The order is fixed; there is no convergence check. Within [-2π, 2π]
//	the truncation error is far below float64 resolution, outside it the
//	approximation degrades until factorial growth re-dominates. Accepted
//	limitation.
//
// Errors (CosineN only):
//   - ErrNegativeOrder — order < 0.
//   - ErrOrderTooLarge — order > MaxCosineOrder (the (2k)! denominator
//     would overflow float64).
var (
	// ErrNegativeOrder indicates a negative truncation order.
	ErrNegativeOrder = errors.New("series: negative truncation order")

	// ErrOrderTooLarge indicates a truncation order beyond MaxCosineOrder.
	ErrOrderTooLarge = errors.New("series: truncation order too large")
)

// Cosine returns the 17-term Maclaurin approximation of cos(x).
func Cosine(x float64) float64 {
	// DefaultCosineOrder is a valid order, so CosineN cannot fail here.
	c, _ := CosineN(x, DefaultCosineOrder)

	return c
}

// CosineRounded returns Cosine(x) rounded to the given number of decimal
// digits (half away from zero, math.Round convention). The digits
// parameter affects only the final rounding, never the number of series
// terms.
func CosineRounded(x float64, digits int) float64 {
	return roundTo(Cosine(x), digits)
}

// CosineN returns the Maclaurin approximation of cos(x) truncated at the
// given order: terms k = 0..order inclusive. Cosine is CosineN with
// DefaultCosineOrder.
func CosineN(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, ErrNegativeOrder
	}
	if order > MaxCosineOrder {
		return 0, ErrOrderTooLarge
	}

	return SumAt(0, order, x, cosineTerm)
}

// cosineTerm evaluates (-1)^k · x^(2k) / (2k)!.
func cosineTerm(x float64, k int) float64 {
	// CosineN caps k at MaxCosineOrder, so (2k)! is always finite.
	fac, _ := combin.FactorialFloat(2 * k)

	return combin.Power(-1, float64(k)) * combin.Power(x, float64(2*k)) / fac
}

// roundTo rounds v to the given number of decimal digits.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))

	return math.Round(v*scale) / scale
}
