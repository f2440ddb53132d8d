package series

import "errors"

// Summation combinators
//
// Description:
//
//	Sum and SumAt reduce a user-supplied term function over the inclusive
//	integer range [k0, k] by addition. They are the generic backbone for
//	finite series: the cosine expansion in this package is one caller, but
//	any closure works.
//
// Algorithm Outline:
//  1. Validate: term must be non-nil, k must not be below k0.
//  2. acc = term(k0) — the base case performs no addition, so a
//     single-element range costs exactly one evaluation.
//  3. For i = k0+1 .. k: acc += term(i).
//  4. Return acc.
//
// The loop visits every integer in [k0, k] exactly once, in ascending
// order. Accumulation is iterative, so arbitrarily wide ranges cannot
// exhaust the stack.
//
// Errors:
//   - ErrNilTerm       — term function is nil.
//   - ErrInvertedRange — k < k0 (the sum over an empty descending range is
//     left undefined rather than silently returning 0).
var (
	// ErrNilTerm indicates a nil term evaluator was supplied.
	ErrNilTerm = errors.New("series: term function is nil")

	// ErrInvertedRange indicates the upper bound is below the lower bound.
	ErrInvertedRange = errors.New("series: upper bound below lower bound")
)

// Sum returns Σ term(i) for i = k0..k inclusive.
//
// Example:
//
//	squares, err := series.Sum(1, 100, func(k int) float64 { return float64(k * k) })
//	// squares == 338350
func Sum(k0, k int, term Term) (float64, error) {
	if term == nil {
		return 0, ErrNilTerm
	}
	if k < k0 {
		return 0, ErrInvertedRange
	}

	acc := term(k0)
	for i := k0 + 1; i <= k; i++ {
		acc += term(i)
	}

	return acc, nil
}

// SumAt returns Σ term(x0, i) for i = k0..k inclusive, passing the fixed
// point x0 to every term evaluation.
//
// Example:
//
//	// Maclaurin cosine at x: Σ (-1)^k · x^(2k) / (2k)!
//	c, err := series.SumAt(0, 16, x, cosTerm)
func SumAt(k0, k int, x0 float64, term TermAt) (float64, error) {
	if term == nil {
		return 0, ErrNilTerm
	}
	if k < k0 {
		return 0, ErrInvertedRange
	}

	acc := term(x0, k0)
	for i := k0 + 1; i <= k; i++ {
		acc += term(x0, i)
	}

	return acc, nil
}
