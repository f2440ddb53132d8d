// Package series: term-evaluator types and shared constants.
package series

import "math"

// Term evaluates the i-th term of a plain summation. Any closure or named
// function with this shape can drive Sum; the combinator imposes no
// structure on what a term computes.
type Term func(k int) float64

// TermAt evaluates the i-th term of a summation parameterized by a fixed
// real point x0 (e.g. the evaluation point of a power series). SumAt
// passes the same x0 to every invocation.
type TermAt func(x0 float64, k int) float64

const (
	// DefaultCosineOrder is the truncation order N of the Maclaurin
	// expansion used by Cosine and CosineRounded: terms k = 0..N, so
	// N+1 = 17 evaluations.
	DefaultCosineOrder = 16

	// MaxCosineOrder is the largest order CosineN accepts: beyond it the
	// (2k)! denominator is no longer a finite float64.
	MaxCosineOrder = 85
)

// Pi returns the float64 value of π.
func Pi() float64 { return math.Pi }

// E returns the float64 value of Euler's number, 2.718281828459045.
func E() float64 { return math.E }
