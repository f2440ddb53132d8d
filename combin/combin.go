package combin

import (
	"errors"
	"math"
)

const (
	// MaxFactorial64 is the largest n for which n! fits in an int64
	// (20! = 2432902008176640000 < math.MaxInt64 < 21!).
	MaxFactorial64 = 20

	// MaxFactorialExact is the largest n for which n! is a finite float64
	// (171! overflows to +Inf).
	MaxFactorialExact = 170
)

var (
	// ErrNegativeFactorial indicates a factorial of a negative integer was
	// requested. The function is undefined there and must not loop or
	// return garbage.
	ErrNegativeFactorial = errors.New("combin: factorial of negative integer")

	// ErrFactorialOverflow indicates n! does not fit in the requested
	// result type (int64 for Factorial, finite float64 for FactorialFloat).
	ErrFactorialOverflow = errors.New("combin: factorial overflows result type")
)

// Power returns base raised to exponent, delegating to math.Pow.
//
// It supports negative integer bases with integer exponents — in particular
// Power(-1, k) alternates sign, which series terms rely on. Domain edge
// cases (Power(0, -1) = +Inf, NaN in → NaN out) follow math.Pow exactly and
// are not wrapped.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Factorial returns n! as an exact int64.
//
// 0! = 1. Returns ErrNegativeFactorial for n < 0 and ErrFactorialOverflow
// for n > MaxFactorial64. Iterative accumulation, O(n).
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	if n > MaxFactorial64 {
		return 0, ErrFactorialOverflow
	}

	acc := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		acc *= i
	}

	return acc, nil
}

// FactorialFloat returns n! as a float64.
//
// Exact for n ≤ 18 and correct to float64 precision beyond that; finite up
// to n = MaxFactorialExact. Returns ErrNegativeFactorial for n < 0 and
// ErrFactorialOverflow for n > MaxFactorialExact. Series term functions
// use this form, since (2k)! outgrows int64 after k = 10.
func FactorialFloat(n int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	if n > MaxFactorialExact {
		return 0, ErrFactorialOverflow
	}

	acc := 1.0
	for i := 2; i <= n; i++ {
		acc *= float64(i)
	}

	return acc, nil
}
