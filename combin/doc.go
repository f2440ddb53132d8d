// Package combin provides the small combinatorial building blocks used by
// series expansions: real exponentiation and factorials.
//
// ✨ Key features:
//   - Power — thin, documented delegation to math.Pow, so series code can
//     pass it around as a first-class value
//   - Factorial — exact int64 factorial with loud overflow reporting
//   - FactorialFloat — float64 factorial for use inside floating-point
//     term functions, finite up to 170!
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/combin"
//
//	f, err := combin.Factorial(6)       // 720, nil
//	_, err = combin.Factorial(-1)       // ErrNegativeFactorial
//	_, err = combin.Factorial(21)       // ErrFactorialOverflow (21! > math.MaxInt64)
//	g, _ := combin.FactorialFloat(32)   // 2.6313083693369353e35
//
// Errors are sentinels, matched with errors.Is. Arithmetic domain errors of
// Power (e.g. Power(0, -1) = +Inf, NaN propagation) are math.Pow's own and
// pass through unmodified.
//
// Complexity: Factorial and FactorialFloat are O(n); Power is O(1).
package combin
