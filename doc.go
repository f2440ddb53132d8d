// Package lvlmath is a compact numeric toolbox for everyday floating-point
// work — tolerance-aware comparison, higher-order summation, and
// series-based approximation.
//
// 🚀 What is lvlmath?
//
//	A small, deterministic library that brings together:
//		• Approximate equality: relative-tolerance comparison for float64
//		• Summation combinators: sum any term function over an index range
//		• Combinatorics: factorial and exponentiation building blocks
//		• Series cosine: truncated Maclaurin expansion of cos(x)
//
// ✨ Why choose lvlmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Composable – pass any closure as a term evaluator
//
// Under the hood, everything is organized under three subpackages:
//
//	approx/ — tolerance-based float64 comparison (Equal, EqualSlice)
//	combin/ — Power, Factorial, FactorialFloat
//	series/ — Sum, SumAt combinators & the Taylor-series Cosine family
//
// Quick taste:
//
//	sum, _ := series.Sum(1, 100, func(k int) float64 { return float64(k * k) })
//	// sum == 338350
//
//	c := series.Cosine(0.5)
//	approx.Equal(c, 0.8775825618903728) // true
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
