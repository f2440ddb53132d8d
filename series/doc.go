// Package series provides generic finite-summation combinators and a
// Taylor-series cosine built on top of them.
//
// 🚀 What lives here?
//
//	Two higher-order reducers and one worked application:
//	  • Sum(k0, k, term)       — Σ term(i) for i = k0..k inclusive
//	  • SumAt(k0, k, x0, term) — Σ term(x0, i), threading a fixed point x0
//	  • Cosine(x)              — truncated Maclaurin expansion of cos(x)
//
// ✨ Key features:
//   - term evaluators are plain function values — pass any closure
//   - every index in the closed interval [k0, k] is visited exactly once
//   - iterative accumulation, no recursion, no stack-depth limits
//   - inverted ranges and nil terms fail fast with sentinel errors
//   - cosine family: raw, decimal-rounded, and order-overridden variants
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/series"
//
//	// Σ k², k = 1..100  → 338350
//	s, err := series.Sum(1, 100, func(k int) float64 { return float64(k * k) })
//
//	c := series.Cosine(0.5)              // ≈ 0.8775825618903728
//	r := series.CosineRounded(0.5, 4)    // 0.8776
//
// The cosine uses a fixed truncation order (DefaultCosineOrder = 16, i.e.
// 17 terms). There is no dynamic convergence check: accuracy degrades for
// |x| outside roughly [-2π, 2π], which is an accepted limitation of a
// fixed-order expansion, not a defect. The decimal-digits parameter of
// CosineRounded only rounds the final value; it never changes the term
// count.
//
// Complexity: O(k−k0) term evaluations for the combinators; the cosine is
// O(order²) due to the factorial inside each term.
package series
