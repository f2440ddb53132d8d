// Package approx provides tolerance-based equality for float64 values,
// compensating for the representation error inherent to binary floating point.
//
// 🚀 Why approximate equality?
//
//	Exact comparison of computed floats is almost always wrong:
//	  2.3 - 0.3 == 2.0  → false
//	  approx.Equal(2.3-0.3, 2.0) → true
//	Rounding error accumulates through arithmetic, so correctness checks
//	must allow a small relative tolerance.
//
// ✨ Key features:
//   - exact matches (including ±0) short-circuit to true
//   - absolute tolerance when exactly one operand is zero
//   - relative tolerance |x−y|/(|x|+|y|) otherwise, overflow-guarded near
//     the float64 maximum
//   - slice form for comparing whole result vectors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/approx"
//
//	if approx.Equal(got, want) { ... }
//	if approx.EqualSlice(gotVec, wantVec) { ... }
//
// Behavior with NaN or ±Inf operands is unspecified: the predicate is
// defined over finite reals only and never inspects the operands for
// special values.
//
// Complexity: O(1) per comparison, O(n) for slices. No allocations.
package approx
