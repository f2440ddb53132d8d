package combin_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/approx"
	"github.com/katalvlaran/lvlmath/combin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPower_Basics checks integer exponentiation and the alternating-sign
// base used by series terms.
func TestPower_Basics(t *testing.T) {
	assert.Equal(t, 9.0, combin.Power(3, 2), "3^2 must be 9")
	assert.Equal(t, 1.0, combin.Power(17, 0), "x^0 must be 1")
	assert.Equal(t, 0.5, combin.Power(2, -1), "2^-1 must be 0.5")

	// (-1)^k alternates sign for integer k.
	assert.Equal(t, 1.0, combin.Power(-1, 0))
	assert.Equal(t, -1.0, combin.Power(-1, 1))
	assert.Equal(t, 1.0, combin.Power(-1, 2))
	assert.Equal(t, -1.0, combin.Power(-1, 7))
}

// TestPower_Fractional checks fractional exponents against math.Sqrt.
func TestPower_Fractional(t *testing.T) {
	assert.True(t, approx.Equal(combin.Power(2, 0.5), math.Sqrt2))
	assert.True(t, approx.Equal(combin.Power(27, 1.0/3.0), 3.0))
}

// TestPower_DomainPassThrough confirms math.Pow edge cases surface
// unmodified rather than being wrapped.
func TestPower_DomainPassThrough(t *testing.T) {
	assert.True(t, math.IsInf(combin.Power(0, -1), 1), "0^-1 is +Inf per math.Pow")
	assert.True(t, math.IsNaN(combin.Power(-1, 0.5)), "(-1)^0.5 is NaN per math.Pow")
}

// TestFactorial_Values checks the small exact values the rest of the
// library leans on.
func TestFactorial_Values(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tc := range cases {
		got, err := combin.Factorial(tc.n)
		require.NoError(t, err, "Factorial(%d)", tc.n)
		assert.Equal(t, tc.want, got, "Factorial(%d)", tc.n)
	}
}

// TestFactorial_Negative requires ErrNegativeFactorial for n < 0.
func TestFactorial_Negative(t *testing.T) {
	_, err := combin.Factorial(-1)
	assert.ErrorIs(t, err, combin.ErrNegativeFactorial)

	_, err = combin.Factorial(-100)
	assert.ErrorIs(t, err, combin.ErrNegativeFactorial)
}

// TestFactorial_Overflow requires ErrFactorialOverflow just past the int64
// ceiling, and success exactly at it.
func TestFactorial_Overflow(t *testing.T) {
	_, err := combin.Factorial(combin.MaxFactorial64)
	assert.NoError(t, err, "20! fits in int64")

	_, err = combin.Factorial(combin.MaxFactorial64 + 1)
	assert.ErrorIs(t, err, combin.ErrFactorialOverflow, "21! exceeds int64")
}

// TestFactorial_Recurrence verifies n! == n·(n−1)! across the whole
// representable range.
func TestFactorial_Recurrence(t *testing.T) {
	for n := 1; n <= combin.MaxFactorial64; n++ {
		fn, err := combin.Factorial(n)
		require.NoError(t, err)
		fprev, err := combin.Factorial(n - 1)
		require.NoError(t, err)
		assert.Equal(t, int64(n)*fprev, fn, "recurrence fails at n=%d", n)
	}
}

// TestFactorialFloat_Values spot-checks the float64 factorial, including
// the (2k)! magnitudes the cosine series consumes.
func TestFactorialFloat_Values(t *testing.T) {
	got, err := combin.FactorialFloat(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = combin.FactorialFloat(10)
	require.NoError(t, err)
	assert.Equal(t, 3628800.0, got)

	got, err = combin.FactorialFloat(32)
	require.NoError(t, err)
	// Iterative float accumulation may drift a few ulps from the exactly
	// rounded 32!.
	assert.InEpsilon(t, 2.6313083693369353e35, got, 1e-13, "32! as float64")
}

// TestFactorialFloat_Bounds checks both sentinels and the finite ceiling.
func TestFactorialFloat_Bounds(t *testing.T) {
	_, err := combin.FactorialFloat(-1)
	assert.ErrorIs(t, err, combin.ErrNegativeFactorial)

	got, err := combin.FactorialFloat(combin.MaxFactorialExact)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 1), "170! is still finite")

	_, err = combin.FactorialFloat(combin.MaxFactorialExact + 1)
	assert.ErrorIs(t, err, combin.ErrFactorialOverflow, "171! overflows float64")
}

// TestFactorial_AgreesWithFloat cross-checks the two factorial forms where
// both are exact.
func TestFactorial_AgreesWithFloat(t *testing.T) {
	for n := 0; n <= 18; n++ {
		fi, err := combin.Factorial(n)
		require.NoError(t, err)
		ff, err := combin.FactorialFloat(n)
		require.NoError(t, err)
		assert.Equal(t, float64(fi), ff, "mismatch at n=%d", n)
	}
}
