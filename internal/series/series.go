// Package series provides the missing-value conventions and elementwise
// primitives shared by every statistic and indicator in the library.
//
// NaN is the only sentinel for "missing"; every other float64 value,
// including ±Inf, is a valid sample. Algorithms elsewhere branch once on
// HasMissing and then run a single implementation parameterized by that
// flag, rather than maintaining twin dense/NaN-aware copies.
package series

import "math"

// Missing is the sentinel stored at positions with no sample.
var Missing = math.NaN()

// IsMissing reports whether v is the missing-value sentinel.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// HasMissing reports whether source contains at least one missing value.
func HasMissing(source []float64) bool {
	for _, v := range source {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// CountValid returns the number of non-missing samples in source.
func CountValid(source []float64) int {
	n := 0
	for _, v := range source {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Compact copies every non-missing sample of source into a fresh slice,
// preserving relative order. The result is empty (not nil) when every
// sample is missing.
func Compact(source []float64) []float64 {
	out := make([]float64, 0, len(source))
	for _, v := range source {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Filled returns a slice of length n with every position missing.
func Filled(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Add returns the elementwise sum of a and b. Positions where either
// operand is missing are missing in the result. Panics if lengths differ.
func Add(a, b []float64) []float64 {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the elementwise difference a-b with missing propagation.
func Sub(a, b []float64) []float64 {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise product of a and b with missing propagation.
func Mul(a, b []float64) []float64 {
	return zip(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns the elementwise quotient a/b with missing propagation.
// Division by zero follows IEEE-754 (±Inf or NaN), it is not treated as
// a missing value.
func Div(a, b []float64) []float64 {
	return zip(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar returns source with s added to every valid sample.
func AddScalar(source []float64, s float64) []float64 {
	return apply(source, func(x float64) float64 { return x + s })
}

// MulScalar returns source with every valid sample multiplied by s.
func MulScalar(source []float64, s float64) []float64 {
	return apply(source, func(x float64) float64 { return x * s })
}

// Diff returns the lag-1 difference of source. Position 0 is missing;
// position i is missing when either source[i] or source[i-1] is missing.
func Diff(source []float64) []float64 {
	out := make([]float64, len(source))
	if len(source) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(source); i++ {
		out[i] = source[i] - source[i-1]
	}
	return out
}

// Shift returns source displaced by k positions (positive k shifts
// toward higher indices). Vacated positions are missing.
func Shift(source []float64, k int) []float64 {
	out := Filled(len(source))
	for i := range source {
		j := i + k
		if j >= 0 && j < len(source) {
			out[j] = source[i]
		}
	}
	return out
}

func zip(a, b []float64, f func(x, y float64) float64) []float64 {
	if len(a) != len(b) {
		panic("series: elementwise operands must have equal length")
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

func apply(source []float64, f func(x float64) float64) []float64 {
	out := make([]float64, len(source))
	for i, v := range source {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = f(v)
	}
	return out
}
