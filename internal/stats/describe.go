package stats

import "math"

// Whole-series reductions over the valid samples. Each returns NaN when
// the series has no valid samples (except Sum, which returns 0 to match
// the empty-sum convention).

// Sum returns the sum of the valid samples of source.
func Sum(source []float64) float64 {
	var sum float64
	for _, v := range source {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// Mean returns the arithmetic mean of the valid samples of source.
func Mean(source []float64) float64 {
	var sum float64
	n := 0
	for _, v := range source {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Std returns the population standard deviation of the valid samples of
// source.
func Std(source []float64) float64 {
	var sum, sumSq float64
	n := 0
	for _, v := range source {
		if !math.IsNaN(v) {
			sum += v
			sumSq += v * v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	fn := float64(n)
	variance := sumSq/fn - (sum/fn)*(sum/fn)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// Min returns the smallest valid sample of source.
func Min(source []float64) float64 {
	best := math.NaN()
	for _, v := range source {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(best) || v < best {
			best = v
		}
	}
	return best
}

// Max returns the largest valid sample of source.
func Max(source []float64) float64 {
	best := math.NaN()
	for _, v := range source {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(best) || v > best {
			best = v
		}
	}
	return best
}
