package stats

import (
	"fmt"
	"math"

	"github.com/amahouachi/qntgo/internal/series"
)

// Rolling accumulator statistics. Every function shares the windowing
// conventions of the quantile engine: output[i] is missing before the
// first full window, a window with no valid samples emits missing, an
// input shorter than period yields an all-missing output, and
// period <= 0 is an error.
//
// Each function runs a single implementation parameterized by a
// precomputed hasMissing flag: the dense branch skips per-sample NaN
// checks, the NaN-aware branch additionally tracks the valid count.

// RollSum returns the rolling sum of the valid samples in each window.
func RollSum(source []float64, period int) ([]float64, error) {
	return rollAccumulate(source, period, func(sum, sumSq float64, valid int) float64 {
		return sum
	})
}

// RollMean returns the rolling arithmetic mean of the valid samples in
// each window.
func RollMean(source []float64, period int) ([]float64, error) {
	return rollAccumulate(source, period, func(sum, sumSq float64, valid int) float64 {
		return sum / float64(valid)
	})
}

// RollStd returns the rolling population standard deviation of the
// valid samples in each window.
func RollStd(source []float64, period int) ([]float64, error) {
	return rollAccumulate(source, period, func(sum, sumSq float64, valid int) float64 {
		n := float64(valid)
		variance := sumSq/n - (sum/n)*(sum/n)
		if variance < 0 {
			variance = 0 // guard the subtraction against round-off
		}
		return math.Sqrt(variance)
	})
}

// RollZScore returns, for each full window, the z-score of the newest
// sample against that window's mean and standard deviation. Positions
// where the newest sample is missing are missing; a zero-deviation
// window scores 0.
func RollZScore(source []float64, period int) ([]float64, error) {
	mean, err := RollMean(source, period)
	if err != nil {
		return nil, err
	}
	std, _ := RollStd(source, period)
	out := series.Filled(len(source))
	for i := range source {
		if math.IsNaN(source[i]) || math.IsNaN(mean[i]) {
			continue
		}
		if std[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = (source[i] - mean[i]) / std[i]
	}
	return out, nil
}

// RollMin returns the rolling minimum of the valid samples in each window.
func RollMin(source []float64, period int) ([]float64, error) {
	return rollExtremum(source, period, func(a, b float64) bool { return a <= b })
}

// RollMax returns the rolling maximum of the valid samples in each window.
func RollMax(source []float64, period int) ([]float64, error) {
	return rollExtremum(source, period, func(a, b float64) bool { return a >= b })
}

func rollAccumulate(source []float64, period int, emit func(sum, sumSq float64, valid int) float64) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rolling statistic: period must be positive, got %d", period)
	}
	n := len(source)
	out := series.Filled(n)
	if n < period {
		return out, nil
	}

	hasMissing := series.HasMissing(source)
	var sum, sumSq float64
	valid := 0

	for i := 0; i < n; i++ {
		if v := source[i]; !hasMissing || !math.IsNaN(v) {
			sum += v
			sumSq += v * v
			valid++
		}
		if i >= period {
			if v := source[i-period]; !hasMissing || !math.IsNaN(v) {
				sum -= v
				sumSq -= v * v
				valid--
			}
		}
		if i < period-1 || valid == 0 {
			continue
		}
		out[i] = emit(sum, sumSq, valid)
	}
	return out, nil
}

// rollExtremum slides a monotonic deque of indices: the front always
// holds the window extremum, entries beaten by a newer sample are
// dropped from the back, and front entries are dropped once they age out
// of the window. Missing samples never enter the deque.
func rollExtremum(source []float64, period int, wins func(a, b float64) bool) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rolling statistic: period must be positive, got %d", period)
	}
	n := len(source)
	out := series.Filled(n)
	if n < period {
		return out, nil
	}

	deque := make([]int, 0, period)
	for i := 0; i < n; i++ {
		if v := source[i]; !math.IsNaN(v) {
			for len(deque) > 0 && wins(v, source[deque[len(deque)-1]]) {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, i)
		}
		for len(deque) > 0 && deque[0] <= i-period {
			deque = deque[1:]
		}
		if i < period-1 || len(deque) == 0 {
			continue
		}
		out[i] = source[deque[0]]
	}
	return out, nil
}
