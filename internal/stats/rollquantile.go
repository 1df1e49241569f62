package stats

import (
	"fmt"
	"math"

	"github.com/amahouachi/qntgo/internal/series"
)

// RollMedian returns the rolling median of source over windows of length
// period. output[i] is missing until a full window exists (i < period-1)
// and whenever the window ending at i has no valid samples; an input
// shorter than period yields an all-missing output of the same length.
func RollMedian(source []float64, period int) ([]float64, error) {
	return slidingQuantileHeap(source, period, 0.5)
}

// RollQuantile returns the rolling q-quantile of source over windows of
// length period, with the same missing-value conventions as RollMedian.
// At q=0.5 it is elementwise identical to RollMedian; other q values use
// the lower order-statistic of rank floor((valid-1)*q)+1 on even-sized
// windows rather than interpolating.
func RollQuantile(source []float64, period int, q float64) ([]float64, error) {
	return slidingQuantileHeap(source, period, q)
}

// slidingQuantileHeap runs the two-heap order-statistics engine across
// source in one pass. The lower heap (max at top) holds the smallest
// target samples of the current window, the upper heap (min at top)
// holds the rest, so the quantile boundary is always readable at the
// heap tops. Missing samples never enter either heap; evicted positions
// are tombstoned and removed lazily when they surface.
func slidingQuantileHeap(source []float64, period int, q float64) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rolling quantile: period must be positive, got %d", period)
	}
	if q < 0 || q > 1 {
		return nil, fmt.Errorf("rolling quantile: q must be in [0,1], got %v", q)
	}

	n := len(source)
	out := series.Filled(n)
	if n < period {
		return out, nil
	}

	owner := make([]int8, n)
	deleted := make([]bool, n)
	lower := newIndexHeap(source, owner, deleted, ownerLower, true)
	upper := newIndexHeap(source, owner, deleted, ownerUpper, false)
	sizeLower, sizeUpper := 0, 0

	for i := 0; i < n; i++ {
		// Admit the incoming sample.
		if v := source[i]; !math.IsNaN(v) {
			lower.prune()
			if lower.empty() || v <= lower.topValue() {
				lower.push(i)
				sizeLower++
			} else {
				upper.push(i)
				sizeUpper++
			}
		}

		// Evict the sample falling out of the window.
		if i >= period {
			outIdx := i - period
			switch owner[outIdx] {
			case ownerLower:
				lower.markDeleted(outIdx)
				sizeLower--
			case ownerUpper:
				upper.markDeleted(outIdx)
				sizeUpper--
			}
		}

		// Rebalance so |lower| matches the target rank for the current
		// valid count. Runs on every slide, whatever the admit/evict
		// branches did, so the cross-heap invariant holds before any
		// output is read.
		if valid := sizeLower + sizeUpper; valid > 0 {
			target := int(math.Floor(float64(valid-1)*q)) + 1
			lower.prune()
			upper.prune()
			for sizeLower > target {
				lower.prune()
				upper.push(lower.popTop())
				sizeLower--
				sizeUpper++
			}
			for sizeLower < target {
				upper.prune()
				lower.push(upper.popTop())
				sizeLower++
				sizeUpper--
			}
			lower.prune()
			upper.prune()
		}

		if i < period-1 {
			continue
		}

		// Emit the order statistic at the boundary.
		lower.prune()
		upper.prune()
		total := sizeLower + sizeUpper
		switch {
		case total == 0:
			// window is all missing, out[i] stays NaN
		case total%2 == 1:
			out[i] = lower.topValue()
		case q == 0.5:
			out[i] = (lower.topValue() + upper.topValue()) / 2
		default:
			out[i] = lower.topValue()
		}
	}

	return out, nil
}
