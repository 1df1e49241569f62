package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/amahouachi/qntgo/internal/series"
)

// percentilesSortCrossover is the query count above which Percentiles
// sorts the compacted buffer once instead of running one selection per
// query.
const percentilesSortCrossover = 10

// Quantile returns the linear-interpolation q-quantile of the valid
// (non-missing) samples of source. It returns NaN when source has no
// valid samples, and an error when q is outside [0,1].
func Quantile(source []float64, q float64) (float64, error) {
	if q < 0 || q > 1 {
		return 0, fmt.Errorf("quantile: q must be in [0,1], got %v", q)
	}
	buf := series.Compact(source)
	return quantileInPlace(buf, q), nil
}

// Median returns the median of the valid samples of source, or NaN when
// there are none.
func Median(source []float64) float64 {
	v, _ := Quantile(source, 0.5)
	return v
}

// Percentiles answers every quantile in qs over a single compaction of
// source. Entries of qs outside [0,1] produce NaN at their output
// position only; they never abort the batch. For small query counts each
// answer is an O(n) selection; past the crossover the buffer is sorted
// once and every answer is an index interpolation.
func Percentiles(source []float64, qs []float64) []float64 {
	switch len(qs) {
	case 0:
		return []float64{}
	case 1:
		if qs[0] < 0 || qs[0] > 1 {
			return []float64{math.NaN()}
		}
		v, _ := Quantile(source, qs[0])
		return []float64{v}
	}

	buf := series.Compact(source)
	out := make([]float64, len(qs))

	if len(qs) <= percentilesSortCrossover {
		for i, q := range qs {
			if q < 0 || q > 1 {
				out[i] = math.NaN()
				continue
			}
			out[i] = quantileInPlace(buf, q)
		}
		return out
	}

	sort.Float64s(buf)
	for i, q := range qs {
		if q < 0 || q > 1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = quantileSorted(buf, q)
	}
	return out
}

// quantileInPlace computes the q-quantile of the already-compacted
// buffer buf, permuting it. One selection positions the lower rank; when
// interpolation needs the next rank too, that value is the minimum of
// the partition's upper part, found with a single linear scan rather
// than a second selection.
func quantileInPlace(buf []float64, q float64) float64 {
	p := len(buf)
	if p == 0 {
		return math.NaN()
	}
	idx := float64(p-1) * q
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))

	loVal := Select(buf, lo, 0, p-1)
	if lo == hi {
		return loVal
	}

	hiVal := buf[lo+1]
	for j := lo + 2; j < p; j++ {
		if buf[j] < hiVal {
			hiVal = buf[j]
		}
	}
	w := idx - float64(lo)
	return loVal*(1-w) + hiVal*w
}

// quantileSorted interpolates the q-quantile from an ascending buffer.
func quantileSorted(buf []float64, q float64) float64 {
	p := len(buf)
	if p == 0 {
		return math.NaN()
	}
	idx := float64(p-1) * q
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return buf[lo]
	}
	w := idx - float64(lo)
	return buf[lo]*(1-w) + buf[hi]*w
}
