package stats

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 3, 10, 99, 601, 5000} {
		buf := make([]float64, n)
		for i := range buf {
			buf[i] = rng.NormFloat64() * 100
		}
		sorted := append([]float64(nil), buf...)
		sort.Float64s(sorted)

		for _, k := range []int{0, n / 4, n / 2, n - 1} {
			work := append([]float64(nil), buf...)
			got := Select(work, k, 0, n-1)
			assert.Equal(t, sorted[k], got, "n=%d k=%d", n, k)
		}
	}
}

func TestSelect_RepeatedValues(t *testing.T) {
	buf := make([]float64, 1000)
	for i := range buf {
		buf[i] = float64(i % 5)
	}
	sorted := append([]float64(nil), buf...)
	sort.Float64s(sorted)

	for k := 0; k < len(buf); k += 97 {
		work := append([]float64(nil), buf...)
		assert.Equal(t, sorted[k], Select(work, k, 0, len(buf)-1))
	}
}

func TestSelect_PartitionsBuffer(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	buf := make([]float64, 500)
	for i := range buf {
		buf[i] = rng.Float64()
	}

	k := 123
	kth := Select(buf, k, 0, len(buf)-1)
	require.Equal(t, kth, buf[k])

	// Everything past k must be >= the selected value; the batch
	// quantile's linear min-scan relies on this.
	for j := k + 1; j < len(buf); j++ {
		assert.GreaterOrEqual(t, buf[j], kth)
	}
}

func TestSelect_SubRange(t *testing.T) {
	buf := []float64{9, 9, 3, 1, 2, 9, 9}
	got := Select(buf, 3, 2, 4)
	assert.Equal(t, 2.0, got)
	// Outside the range stays untouched.
	assert.Equal(t, 9.0, buf[0])
	assert.Equal(t, 9.0, buf[6])
}
