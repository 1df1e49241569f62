package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_SkipsMissing(t *testing.T) {
	source := []float64{2, math.NaN(), -4, 6, math.NaN()}

	assert.Equal(t, 4.0, Sum(source))
	assert.InDelta(t, 4.0/3, Mean(source), 1e-12)
	assert.Equal(t, -4.0, Min(source))
	assert.Equal(t, 6.0, Max(source))
	assert.InDelta(t, math.Sqrt(152.0/9), Std(source), 1e-12)
}

func TestDescribe_NoValidSamples(t *testing.T) {
	empty := []float64{math.NaN()}

	assert.Equal(t, 0.0, Sum(empty))
	assert.True(t, math.IsNaN(Mean(empty)))
	assert.True(t, math.IsNaN(Std(empty)))
	assert.True(t, math.IsNaN(Min(empty)))
	assert.True(t, math.IsNaN(Max(empty)))
}
