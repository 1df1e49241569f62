package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWalk_Deterministic(t *testing.T) {
	a := GenerateWalk(500, 42)
	b := GenerateWalk(500, 42)
	assert.Equal(t, a, b)

	c := GenerateWalk(500, 43)
	assert.NotEqual(t, a, c)
}

func TestSprinkleMissing(t *testing.T) {
	data := GenerateWalk(1000, 1)
	sprinkled := SprinkleMissing(data, 0.01, 2)
	require.Len(t, sprinkled, len(data))

	missing := 0
	for _, v := range sprinkled {
		if math.IsNaN(v) {
			missing++
		}
	}
	assert.Greater(t, missing, 0)
	assert.LessOrEqual(t, missing, 10)

	// The input stays untouched.
	for _, v := range data {
		assert.False(t, math.IsNaN(v))
	}

	same := SprinkleMissing(data, 0, 2)
	assert.Equal(t, data, same)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Period = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Q = 1.5
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Operations = nil
	assert.Error(t, bad.Validate())
}

func TestRun_SmallConfig(t *testing.T) {
	cfg := &Config{
		Samples:     2000,
		Period:      10,
		Q:           0.5,
		NaNFraction: 0.01,
		Repeats:     2,
		Seed:        7,
		Operations:  []string{"rollmedian", "rollmean", "quantile", "rsi"},
	}
	require.NoError(t, cfg.Validate())

	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, cfg.Samples, r.Samples)
		assert.GreaterOrEqual(t, r.MedianMillis, 0.0)
	}
}

func TestRun_UnknownOperation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Samples = 100
	cfg.Operations = []string{"nope"}
	_, err := Run(cfg)
	assert.Error(t, err)
}
