package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	body := `samples: 5000
period: 50
operations: [rollmedian, rollmax]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Samples)
	assert.Equal(t, 50, cfg.Period)
	assert.Equal(t, []string{"rollmedian", "rollmax"}, cfg.Operations)

	// Untouched fields keep their defaults.
	assert.Equal(t, 0.5, cfg.Q)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: [not a number"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
