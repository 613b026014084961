package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Simulation.Iterations)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, int64(0), cfg.Simulation.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yaml")
	content := "simulation:\n  iterations: 5000\n  seed: 7\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Simulation.Iterations)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset workers falls back to default.
	assert.Equal(t, 4, cfg.Simulation.Workers)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation: ["), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}
