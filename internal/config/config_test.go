package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "standard", cfg.Trainer.Mode)
	assert.Equal(t, 10, cfg.Trainer.Rounds)
	assert.Equal(t, 13, cfg.Trainer.DisplaySize)
	assert.Empty(t, cfg.Trainer.Pattern)
	assert.Equal(t, 50, cfg.Generator.MaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Store.Path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenpai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
trainer:
  mode: drill
  rounds: 5
  displaySize: 7
  pattern: edge-wait
generator:
  seed: 99
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "drill", cfg.Trainer.Mode)
	assert.Equal(t, 5, cfg.Trainer.Rounds)
	assert.Equal(t, 7, cfg.Trainer.DisplaySize)
	assert.Equal(t, "edge-wait", cfg.Trainer.Pattern)
	assert.Equal(t, int64(99), cfg.Generator.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Keys the file omits keep their defaults.
	assert.Equal(t, 50, cfg.Generator.MaxAttempts)
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TENPAI_TRAINER_ROUNDS", "25")
	t.Setenv("TENPAI_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Trainer.Rounds)
	assert.Equal(t, "warn", cfg.Log.Level)
}
