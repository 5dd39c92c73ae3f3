package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	spec, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), spec)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	spec, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), spec)
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: 2000\nmax_lives: 5\n"), 0o644))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, spec.Gravity)
	assert.Equal(t, 5, spec.MaxLives)
	// untouched values keep their defaults
	assert.Equal(t, Default().PlayerSpeed, spec.PlayerSpeed)
	assert.Equal(t, Default().InvincibleFor, spec.InvincibleFor)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: [not a number\n"), 0o644))

	spec, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), spec, "a bad file falls back to the defaults")
}

func TestApplyFloorsRejectsNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: -5\nmax_lives: 0\ntime_limit: -1\n"), 0o644))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Gravity, spec.Gravity)
	assert.Equal(t, Default().MaxLives, spec.MaxLives)
	assert.Equal(t, Default().TimeLimit, spec.TimeLimit)
}
