package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, "count: 5\noutput: json\nkeep_going: true\ndebug: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{Count: 5, Output: "json", KeepGoing: true, Debug: true}, cfg)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "keep_going: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultCount, cfg.Count)
	assert.Equal(t, "table", cfg.Output)
	assert.True(t, cfg.KeepGoing)
}

func TestLoad_EmptyConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "count: [1, 2\n"))
	assert.Error(t, err)
}

func TestLoad_NegativeCount(t *testing.T) {
	_, err := Load(writeConfig(t, "count: -3\n"))
	assert.ErrorContains(t, err, "must not be negative")
}
