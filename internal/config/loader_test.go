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

	assert.Equal(t, New(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: custom-data
split: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom-data", cfg.DataDir)
	assert.True(t, cfg.Split)

	// Unset keys keep their defaults.
	assert.Equal(t, "MD11_", cfg.VarPrefix)
}

func TestLoadFileFromEnvVar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("module_prefix: X_\n"), 0o644))

	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "X_", cfg.ModulePrefix)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_path: from-file\n"), 0o644))

	t.Setenv("CONTROLGEN_OUTPUT_PATH", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OutputPath)
}

func TestLoadRejectsEmptyDataDir(t *testing.T) {
	t.Setenv("CONTROLGEN_DATA_DIR", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
