package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Bind)
	assert.Equal(t, "es", cfg.AI.Language)
	assert.True(t, cfg.Platform.Simulated)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NotEmpty(t, path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
bind = "0.0.0.0:9000"

[ai]
language = "en"

[logging]
level = "debug"
`), 0o644))

	cfg, _, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Bind)
	assert.Equal(t, "en", cfg.AI.Language)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults
	assert.Equal(t, "llava:13b", cfg.AI.VisionModel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "verbose"
`), 0o644))

	_, _, _, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingPlatformToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[platform]
simulated = false
`), 0o644))

	_, _, _, err := Load(path)
	assert.Error(t, err)
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, CreateSample(path))

	cfg, _, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)

	// The embedded sample must agree with the built-in defaults
	defaults := Default()
	assert.Equal(t, defaults.Server.Bind, cfg.Server.Bind)
	assert.Equal(t, defaults.AI.ClassifierModel, cfg.AI.ClassifierModel)
	assert.Equal(t, defaults.AI.Language, cfg.AI.Language)
	assert.Equal(t, defaults.Platform.Simulated, cfg.Platform.Simulated)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), got)

	abs, err := ExpandPath("relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}
