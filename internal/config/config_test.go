package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	cs := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.Server.BaseURL = "http://10.0.0.2:8787"
	cfg.Server.Token = "secret"
	cfg.UISettings.Theme = "light"
	cfg.UISettings.SidebarCollapsed = true
	cfg.Profiles["work"] = []string{"s1", "s2"}

	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Server, loaded.Server)
	assert.Equal(t, cfg.UISettings, loaded.UISettings)
	assert.Equal(t, []string{"s1", "s2"}, loaded.Profiles["work"])
}

func TestLoadFromPathMissingFile(t *testing.T) {
	t.Parallel()

	cs := &configService{}
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	cs := &configService{filePath: filepath.Join(t.TempDir(), "config.toml")}

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, defaultServerURL, cfg.Server.BaseURL)
	assert.Equal(t, "dark", cfg.UISettings.Theme)
	assert.True(t, cfg.UISettings.ConfirmBulkDelete)
	assert.NotNil(t, cfg.Profiles)
}

func TestSparseFileGetsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	sparse := "[server]\nbase_url = \"http://10.1.1.1:9999\"\n"
	require.NoError(t, os.WriteFile(path, []byte(sparse), 0644))

	cs := &configService{}
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.1.1.1:9999", cfg.Server.BaseURL)
	assert.Equal(t, defaultTimeoutSeconds, cfg.Server.TimeoutSeconds)
	assert.Equal(t, "dark", cfg.UISettings.Theme)
	assert.NotNil(t, cfg.Profiles)
}

func TestInvalidTOMLIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("server = {{"), 0644))

	cs := &configService{}
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveToPathCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deep", "nested", "config.toml")
	cs := &configService{}

	require.NoError(t, cs.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
