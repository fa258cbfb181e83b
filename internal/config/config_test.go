package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	assert.Equal(t, filepath.Join(tempDir, "simidle"), GetSimIdleDir())
	assert.Equal(t, filepath.Join(tempDir, "simidle", "state"), GetStateDir())
	assert.Equal(t, filepath.Join(tempDir, "simidle", "logs"), GetLogsDir())

	require.NoError(t, EnsureDirs())
	for _, dir := range []string{GetSimIdleDir(), GetStateDir(), GetLogsDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveLoadSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings := DefaultSettings()
	settings.General.MaxImportElements = 3
	settings.Share.FetchTimeout = Duration(2 * time.Second)
	settings.Server.Port = 9090
	require.NoError(t, SaveSettings(settings))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.General.MaxImportElements)
	assert.Equal(t, Duration(2*time.Second), loaded.Share.FetchTimeout)
	assert.Equal(t, 9090, loaded.Server.Port)
	assert.Equal(t, DefaultSettings().Share.PostBaseURL, loaded.Share.PostBaseURL)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, EnsureDirs())
	require.NoError(t, os.WriteFile(GetSettingsPath(), []byte(`{"server":{"port":8181}}`), 0644))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 8181, loaded.Server.Port)
	assert.Equal(t, 5, loaded.General.MaxImportElements)
	assert.Equal(t, Duration(10*time.Second), loaded.Share.FetchTimeout)
}

func TestLoadSettings_CorruptFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, EnsureDirs())
	require.NoError(t, os.WriteFile(GetSettingsPath(), []byte("{not json"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}
