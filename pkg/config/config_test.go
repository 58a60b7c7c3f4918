package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

func TestDirHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Equal(t, dir, Dir())
}

func TestReadSettingsDefaults(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	settings := models.DefaultSettings()
	settings.API.BaseURL = "http://localhost:8000"
	settings.UI.PageSize = 24
	settings.UI.Currency = "MAD "
	require.NoError(t, WriteSettings(settings))

	loaded, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestReadSettingsPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	// Only one key set; everything else keeps its default.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api:\n  base_url: http://localhost:8000\n"), 0644))

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", settings.API.BaseURL)
	assert.Equal(t, 12, settings.UI.PageSize)
	assert.Equal(t, "$", settings.UI.Currency)
}

func TestReadSettingsSanitizesPageSize(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("ui:\n  page_size: -5\n"), 0644))

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, 12, settings.UI.PageSize)
}

func TestReadSettingsBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api: [not a map"), 0644))

	_, err := ReadSettings()
	assert.Error(t, err)
}
