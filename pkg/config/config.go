// Package config locates and persists the hrayfi configuration directory:
// the settings file and the session file both live there.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

const (
	appDirName       = "hrayfi"
	settingsFilename = "config.yaml"

	// EnvConfigDir overrides the config directory, mainly for tests.
	EnvConfigDir = "HRAYFI_CONFIG_DIR"
)

// Dir returns the directory holding settings and session files.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "." + appDirName
	}
	return filepath.Join(base, appDirName)
}

// ReadSettings loads settings from the config directory, falling back to
// defaults when no settings file exists yet.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(Dir(), settingsFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if settings.UI.PageSize <= 0 {
		settings.UI.PageSize = models.DefaultSettings().UI.PageSize
	}
	return settings, nil
}

// WriteSettings persists settings to the config directory.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(Dir(), settingsFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
