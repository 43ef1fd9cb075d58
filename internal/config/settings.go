package config

import (
	"github.com/abacus-io/abacus/internal/models"
)

// LoadSettings loads the global settings from ~/.abacus/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.abacus/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// LogFilePath resolves the calculation log path, preferring the settings
// override when set.
func LogFilePath(settings *models.Settings) (string, error) {
	if settings != nil && settings.Log.Path != "" {
		return settings.Log.Path, nil
	}
	return DefaultLogFile()
}

// DebugLogFilePath resolves the diagnostic log path, preferring the settings
// override when set.
func DebugLogFilePath(settings *models.Settings) (string, error) {
	if settings != nil && settings.Debug.Path != "" {
		return settings.Debug.Path, nil
	}
	return DefaultDebugLogFile()
}
