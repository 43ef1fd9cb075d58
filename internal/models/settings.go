// Package models contains shared data structures used across the application.
package models

// LogConfig holds calculation log settings.
type LogConfig struct {
	Path string `yaml:"path"` // empty = ~/.abacus/calculations.log
}

// FormatConfig holds result formatting settings.
type FormatConfig struct {
	MaxDenominator int `yaml:"max_denominator"` // fraction approximation bound
}

// DebugConfig holds diagnostic logging settings.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty = ~/.abacus/debug.log
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

// Settings represents global application settings.
// This corresponds to ~/.abacus/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Log        LogConfig        `yaml:"log"`
	Format     FormatConfig     `yaml:"format"`
	Debug      DebugConfig      `yaml:"debug"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Log: LogConfig{
			Path: "", // Empty means ~/.abacus/calculations.log
		},
		Format: FormatConfig{
			MaxDenominator: 1000,
		},
		Debug: DebugConfig{
			Enabled: false,
			Path:    "",
		},
		Appearance: AppearanceConfig{
			Theme: "system",
		},
	}
}
