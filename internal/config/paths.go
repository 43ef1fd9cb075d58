// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global abacus directory.
	GlobalDirName = ".abacus"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "calculations.log"
	DebugLogFileName = "debug.log"
)

// GlobalDir returns the path to the global abacus directory (~/.abacus/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// DefaultLogFile returns the default path to the calculation log.
func DefaultLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// DefaultDebugLogFile returns the default path to the diagnostic log.
func DefaultDebugLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DebugLogFileName), nil
}

// EnsureGlobalDir creates the global abacus directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
