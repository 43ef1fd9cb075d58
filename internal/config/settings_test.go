package config

import (
	"path/filepath"
	"testing"

	"github.com/abacus-io/abacus/internal/models"
)

func TestLoadYAMLOrDefault(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		s, err := LoadYAMLOrDefault(path, models.NewSettings)
		if err != nil {
			t.Fatalf("LoadYAMLOrDefault error: %v", err)
		}
		if s.Format.MaxDenominator != 1000 {
			t.Errorf("MaxDenominator = %d, want 1000", s.Format.MaxDenominator)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		original := models.NewSettings()
		original.Log.Path = "/tmp/custom.log"
		original.Format.MaxDenominator = 64
		original.Debug.Enabled = true

		if err := SaveYAML(path, original); err != nil {
			t.Fatalf("SaveYAML error: %v", err)
		}

		loaded, err := LoadYAMLOrDefault(path, models.NewSettings)
		if err != nil {
			t.Fatalf("LoadYAMLOrDefault error: %v", err)
		}
		if loaded.Log.Path != original.Log.Path {
			t.Errorf("Log.Path = %q, want %q", loaded.Log.Path, original.Log.Path)
		}
		if loaded.Format.MaxDenominator != 64 {
			t.Errorf("MaxDenominator = %d, want 64", loaded.Format.MaxDenominator)
		}
		if !loaded.Debug.Enabled {
			t.Error("Debug.Enabled = false, want true")
		}
	})
}

func TestLogFilePath(t *testing.T) {
	s := models.NewSettings()
	s.Log.Path = "/var/tmp/abacus.log"
	path, err := LogFilePath(s)
	if err != nil {
		t.Fatalf("LogFilePath error: %v", err)
	}
	if path != "/var/tmp/abacus.log" {
		t.Errorf("LogFilePath = %q, want settings override", path)
	}
}
