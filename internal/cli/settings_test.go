package cli

import (
	"testing"

	"github.com/abacus-io/abacus/internal/models"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(*models.Settings) bool
	}{
		{
			name:  "log path",
			key:   "log.path",
			value: "/tmp/calc.log",
			check: func(s *models.Settings) bool { return s.Log.Path == "/tmp/calc.log" },
		},
		{
			name:  "max denominator",
			key:   "format.max_denominator",
			value: "64",
			check: func(s *models.Settings) bool { return s.Format.MaxDenominator == 64 },
		},
		{
			name:    "max denominator rejects zero",
			key:     "format.max_denominator",
			value:   "0",
			wantErr: true,
		},
		{
			name:  "debug enabled",
			key:   "debug.enabled",
			value: "true",
			check: func(s *models.Settings) bool { return s.Debug.Enabled },
		},
		{
			name:    "debug enabled rejects garbage",
			key:     "debug.enabled",
			value:   "maybe",
			wantErr: true,
		},
		{
			name:  "theme",
			key:   "appearance.theme",
			value: "dark",
			check: func(s *models.Settings) bool { return s.Appearance.Theme == "dark" },
		},
		{
			name:    "theme rejects unknown",
			key:     "appearance.theme",
			value:   "solarized",
			wantErr: true,
		},
		{
			name:    "unknown key",
			key:     "nope",
			value:   "1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.NewSettings()
			err := applySetting(settings, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("applySetting(%q, %q) expected error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("applySetting(%q, %q) error: %v", tt.key, tt.value, err)
			}
			if !tt.check(settings) {
				t.Errorf("applySetting(%q, %q) did not take effect", tt.key, tt.value)
			}
		})
	}
}
