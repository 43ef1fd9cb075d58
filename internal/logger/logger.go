// Package logger configures the diagnostic zerolog logger. This is internal
// plumbing for debugging; the user-visible calculation log lives in logstore.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/abacus-io/abacus/internal/config"
	"github.com/abacus-io/abacus/internal/models"
)

// New returns a logger writing timestamped debug output to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Open opens (or creates) the debug log file at path for appending and
// returns a logger writing to it. The caller owns the file handle.
func Open(path string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return New(f), f, nil
}

// FromSettings builds the diagnostic logger the settings ask for. The
// returned closer is a no-op when debug logging is disabled or the debug
// file cannot be opened.
func FromSettings(settings *models.Settings) (zerolog.Logger, func()) {
	nop := func() {}
	if settings == nil || !settings.Debug.Enabled {
		return Nop(), nop
	}
	path, err := config.DebugLogFilePath(settings)
	if err != nil {
		return Nop(), nop
	}
	if err := config.EnsureGlobalDir(); err != nil {
		return Nop(), nop
	}
	log, f, err := Open(path)
	if err != nil {
		return Nop(), nop
	}
	return log, func() { _ = f.Close() }
}
