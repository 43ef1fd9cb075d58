// Package tui implements the interactive calculator session.
package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abacus-io/abacus/internal/config"
	"github.com/abacus-io/abacus/internal/logger"
	"github.com/abacus-io/abacus/internal/logstore"
)

// Run launches the interactive session. The calculation log is read up
// front and written back once, merged, when the session ends.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	diag, closeDiag := logger.FromSettings(settings)
	defer closeDiag()

	logPath, err := config.LogFilePath(settings)
	if err != nil {
		return err
	}

	store := logstore.New(logPath, diag)
	logErr := store.Load()
	if logErr != nil && !errors.Is(logErr, logstore.ErrLogUnavailable) {
		return logErr
	}

	model := NewModel(settings, store, logErr)
	model.diag = diag

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
