// Package cli implements the abacus CLI commands.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abacus-io/abacus/internal/logger"
	"github.com/abacus-io/abacus/internal/models"
)

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "An advanced mathematics calculator for the terminal",
	Long: `Abacus is an interactive terminal calculator with arithmetic,
result formatting (fraction, scientific, sexagesimal), triangle drawing
from angles, and a persistent log of every calculation.

Run without arguments to start the interactive session.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(triangleCmd)
	rootCmd.AddCommand(versionCmd)
}

// newDiagLogger builds the diagnostic logger per settings. The returned
// closer is a no-op when debug logging is disabled.
func newDiagLogger(settings *models.Settings) (zerolog.Logger, func()) {
	return logger.FromSettings(settings)
}
