package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abacus-io/abacus/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive calculator session",
	Long: `Start the full-screen interactive calculator.

The session presents the main menu (arithmetic, triangle drawing, log
management) and records every completed calculation in the log. On exit
the log is merged with previous sessions and saved.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive session needs a terminal; use 'abacus calc' for scripted use")
	}
	return tui.Run()
}
