package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abacus-io/abacus/internal/config"
	"github.com/abacus-io/abacus/internal/logstore"
)

var logFollow bool

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect or manage the calculation log",
}

var logViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the calculation log",
	Long: `Print every recorded calculation and the running total.

With --follow, keep watching the log file and print entries appended by
other abacus processes until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runLogView,
}

var logResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the calculation log",
	Args:  cobra.NoArgs,
	RunE:  runLogReset,
}

var logPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the calculation log path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLogPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	logViewCmd.Flags().BoolVarP(&logFollow, "follow", "f", false, "keep watching for new entries")
	logCmd.AddCommand(logPathCmd)
	logCmd.AddCommand(logResetCmd)
	logCmd.AddCommand(logViewCmd)
}

func resolveLogPath() (string, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	return config.LogFilePath(settings)
}

func runLogView(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	diag, closeDiag := newDiagLogger(settings)
	defer closeDiag()

	path, err := config.LogFilePath(settings)
	if err != nil {
		return err
	}

	store := logstore.New(path, diag)
	if err := store.Load(); err != nil {
		if errors.Is(err, logstore.ErrLogUnavailable) {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		return err
	}

	printed := printEntries(store, 0)

	if !logFollow {
		return nil
	}

	watcher, err := logstore.WatchFile(path)
	if err != nil {
		return fmt.Errorf("failed to watch log: %w", err)
	}
	defer watcher.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for {
		select {
		case <-interrupt:
			return nil
		case <-watcher.Changes():
			if err := store.Load(); err != nil {
				continue
			}
			printed = printEntries(store, printed)
		}
	}
}

// printEntries prints entries with sequence numbers above already, returning
// the new high-water mark.
func printEntries(store *logstore.Store, already int) int {
	for _, entry := range store.Entries() {
		if entry.Seq <= already {
			continue
		}
		fmt.Printf("%s %s\n",
			styleCount.Render(fmt.Sprintf("%4d", entry.Seq)),
			entry.Raw)
	}
	if already == 0 {
		fmt.Println(styleLabel.Render(fmt.Sprintf("total calculations: %d", store.TotalCount())))
	}
	return store.TotalCount()
}

func runLogReset(cmd *cobra.Command, args []string) error {
	path, err := resolveLogPath()
	if err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("This clears %s and resets the count to zero. Are you sure? [y/n]: ", path)) {
		fmt.Println(styleLabel.Render("log left untouched"))
		return nil
	}

	settings, _ := config.LoadSettings()
	diag, closeDiag := newDiagLogger(settings)
	defer closeDiag()

	store := logstore.New(path, diag)
	if err := store.Load(); err != nil && !errors.Is(err, logstore.ErrLogUnavailable) {
		return err
	}
	store.Reset()
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	fmt.Println(styleSuccess.Render("calculation log cleared"))
	return nil
}

// confirm asks a yes/no question, re-prompting until the answer is one of
// y/n/yes/no (case-insensitive).
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Println(styleWarning.Render("Invalid input!"))
	}
}
