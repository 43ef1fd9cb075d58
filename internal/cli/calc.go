package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abacus-io/abacus/internal/calc"
	"github.com/abacus-io/abacus/internal/config"
	"github.com/abacus-io/abacus/internal/format"
	"github.com/abacus-io/abacus/internal/logstore"
	"github.com/abacus-io/abacus/internal/models"
)

var (
	calcFraction    bool
	calcScientific  bool
	calcSexagesimal bool
	calcNoLog       bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <add|sub|mul|div> <a> <b>",
	Short: "Perform a single calculation",
	Long: `Perform one arithmetic operation and append it to the calculation log.

The result prints in decimal by default; --fraction, --scientific, and
--sexagesimal select other renderings. --no-log skips the log append.`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&calcFraction, "fraction", false, "render the result as a reduced fraction")
	calcCmd.Flags().BoolVar(&calcScientific, "scientific", false, "render the result in scientific notation")
	calcCmd.Flags().BoolVar(&calcSexagesimal, "sexagesimal", false, "render the result as degrees/minutes/seconds")
	calcCmd.Flags().BoolVar(&calcNoLog, "no-log", false, "do not record the calculation in the log")
}

// opNames maps the calc subcommand argument to an operation.
var opNames = map[string]calc.OpKind{
	"add": calc.OpAdd,
	"sub": calc.OpSubtract,
	"mul": calc.OpMultiply,
	"div": calc.OpDivide,
}

func runCalc(cmd *cobra.Command, args []string) error {
	op, ok := opNames[args[0]]
	if !ok {
		return fmt.Errorf("unknown operation %q (expected add, sub, mul, or div)", args[0])
	}

	a, err := parseOperand(args[1])
	if err != nil {
		return err
	}
	b, err := parseOperand(args[2])
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	diag, closeDiag := newDiagLogger(settings)
	defer closeDiag()

	result, err := calc.Apply(op, a, b)
	if err != nil {
		return err
	}

	resultText := format.Decimal(result)
	expr := fmt.Sprintf("%s %s %s = %s",
		format.Decimal(a), op.Symbol(), format.Decimal(b), resultText)
	fmt.Println(styleResult.Render(expr))

	switch {
	case calcFraction:
		fmt.Printf("    = %s\n", format.Fraction(result, settings.Format.MaxDenominator))
	case calcScientific:
		fmt.Printf("    = %s\n", format.Scientific(result))
	case calcSexagesimal:
		fmt.Printf("    = %s\n", format.SexagesimalString(result))
	}

	if calcNoLog {
		return nil
	}

	logPath, err := config.LogFilePath(settings)
	if err != nil {
		return err
	}
	store := logstore.New(logPath, diag)
	if err := store.Load(); err != nil {
		if !errors.Is(err, logstore.ErrLogUnavailable) {
			return err
		}
		// Unreadable log: carry on with a fresh one rather than lose the result.
		fmt.Println(styleWarning.Render("calculation log unreadable, starting a fresh log"))
		store.Reset()
	}
	entry := models.NewLogEntry(format.Decimal(a), format.Decimal(b), op, resultText, time.Now())
	if err := store.Append(entry); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	fmt.Println(styleLabel.Render(fmt.Sprintf("logged as calculation #%d", entry.Seq)))
	return nil
}

// parseOperand rejects the interactive cancel token: there is nothing to
// cancel in one-shot mode.
func parseOperand(text string) (float64, error) {
	v, cancelled, err := calc.ParseNumber(text)
	if err != nil || cancelled {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	return v, nil
}
