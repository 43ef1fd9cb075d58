package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abacus-io/abacus/internal/calc"
	"github.com/abacus-io/abacus/internal/triangle"
)

var triangleWidth int

var triangleCmd = &cobra.Command{
	Use:   "triangle <angle1> <angle2> <angle3>",
	Short: "Draw a triangle from three angles",
	Long: `Draw a triangle on a relative scale from its three angles.

The angles must sum to 180˚, all be positive, and each be at least 5˚ so
the drawing stays legible. Side lengths are reported relative to the base.`,
	Args: cobra.ExactArgs(3),
	RunE: runTriangle,
}

func init() {
	triangleCmd.Flags().IntVarP(&triangleWidth, "width", "w", 0, "canvas width in columns (default: terminal width)")
}

func runTriangle(cmd *cobra.Command, args []string) error {
	var angles [3]float64
	for i, arg := range args {
		v, cancelled, err := calc.ParseNumber(arg)
		if err != nil || cancelled {
			return fmt.Errorf("invalid angle %q", arg)
		}
		angles[i] = v
	}

	tri, err := triangle.Solve(angles[0], angles[1], angles[2])
	if err != nil {
		return err
	}

	width := triangleWidth
	if width <= 0 {
		width = 60
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w - 2
		}
	}

	fmt.Println(tri.Render(width))
	return nil
}
