package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/abacus-io/abacus/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styleBrand.Render(fmt.Sprintf("Abacus %s", buildinfo.Version)))
		fmt.Printf("  Commit: %s\n", buildinfo.CommitHash)
		fmt.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  Go: %s\n", runtime.Version())
	},
}
