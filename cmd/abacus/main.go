// Package main is the entry point for the abacus CLI/TUI.
package main

import (
	"os"

	"github.com/abacus-io/abacus/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
