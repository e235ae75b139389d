package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"solum/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "solum",
	Short: "Solum lexical front-end",
	Long:  `Solum tokenizes Solidity-family source files and reports lexical diagnostics`,
}

func main() {
	// Version for the automatic --version flag.
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
