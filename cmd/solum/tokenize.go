package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"solum/internal/diag"
	"solum/internal/driver"
	"solum/internal/project"
	"solum/internal/source"
	"solum/internal/tokfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.sol|directory>",
	Short: "Tokenize source files",
	Long:  `Tokenize breaks source files into raw tokens and prints them with spans`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = all CPUs)")
	tokenizeCmd.Flags().Bool("cache", false, "use the on-disk token cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", target, err)
	}

	searchDir := target
	if !info.IsDir() {
		searchDir = filepath.Dir(target)
	}
	opts, err := tokenizeOptions(cmd, searchDir, maxDiagnostics)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return tokenizeDir(cmd, target, format, opts)
	}
	return tokenizeFile(cmd, target, format, opts)
}

// tokenizeOptions merges manifest settings (if a solum.toml is found above
// the target) with command-line flags. Flags win.
func tokenizeOptions(cmd *cobra.Command, target string, maxDiagnostics int) (driver.Options, error) {
	opts := driver.Options{MaxDiagnostics: maxDiagnostics}

	manifest, err := project.Find(target)
	if err != nil {
		return opts, fmt.Errorf("failed to read manifest: %w", err)
	}
	useCache := false
	if manifest != nil {
		opts.Jobs = manifest.Lexer.Jobs
		opts.Extension = manifest.Lexer.Extension
		useCache = manifest.Lexer.Cache
	}

	if cmd.Flags().Changed("jobs") {
		opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	}
	if cmd.Flags().Changed("cache") {
		useCache, _ = cmd.Flags().GetBool("cache")
	}

	if useCache {
		cache, err := driver.OpenDiskCache("solum")
		if err != nil {
			return opts, fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func tokenizeFile(cmd *cobra.Command, path, format string, opts driver.Options) error {
	result, err := driver.Tokenize(path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)
	return printTokens(format, result.Tokens, result.FileSet)
}

func tokenizeDir(cmd *cobra.Command, dir, format string, opts driver.Options) error {
	fileSet, _, results, err := driver.TokenizeDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	hadErrors := false
	for _, r := range results {
		printDiagnostics(cmd, r.Bag, fileSet)
		if r.Bag.HasErrors() {
			hadErrors = true
			continue
		}
		fmt.Fprintf(os.Stdout, "== %s\n", r.Path)
		if err := printTokens(format, r.Tokens, fileSet); err != nil {
			return err
		}
	}
	if hadErrors {
		return fmt.Errorf("some files failed to tokenize")
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if !bag.HasErrors() && !bag.HasWarnings() {
		return
	}
	bag.Sort()
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	_ = tokfmt.FormatDiagnostics(os.Stderr, bag, fs, tokfmt.PrettyOpts{
		Color:    useColor,
		ShowCode: true,
	})
}

func printTokens(format string, tokens []driver.Token, fs *source.FileSet) error {
	switch format {
	case "pretty":
		return tokfmt.FormatTokensPretty(os.Stdout, tokens, fs)
	case "json":
		return tokfmt.FormatTokensJSON(os.Stdout, tokens, fs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
