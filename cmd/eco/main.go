// Command eco is the command-line shell around the lexer/parser/
// interpreter/bundler core (SPEC_FULL.md [DOMAIN] "The CLI / I/O
// shell"): `eco run`, `eco bundle`, and `eco fmt`, built on cobra/pflag
// per davidkellis-able's multi-subcommand cmd/able layout.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alastairzotos/eco-parser/config"
)

var (
	verbose bool
	cfg     config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eco",
		Short: "eco is the toolchain for the eco scripting language",
		// Loaded once per invocation so every subcommand sees the same
		// RootDir/EntryFile/Verbose regardless of argument order.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load("eco.yaml")
			if err != nil {
				return err
			}
			cfg = loaded
			if verbose {
				cfg.Verbose = true
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRunCmd())
	root.AddCommand(newBundleCmd())
	root.AddCommand(newFmtCmd())
	return root
}

// resolveEntryFile returns the file named on the command line, or
// falls back to Config.EntryFile (resolved against Config.RootDir)
// when the user gave none.
func resolveEntryFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.EntryFile == "" {
		return "", fmt.Errorf("no file given and no entryFile configured in eco.yaml")
	}
	return filepath.Join(cfg.RootDir, cfg.EntryFile), nil
}
