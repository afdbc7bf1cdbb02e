package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alastairzotos/eco-parser/bundler"
	"github.com/alastairzotos/eco-parser/eco/elog"
)

func newBundleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "bundle [entry]",
		Short: "bundle a module graph into a single wrapped script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := resolveEntryFile(args)
			if err != nil {
				return err
			}
			return bundleFile(entry, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if omitted)")
	return cmd
}

func bundleFile(entry, out string) error {
	log := elog.Nop()
	if verbose || cfg.Verbose {
		log = elog.New(os.Stderr, true)
	}

	resolver := bundler.NewFsResolver(afero.NewOsFs())
	b := bundler.New(resolver, log)

	// Config.RootDir becomes the resolver's base directory when set
	// (non-empty even with no eco.yaml, since config.Default() falls
	// back to the working directory); entry is re-expressed relative
	// to it so import specifiers resolve against the project root
	// rather than just the entry file's own directory.
	entryDir := cfg.RootDir
	if entryDir == "" {
		var err error
		entryDir, err = filepath.Abs(filepath.Dir(entry))
		if err != nil {
			return err
		}
	}
	entryName, err := filepath.Rel(entryDir, entry)
	if err != nil {
		entryName = filepath.Base(entry)
	}

	script, err := b.Bundle(entryDir, entryName)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	if out == "" {
		_, err := os.Stdout.WriteString(script + "\n")
		return err
	}
	return os.WriteFile(out, []byte(script+"\n"), 0o644)
}
