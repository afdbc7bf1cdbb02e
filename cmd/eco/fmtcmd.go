package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alastairzotos/eco-parser/bundler"
	"github.com/alastairzotos/eco-parser/parser"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "parse a file and print its canonical source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveEntryFile(args)
			if err != nil {
				return err
			}
			return fmtFile(path)
		},
	}
}

func fmtFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := parser.ParseProgram(string(src))
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	for _, stmt := range prog.Statements {
		fmt.Println(bundler.StmtSource(stmt))
	}
	return nil
}
