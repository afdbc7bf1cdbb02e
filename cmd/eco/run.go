package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alastairzotos/eco-parser/interpreter"
	"github.com/alastairzotos/eco-parser/parser"
	"github.com/alastairzotos/eco-parser/runtime"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "parse and interpret a file, printing its final value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveEntryFile(args)
			if err != nil {
				return err
			}
			return runFile(path)
		},
	}
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := parser.ParseProgram(string(src))
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	rt := runtime.New(nil)
	result, err := interpreter.Run(prog, rt)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	fmt.Println(result.String())
	return nil
}
