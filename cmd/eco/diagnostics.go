package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/alastairzotos/eco-parser/interpreter"
)

// printDiagnostic renders a ParserError/RuntimeError with a colorized
// prefix, matching the terminal ergonomics sambeau-basil's CLI
// dependencies (peterh/liner) go for in its own REPL-ish tooling.
//
// A parse failure is the error that stopped the parse (usually a
// *parser.ParserError), or the errors.Join of recorded ParserErrors when
// parsing finished with some left over (parser/error.go); a ParserError's
// own Error() already carries its line/column, so the message is printed
// as is. A RuntimeError carries only a byte offset, so it gets its own
// offset prefix.
func printDiagnostic(err error) {
	red := color.New(color.FgRed, color.Bold)

	var rerr *interpreter.RuntimeError
	if errors.As(err, &rerr) {
		red.Fprintf(os.Stderr, "runtime error")
		fmt.Fprintf(os.Stderr, " at offset %d: %s\n", rerr.Pos, rerr.Msg)
		return
	}

	red.Fprintf(os.Stderr, "error")
	fmt.Fprintf(os.Stderr, ":\n%s\n", err.Error())
}
