package parser

import (
	"errors"
	"fmt"
)

// ParserError is a fatal parse-time failure carrying the position, line,
// and column it occurred at (spec §6/§7). Parse-time errors are never
// retried.
type ParserError struct {
	Pos    int
	Line   int
	Column int
	Msg    string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("Error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// errorf records a ParserError at pos, joining it onto p.errors per the
// teacher's errors.Join accumulation style (T14Raptor-go-fAST/parser/error.go)
// and returns it so callers can short-circuit immediately (this parser
// does not attempt error recovery, per spec §7).
func (p *Parser) errorf(pos int, format string, args ...any) error {
	line, col := p.lex.GetLineAndColumn(pos)
	err := &ParserError{Pos: pos, Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
	p.errors = errors.Join(p.errors, err)
	return err
}
