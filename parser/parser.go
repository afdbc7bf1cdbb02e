// Package parser implements the recursive-descent, Pratt-style parser
// described in spec §4.2: a fixed precedence chain with backtracking at
// the primary level to disambiguate parenthesized expressions from
// arrow-function parameter lists.
//
// Grounded on T14Raptor-go-fAST/parser/parser.go (the checkpoint/restore
// pattern, directly reused for arrow-function backtracking) and
// parser/expression.go / statement.go for dispatch-by-token-kind parsing.
package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/lexer"
	"github.com/alastairzotos/eco-parser/token"
)

// Parser consumes a lexer.Lexer and emits an *ast.Program.
type Parser struct {
	lex    *lexer.Lexer
	errors error

	// depth is the current block nesting depth; imports and exports are
	// only legal when depth == 0 (spec §4.2).
	depth int
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// ParseProgram parses a whole module: a flat sequence of top-level
// statements.
func ParseProgram(src string) (*ast.Program, error) {
	p := New(src)
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if p.errors != nil {
		return nil, p.errors
	}
	return prog, nil
}

// ParseExpression parses a single expression from src — the parser's
// expression entry point used by the interpreter to re-parse `#{…}`
// string-literal interpolations on demand (spec §4.3). Template-string
// `${…}` parts are parsed up front by parseTemplateString instead.
func ParseExpression(src string) (ast.Expr, error) {
	p := New(src)
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if p.errors != nil {
		return nil, p.errors
	}
	return expr, nil
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	var stmts []ast.Stmt
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Eof {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Program{Statements: stmts}, nil
}

// checkpoint captures enough parser state to fully rewind: the lexer
// scan position and the accumulated error set (so a failed speculative
// parse doesn't leave stale errors behind, mirroring the teacher's
// parserState.mark/restore).
type checkpoint struct {
	pos    int
	errors error
}

func (p *Parser) mark() checkpoint {
	return checkpoint{pos: p.lex.GetPosition(), errors: p.errors}
}

func (p *Parser) restore(c checkpoint) {
	p.lex.Revert(c.pos)
	p.errors = c.errors
}

func (p *Parser) peekKind() (token.Kind, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return token.Illegal, err
	}
	return tok.Kind, nil
}

func (p *Parser) expect(kind token.Kind) (*token.Token, error) {
	tok, err := p.lex.Consume(kind)
	if err != nil {
		pos := p.lex.GetPosition()
		return nil, p.errorf(pos, "expected %s: %v", kind, err)
	}
	return tok, nil
}

func (p *Parser) errAt(pos int, format string, args ...any) error {
	return p.errorf(pos, format, args...)
}
