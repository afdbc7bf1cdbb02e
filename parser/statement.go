package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parseStatement dispatches on the next token's kind (spec §4.2).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	pos := tok.Position

	switch tok.Kind {
	case token.Const, token.Let:
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return decl, nil
	case token.LBrace:
		return p.parseBlock()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Return:
		return p.parseReturn()
	case token.Throw:
		return p.parseThrow()
	case token.Try:
		return p.parseTryCatch()
	case token.Import:
		if p.depth != 0 {
			return nil, p.errAt(pos, "imports must be top level")
		}
		return p.parseImport()
	case token.Export:
		if p.depth != 0 {
			return nil, p.errAt(pos, "exports must be top level")
		}
		return p.parseExport()
	case token.Semicolon:
		p.lex.Consume()
		return &ast.Noop{PosVal: pos}, nil
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return expr, nil
	}
}

func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	tok, err := p.lex.Consume()
	if err != nil {
		return nil, err
	}
	isConst := tok.Kind == token.Const

	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{IsConst: isConst, Variable: v, PosVal: tok.Position}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()

	var stmts []ast.Stmt
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBrace {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: stmts, PosVal: open.Position}, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	kw, err := p.expect(token.If)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var els ast.Stmt
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Else {
		p.lex.Consume()
		els, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: els, PosVal: kw.Position}, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	kw, err := p.expect(token.While)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, PosVal: kw.Position}, nil
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	kw, err := p.expect(token.Return)
	if err != nil {
		return nil, err
	}
	var value ast.Expr
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind != token.Semicolon {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, PosVal: kw.Position}, nil
}

func (p *Parser) parseThrow() (*ast.Throw, error) {
	kw, err := p.expect(token.Throw)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Throw{Value: value, PosVal: kw.Position}, nil
}

func (p *Parser) parseTryCatch() (*ast.TryCatch, error) {
	kw, err := p.expect(token.Try)
	if err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var catchBlock *ast.Block
	var catchName string
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Catch {
		p.lex.Consume()
		if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.LParen {
			p.lex.Consume()
			name, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			catchName = name.Literal
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
		}
		catchBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	var finallyBlock *ast.Block
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Finally {
		p.lex.Consume()
		finallyBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.TryCatch{
		Try:       tryBlock,
		Catch:     catchBlock,
		CatchName: catchName,
		Finally:   finallyBlock,
		PosVal:    kw.Position,
	}, nil
}

// parseExpression is the statement-level entry into the precedence chain
// (spec §4.2): assignment is the lowest (outermost) level.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}
