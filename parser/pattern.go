package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parseVariable parses a binding target — a bare identifier or a
// destructuring pattern — followed by an optional `= default_expression`
// initializer/fallback (spec §4.2, §3's Variable sub-structure). Used by
// var-decls and function parameters; catch bindings do not use it
// (parseTryCatch reads a single identifier).
func (p *Parser) parseVariable() (*ast.Variable, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}

	v := &ast.Variable{PosVal: tok.Position}

	switch tok.Kind {
	case token.LBracket:
		p.lex.Consume()
		values, err := p.parseArrayDestructure()
		if err != nil {
			return nil, err
		}
		v.VariableType = ast.DestructureArray
		v.Values = values
	case token.LBrace:
		p.lex.Consume()
		values, err := p.parseObjectDestructure()
		if err != nil {
			return nil, err
		}
		v.VariableType = ast.DestructureObject
		v.Values = values
	case token.Identifier:
		p.lex.Consume()
		v.VariableType = ast.Identifier
		v.Name = tok.Literal
	default:
		return nil, p.errAt(tok.Position, "expected a binding target, got %s", tok.Kind)
	}

	if op, _ := p.lex.Peek(); op != nil && op.Kind == token.Operator && op.Literal == "=" {
		p.lex.Consume()
		def, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		v.Default = def
	}
	return v, nil
}

func (p *Parser) parseArrayDestructure() ([]ast.DestructuredValue, error) {
	var values []ast.DestructuredValue
	sawRest := false
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBracket {
			break
		}
		if sawRest {
			return nil, p.errAt(tok.Position, "cannot destructure more values after rest")
		}
		if tok.Kind == token.Comma {
			// a hole: `[a, , b]`
			values = append(values, ast.DestructuredValue{Hole: true})
			p.lex.Consume()
			continue
		}
		dv, isRest, err := p.parseDestructuredValue()
		if err != nil {
			return nil, err
		}
		values = append(values, dv)
		if isRest {
			sawRest = true
		}
		if next, _ := p.lex.Peek(); next != nil && next.Kind == token.Comma {
			p.lex.Consume()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return values, nil
}

func (p *Parser) parseObjectDestructure() ([]ast.DestructuredValue, error) {
	var values []ast.DestructuredValue
	sawRest := false
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBrace {
			break
		}
		if sawRest {
			return nil, p.errAt(tok.Position, "cannot destructure more values after rest")
		}
		dv, isRest, err := p.parseDestructuredValue()
		if err != nil {
			return nil, err
		}
		values = append(values, dv)
		if isRest {
			sawRest = true
		}
		if next, _ := p.lex.Peek(); next != nil && next.Kind == token.Comma {
			p.lex.Consume()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return values, nil
}

// parseDestructuredValue parses one non-hole element of a destructuring
// pattern: an optional `...` rest prefix, the bound name, and an optional
// `= default`. A rest element may carry no default and must be last (the
// caller enforces the "must be last" rule).
func (p *Parser) parseDestructuredValue() (ast.DestructuredValue, bool, error) {
	isRest := false
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Ellipsis {
		p.lex.Consume()
		isRest = true
	}
	name, err := p.expect(token.Identifier)
	if err != nil {
		return ast.DestructuredValue{}, false, err
	}
	dv := ast.DestructuredValue{Name: name.Literal, IsRest: isRest}
	if !isRest {
		if op, _ := p.lex.Peek(); op != nil && op.Kind == token.Operator && op.Literal == "=" {
			p.lex.Consume()
			def, err := p.parseAssignment()
			if err != nil {
				return ast.DestructuredValue{}, false, err
			}
			dv.Default = def
		}
	}
	return dv, isRest, nil
}

// parseArrowFunction parses an arrow-function parameter list (a single
// bare identifier, or a parenthesized list of Variable forms) followed by
// `=>` and a block or expression body (spec §4.2).
func (p *Parser) parseArrowFunction() (ast.Expr, error) {
	startTok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	start := startTok.Position

	var params []*ast.Variable
	if startTok.Kind == token.Identifier {
		p.lex.Consume()
		params = append(params, &ast.Variable{VariableType: ast.Identifier, Name: startTok.Literal, PosVal: startTok.Position})
	} else {
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		for {
			tok, _ := p.lex.Peek()
			if tok != nil && tok.Kind == token.RParen {
				break
			}
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			params = append(params, v)
			if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Comma {
				p.lex.Consume()
				continue
			}
			break
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Arrow); err != nil {
		return nil, err
	}

	var body ast.Stmt
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.LBrace {
		body, err = p.parseBlock()
	} else {
		body, err = p.parseAssignment()
	}
	if err != nil {
		return nil, err
	}

	return &ast.Function{Parameters: params, Body: body, IsArrow: true, PosVal: start}, nil
}
