package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parsePrimaryOrArrow implements the spec §4.2 arrow-function backtrack:
// after parsing a primary, if the next token is `=>`, rewind to the
// primary's start and reparse as an arrow function. If the primary
// dispatcher itself fails, rewind and attempt an arrow-function parse.
func (p *Parser) parsePrimaryOrArrow() (ast.Expr, error) {
	start := p.mark()
	expr, err := p.parsePrimary()
	if err == nil {
		if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Arrow {
			p.restore(start)
			return p.parseArrowFunction()
		}
		return expr, nil
	}
	p.restore(start)
	return p.parseArrowFunction()
}

// parsePrimary implements the primary dispatch table of spec §4.2.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.True:
		p.lex.Consume()
		return &ast.Literal{Value: true, PosVal: tok.Position}, nil
	case token.False:
		p.lex.Consume()
		return &ast.Literal{Value: false, PosVal: tok.Position}, nil
	case token.Null:
		p.lex.Consume()
		return &ast.Literal{Value: nil, PosVal: tok.Position}, nil
	case token.Undefined:
		p.lex.Consume()
		return &ast.Literal{Value: ast.Undefined{}, PosVal: tok.Position}, nil
	case token.Number:
		p.lex.Consume()
		return &ast.Literal{Value: tok.Number, PosVal: tok.Position}, nil
	case token.String:
		p.lex.Consume()
		return &ast.Literal{Value: tok.Literal, PosVal: tok.Position}, nil
	case token.LParen:
		return p.parseParens()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.Lt:
		return p.parseHTML()
	case token.Backtick:
		return p.parseTemplateString()
	case token.New:
		return p.parseNew()
	case token.Typeof:
		return p.parseTypeof()
	case token.Identifier:
		p.lex.Consume()
		return &ast.Load{Name: tok.Literal, PosVal: tok.Position}, nil
	default:
		return nil, p.errAt(tok.Position, "unexpected token %s", tok.Kind)
	}
}

func (p *Parser) parseParens() (ast.Expr, error) {
	open, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Parens{Inner: inner, PosVal: open.Position}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	open, err := p.expect(token.LBracket)
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	for {
		tok, _ := p.lex.Peek()
		if tok != nil && tok.Kind == token.RBracket {
			break
		}
		elem, err := p.parseArgOrElement()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Comma {
			p.lex.Consume()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.Array{Elements: elems, PosVal: open.Position}, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expr, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	var fields []ast.ObjectField
	for {
		tok, _ := p.lex.Peek()
		if tok != nil && tok.Kind == token.RBrace {
			break
		}
		field, err := p.parseObjectField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Comma {
			p.lex.Consume()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.Object{Fields: fields, PosVal: open.Position}, nil
}

func (p *Parser) parseObjectField() (ast.ObjectField, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return ast.ObjectField{}, err
	}

	if tok.Kind == token.Ellipsis {
		p.lex.Consume()
		value, err := p.parseAssignment()
		if err != nil {
			return ast.ObjectField{}, err
		}
		return ast.ObjectField{Kind: ast.FieldSpread, Value: value}, nil
	}

	if tok.Kind == token.LBracket {
		p.lex.Consume()
		key, err := p.parseExpression()
		if err != nil {
			return ast.ObjectField{}, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return ast.ObjectField{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return ast.ObjectField{}, err
		}
		value, err := p.parseAssignment()
		if err != nil {
			return ast.ObjectField{}, err
		}
		return ast.ObjectField{Kind: ast.FieldDynamic, KeyExpr: key, Value: value}, nil
	}

	var key string
	switch tok.Kind {
	case token.Identifier:
		p.lex.Consume()
		key = tok.Literal
	case token.String:
		p.lex.Consume()
		key = tok.Literal
	default:
		return ast.ObjectField{}, p.errAt(tok.Position, "unexpected token %s in object literal", tok.Kind)
	}

	if next, _ := p.lex.Peek(); next != nil && next.Kind == token.Colon {
		p.lex.Consume()
		value, err := p.parseAssignment()
		if err != nil {
			return ast.ObjectField{}, err
		}
		return ast.ObjectField{Kind: ast.FieldRegular, Key: key, Value: value}, nil
	}
	return ast.ObjectField{Kind: ast.FieldRegular, Key: key}, nil
}

func (p *Parser) parseNew() (ast.Expr, error) {
	kw, err := p.expect(token.New)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.LParen {
		args, err = p.parseArgs()
		if err != nil {
			return nil, err
		}
	}
	return &ast.New{ClassName: name.Literal, Args: args, PosVal: kw.Position}, nil
}

func (p *Parser) parseTypeof() (ast.Expr, error) {
	kw, err := p.expect(token.Typeof)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Typeof{Expr: expr, PosVal: kw.Position}, nil
}
