package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parseHTML parses an HTML-like expression literal (spec §4.2):
// `<tag attrs>children</tag>`, a self-closing `<tag attrs/>`, or a
// tagless `<>…</>` fragment. Children are scanned with raw terminator
// matching (not tokenization) so that literal text whitespace survives,
// grounded on the lexer's GetUntil contract (spec §4.1).
func (p *Parser) parseHTML() (ast.Expr, error) {
	open, err := p.expect(token.Lt)
	if err != nil {
		return nil, err
	}

	var tagName string
	selfClosing := false

	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Gt {
		// tagless fragment `<>`
		p.lex.Consume()
	} else {
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		tagName = name.Literal

		var attrs []ast.HTMLAttribute
		for {
			tok, err := p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind == token.SelfClose {
				p.lex.Consume()
				selfClosing = true
				break
			}
			if tok.Kind == token.Gt {
				p.lex.Consume()
				break
			}
			attr, err := p.parseHTMLAttribute()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		}

		node := &ast.HTML{TagName: tagName, Attributes: attrs, PosVal: open.Position}
		if selfClosing {
			return node, nil
		}
		children, err := p.parseHTMLChildren(tagName)
		if err != nil {
			return nil, err
		}
		node.Children = children
		return node, nil
	}

	node := &ast.HTML{PosVal: open.Position}
	children, err := p.parseHTMLChildren("")
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

func (p *Parser) parseHTMLAttribute() (ast.HTMLAttribute, error) {
	name, err := p.expect(token.Identifier)
	if err != nil {
		return ast.HTMLAttribute{}, err
	}
	attr := ast.HTMLAttribute{Name: name.Literal}

	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Operator && tok.Literal == "=" {
		p.lex.Consume()
		valTok, err := p.lex.Peek()
		if err != nil {
			return ast.HTMLAttribute{}, err
		}
		switch valTok.Kind {
		case token.String:
			p.lex.Consume()
			attr.Value = &ast.Literal{Value: valTok.Literal, PosVal: valTok.Position}
		case token.LBrace:
			p.lex.Consume()
			expr, err := p.parseExpression()
			if err != nil {
				return ast.HTMLAttribute{}, err
			}
			if _, err := p.expect(token.RBrace); err != nil {
				return ast.HTMLAttribute{}, err
			}
			attr.Value = expr
		default:
			return ast.HTMLAttribute{}, p.errAt(valTok.Position, "unexpected token %s in attribute value", valTok.Kind)
		}
	}
	// attr.Value left nil means a bare attribute, meaning `true`.
	return attr, nil
}

// parseHTMLChildren scans children until the matching closing tag. tagName
// empty means a fragment's `</>`  closing marker.
func (p *Parser) parseHTMLChildren(tagName string) ([]ast.Expr, error) {
	var children []ast.Expr
	for {
		if p.lex.HasPrefix("</") {
			p.lex.Consume() // consumes the CloseTagOpen symbol
			if tagName != "" {
				name, err := p.expect(token.Identifier)
				if err != nil {
					return nil, err
				}
				if name.Literal != tagName {
					return nil, p.errAt(name.Position, "mismatched closing tag: expected %s, got %s", tagName, name.Literal)
				}
			}
			if _, err := p.expect(token.Gt); err != nil {
				return nil, err
			}
			return children, nil
		}

		c, ok := p.lex.PeekChar()
		if !ok {
			return nil, p.errAt(p.lex.GetPosition(), "unexpected end of input in HTML literal")
		}

		switch c {
		case '<':
			el, err := p.parseHTML()
			if err != nil {
				return nil, err
			}
			children = append(children, el)
		case '{':
			open, err := p.expect(token.LBrace)
			if err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBrace); err != nil {
				return nil, err
			}
			children = append(children, &ast.HTMLExpr{Expr: expr, PosVal: open.Position})
		default:
			textTok, err := p.lex.GetUntil([]string{"<", "{"})
			if err != nil {
				return nil, err
			}
			children = append(children, &ast.HTMLText{Text: textTok.Literal, PosVal: textTok.Position})
		}
	}
}
