package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parseImport parses the four import forms of spec §4.2:
//
//	import 'file';
//	import x from 'file';
//	import * as ns from 'file';
//	import { a, b as c } from 'file';
func (p *Parser) parseImport() (*ast.Import, error) {
	kw, err := p.expect(token.Import)
	if err != nil {
		return nil, err
	}

	result := &ast.Import{PosVal: kw.Position}

	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == token.String:
		p.lex.Consume()
		result.FromFile = tok.Literal
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return result, nil

	case tok.Kind == token.Operator && tok.Literal == "*":
		p.lex.Consume()
		if _, err := p.expect(token.As); err != nil {
			return nil, err
		}
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		result.NamespaceName = name.Literal

	case tok.Kind == token.LBrace:
		p.lex.Consume()
		for {
			t, _ := p.lex.Peek()
			if t != nil && t.Kind == token.RBrace {
				break
			}
			entry, err := p.parseImportedName()
			if err != nil {
				return nil, err
			}
			result.Objects = append(result.Objects, entry)
			if t, _ := p.lex.Peek(); t != nil && t.Kind == token.Comma {
				p.lex.Consume()
				continue
			}
			break
		}
		if _, err := p.expect(token.RBrace); err != nil {
			return nil, err
		}

	case tok.Kind == token.Identifier:
		p.lex.Consume()
		result.DefaultName = tok.Literal

	default:
		return nil, p.errAt(tok.Position, "unexpected token %s in import", tok.Kind)
	}

	if _, err := p.expect(token.From); err != nil {
		return nil, err
	}
	file, err := p.expect(token.String)
	if err != nil {
		return nil, err
	}
	result.FromFile = file.Literal
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Parser) parseImportedName() (ast.ImportedName, error) {
	var name string
	tok, err := p.lex.Peek()
	if err != nil {
		return ast.ImportedName{}, err
	}
	if tok.Kind == token.Default {
		p.lex.Consume()
		name = "default"
	} else {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return ast.ImportedName{}, err
		}
		name = nameTok.Literal
	}
	alias := name
	if t, _ := p.lex.Peek(); t != nil && t.Kind == token.As {
		p.lex.Consume()
		aliasTok, err := p.expect(token.Identifier)
		if err != nil {
			return ast.ImportedName{}, err
		}
		alias = aliasTok.Literal
	}
	return ast.ImportedName{Name: name, Alias: alias}, nil
}

// parseExport parses the four export forms of spec §4.2:
//
//	export default expr;
//	export const|let …;
//	export { a, b as c, default as d } from 'file';
//	export * from 'file';
func (p *Parser) parseExport() (*ast.Export, error) {
	kw, err := p.expect(token.Export)
	if err != nil {
		return nil, err
	}
	result := &ast.Export{PosVal: kw.Position}

	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == token.Default:
		p.lex.Consume()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		result.DefaultValue = value
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return result, nil

	case tok.Kind == token.Const || tok.Kind == token.Let:
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		result.VarDecl = decl
		return result, nil

	case tok.Kind == token.Operator && tok.Literal == "*":
		p.lex.Consume()
		if _, err := p.expect(token.From); err != nil {
			return nil, err
		}
		file, err := p.expect(token.String)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		result.From = &ast.ExportFrom{File: file.Literal, All: true}
		return result, nil

	case tok.Kind == token.LBrace:
		p.lex.Consume()
		var named []ast.ExportedName
		for {
			t, _ := p.lex.Peek()
			if t != nil && t.Kind == token.RBrace {
				break
			}
			entry, err := p.parseExportedName()
			if err != nil {
				return nil, err
			}
			named = append(named, entry)
			if t, _ := p.lex.Peek(); t != nil && t.Kind == token.Comma {
				p.lex.Consume()
				continue
			}
			break
		}
		if _, err := p.expect(token.RBrace); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.From); err != nil {
			return nil, err
		}
		file, err := p.expect(token.String)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		result.From = &ast.ExportFrom{File: file.Literal, Named: named}
		return result, nil

	default:
		return nil, p.errAt(tok.Position, "unexpected token %s in export", tok.Kind)
	}
}

func (p *Parser) parseExportedName() (ast.ExportedName, error) {
	var name string
	tok, err := p.lex.Peek()
	if err != nil {
		return ast.ExportedName{}, err
	}
	if tok.Kind == token.Default {
		p.lex.Consume()
		name = "default"
	} else {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return ast.ExportedName{}, err
		}
		name = nameTok.Literal
	}
	alias := name
	if t, _ := p.lex.Peek(); t != nil && t.Kind == token.As {
		p.lex.Consume()
		aliasTok, err := p.expect(token.Identifier)
		if err != nil {
			return ast.ExportedName{}, err
		}
		alias = aliasTok.Literal
	}
	return ast.ExportedName{Name: name, Alias: alias}, nil
}
