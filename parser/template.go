package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parseTemplateString parses a backtick string: alternating literal
// segments (scanned via GetUntil(['`', '${'])) and `${ expression }`
// interpolations (spec §4.2).
func (p *Parser) parseTemplateString() (ast.Expr, error) {
	open, err := p.expect(token.Backtick)
	if err != nil {
		return nil, err
	}

	var parts []ast.Expr
	for {
		seg, err := p.lex.GetUntil([]string{"`", "${"})
		if err != nil {
			return nil, err
		}
		parts = append(parts, &ast.TemplateStringContent{Text: seg.Literal, PosVal: seg.Position})

		if p.lex.HasPrefix("`") {
			if _, err := p.expect(token.Backtick); err != nil {
				return nil, err
			}
			break
		}
		// must be "${"
		if _, err := p.expect(token.DollarBrace); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBrace); err != nil {
			return nil, err
		}
		parts = append(parts, expr)
	}

	return &ast.TemplateString{Parts: parts, PosVal: open.Position}, nil
}
