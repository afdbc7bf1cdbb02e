package parser

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/token"
)

// parseAssignment implements the assignment level (spec §4.2): lowest
// precedence, right-associative via direct recursion on the right operand
// (the one level that self-chains; every other level is non-associative
// at the same level, per the spec §9 known idiosyncrasy).
func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	tok, _ := p.lex.Peek()
	if tok != nil && tok.Kind == token.Operator && token.AssignmentOps[tok.Literal] {
		p.lex.Consume()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: left, Op: tok.Literal, Value: right, PosVal: left.Pos()}, nil
	}
	return left, nil
}

func (p *Parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Question {
		p.lex.Consume()
		then, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		els, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Ternary{Cond: cond, Then: then, Else: els, PosVal: cond.Pos()}, nil
	}
	return cond, nil
}

// binaryLevel implements the spec §4.2 binary rule at one precedence
// level: read one left operand, and IF the next token matches one of ops,
// consume it, read exactly one right operand at sub(), and wrap the
// result — no looping, so a chain like `a + b + c` parses as `a + b`
// leaving `+ c` unconsumed (spec §9).
func (p *Parser) binaryLevel(sub func() (ast.Expr, error), ops map[string]bool) (ast.Expr, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	tok, _ := p.lex.Peek()
	if tok != nil && isOpCandidate(tok.Kind) && ops[tok.Literal] {
		p.lex.Consume()
		right, err := sub()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: tok.Literal, Left: left, Right: right, PosVal: left.Pos()}, nil
	}
	return left, nil
}

// isOpCandidate reports whether a token kind can carry an operator lexeme
// recognised by one of the ops maps. Bare `<`/`>` lex as the Lt/Gt symbol
// kinds rather than Operator (they're shared with the HTML literal's tag
// delimiters), so the equality/relational level must also accept those two
// kinds alongside Operator.
func isOpCandidate(k token.Kind) bool {
	return k == token.Operator || k == token.Lt || k == token.Gt
}

var logicalOrOps = map[string]bool{"||": true}
var logicalAndOps = map[string]bool{"&&": true}
var equalityOps = map[string]bool{"===": true, "==": true, "!==": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true}
var additiveOps = map[string]bool{"+": true, "-": true}
var multiplicativeOps = map[string]bool{"*": true, "/": true}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	return p.binaryLevel(p.parseLogicalAnd, logicalOrOps)
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	return p.binaryLevel(p.parseEquality, logicalAndOps)
}

// parseEquality covers both equality (===, ==, !==, !=) and relational
// (>, >=, <, <=) operators, one precedence level per spec §4.2. `<=`/`>=`
// arrive as Operator tokens, while bare `<`/`>` arrive as the Lt/Gt symbol
// kinds shared with HTML tag delimiters; binaryLevel accepts both through
// isOpCandidate.
func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.binaryLevel(p.parseAdditive, equalityOps)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.binaryLevel(p.parseMultiplicative, additiveOps)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.binaryLevel(p.parseUnary, multiplicativeOps)
}

// parseUnary implements the unary-prefix level: `- ! -- ++`.
func (p *Parser) parseUnary() (ast.Expr, error) {
	tok, _ := p.lex.Peek()
	if tok == nil {
		return p.parsePostfix()
	}
	if tok.Kind == token.Operator && (tok.Literal == "!" || tok.Literal == "-") {
		p.lex.Consume()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: tok.Literal, Expr: expr, PosVal: tok.Position}, nil
	}
	if tok.Kind == token.Operator && (tok.Literal == "++" || tok.Literal == "--") {
		p.lex.Consume()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.IncOrDec{IsPrefix: true, Op: tok.Literal, Expr: expr, PosVal: tok.Position}, nil
	}
	return p.parsePostfix()
}

// parsePostfix implements the postfix `-- ++` level.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parseAccessChain()
	if err != nil {
		return nil, err
	}
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Operator && (tok.Literal == "++" || tok.Literal == "--") {
		p.lex.Consume()
		return &ast.IncOrDec{IsPrefix: false, Op: tok.Literal, Expr: expr, PosVal: expr.Pos()}, nil
	}
	return expr, nil
}

// parseAccessChain implements the access/call level: left-associated BY
// ITERATION (the one level the spec calls out as iterating rather than
// single-shot) over `. [ ] ( )`.
func (p *Parser) parseAccessChain() (ast.Expr, error) {
	expr, err := p.parsePrimaryOrArrow()
	if err != nil {
		return nil, err
	}
	for {
		tok, _ := p.lex.Peek()
		if tok == nil {
			return expr, nil
		}
		switch tok.Kind {
		case token.Dot:
			p.lex.Consume()
			name, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			if next, _ := p.lex.Peek(); next != nil && next.Kind == token.LParen {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				expr = &ast.MethodCall{Object: expr, FieldName: name.Literal, Args: args, PosVal: expr.Pos()}
			} else {
				expr = &ast.FieldAccess{Object: expr, Field: name.Literal, PosVal: expr.Pos()}
			}
		case token.LBracket:
			p.lex.Consume()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			expr = &ast.ArrayAccess{Object: expr, Index: index, PosVal: expr.Pos()}
		case token.LParen:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.FuncCall{Callee: expr, Args: args, PosVal: expr.Pos()}
		default:
			return expr, nil
		}
	}
}

// parseArgs parses a parenthesized, comma-separated argument list. A
// leading `...` wraps an argument in Spread, parsed but not flattened at
// the call site (spec §9 known limitation).
func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for {
		tok, _ := p.lex.Peek()
		if tok != nil && tok.Kind == token.RParen {
			break
		}
		arg, err := p.parseArgOrElement()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Comma {
			p.lex.Consume()
			continue
		}
		break
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return args, nil
}

// parseArgOrElement parses a single array-literal element or call
// argument, handling an optional leading spread.
func (p *Parser) parseArgOrElement() (ast.Expr, error) {
	if tok, _ := p.lex.Peek(); tok != nil && tok.Kind == token.Ellipsis {
		p.lex.Consume()
		inner, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Spread{Value: inner, PosVal: tok.Position}, nil
	}
	return p.parseAssignment()
}
