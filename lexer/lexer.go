// Package lexer implements the stateful character scanner described in
// spec §4.1: a token stream with one-token lookahead and position-based
// rewind, context-sensitive regions for strings, template strings, HTML
// text, and longest-match resolution of multi-character symbols/operators.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alastairzotos/eco-parser/token"
)

// Lexer scans src into a sequence of token.Token values.
type Lexer struct {
	src string
	pos int // current scan position, byte offset into src

	cached    *token.Token // single cached lookahead token, cleared by Revert
	cachedPos int          // scan position immediately after the cached token
}

// New creates a Lexer over src, positioned at the start of the input.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// GetPosition returns the position where the next token starts: the
// cached lookahead token's own position when one has been peeked, else the
// raw scan position.
func (l *Lexer) GetPosition() int {
	if l.cached != nil {
		return l.cached.Position
	}
	return l.pos
}

// GetLastPosition returns the position immediately past the most recently
// scanned token (i.e. the position Consume would leave the scanner at).
func (l *Lexer) GetLastPosition() int {
	if l.cached != nil {
		return l.cachedPos
	}
	return l.pos
}

// GetLineAndColumn scans the original input counting newlines up to pos,
// returning a 1-based line and column.
func (l *Lexer) GetLineAndColumn(pos int) (line, column int) {
	line = 1
	lastNewline := -1
	if pos > len(l.src) {
		pos = len(l.src)
	}
	for i := 0; i < pos; i++ {
		if l.src[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	column = pos - lastNewline
	return line, column
}

// Revert rewinds the stream to position and invalidates any cached
// lookahead token.
func (l *Lexer) Revert(position int) {
	l.pos = position
	l.cached = nil
}

// Peek returns the next non-comment token without consuming it. At end of
// input it returns a token of kind token.Eof, never nil. If expectedKind is
// given and the next token does not match it, Peek returns an error without
// advancing.
func (l *Lexer) Peek(expectedKind ...token.Kind) (*token.Token, error) {
	if l.cached == nil {
		tok, newPos, err := l.scanNext(l.pos)
		if err != nil {
			return nil, err
		}
		l.cached = tok
		l.cachedPos = newPos
	}
	if len(expectedKind) > 0 && l.cached.Kind != expectedKind[0] {
		return nil, fmt.Errorf("expected %s got %s at position %d", expectedKind[0], l.cached.Kind, l.cached.Position)
	}
	return l.cached, nil
}

// Consume returns and advances past the next token, failing when
// expectedKind is given and does not match.
func (l *Lexer) Consume(expectedKind ...token.Kind) (*token.Token, error) {
	tok, err := l.Peek(expectedKind...)
	if err != nil {
		return nil, err
	}
	l.pos = l.cachedPos
	l.cached = nil
	return tok, nil
}

// PeekOperator reports whether the next token is an operator token whose
// lexeme equals op.
func (l *Lexer) PeekOperator(op string) bool {
	tok, err := l.Peek()
	if err != nil || tok == nil {
		return false
	}
	return tok.Kind == token.Operator && tok.Literal == op
}

// ConsumeOperator consumes the next token if it is the operator op,
// failing otherwise.
func (l *Lexer) ConsumeOperator(op string) (*token.Token, error) {
	if !l.PeekOperator(op) {
		return nil, fmt.Errorf("expected operator %q at position %d", op, l.GetPosition())
	}
	return l.Consume()
}

// ConsumeIdentifier consumes the next token if its literal equals name,
// failing otherwise. The token's kind is not checked, so a keyword token
// whose lexeme equals name (keywords used contextually, e.g. `as`/`from`)
// is accepted as well as an identifier.
func (l *Lexer) ConsumeIdentifier(name string) (*token.Token, error) {
	tok, err := l.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Literal != name {
		return nil, fmt.Errorf("expected %q got %q at position %d", name, tok.Literal, tok.Position)
	}
	return l.Consume()
}

// GetUntil returns a synthetic string token whose value is every character
// from the current position (or from startPos, if given) up to the first
// occurrence of any of terminators (not consumed). Fails with "unexpected
// end" if none of the terminators occur before end of input. GetUntil
// always invalidates any cached lookahead, since it scans around the normal
// tokenizer.
func (l *Lexer) GetUntil(terminators []string, startPos ...int) (*token.Token, error) {
	l.cached = nil
	from := l.pos
	if len(startPos) > 0 {
		from = startPos[0]
	}
	best := -1
	for i := from; i <= len(l.src); i++ {
		for _, term := range terminators {
			if strings.HasPrefix(l.src[i:], term) {
				best = i
				break
			}
		}
		if best != -1 {
			break
		}
	}
	if best == -1 {
		return nil, fmt.Errorf("unexpected end of input while scanning for %v", terminators)
	}
	value := l.src[from:best]
	l.pos = best
	return &token.Token{Kind: token.String, Literal: value, Position: from}, nil
}

// SwitchTokenKind dispatches on the next token's kind, returning the value
// produced by the matching case function, or the default function's value
// if no case matches. Neither function is invoked speculatively more than
// once; SwitchTokenKind does not itself consume any tokens.
func SwitchTokenKind[T any](l *Lexer, cases map[token.Kind]func() (T, error), fallback func() (T, error)) (T, error) {
	var zero T
	tok, err := l.Peek()
	if err != nil {
		return zero, err
	}
	if fn, ok := cases[tok.Kind]; ok {
		return fn()
	}
	return fallback()
}

// scanNext scans exactly one token starting at from, skipping whitespace
// and comments first. It returns the token and the position immediately
// following it.
func (l *Lexer) scanNext(from int) (*token.Token, int, error) {
	pos := from
	for {
		pos = skipWhitespace(l.src, pos)
		if strings.HasPrefix(l.src[pos:], "//") {
			end := strings.IndexByte(l.src[pos:], '\n')
			if end == -1 {
				pos = len(l.src)
			} else {
				pos += end
			}
			continue
		}
		if strings.HasPrefix(l.src[pos:], "/*") {
			end := strings.Index(l.src[pos+2:], "*/")
			if end == -1 {
				return nil, 0, fmt.Errorf("unclosed comment at position %d", pos)
			}
			pos = pos + 2 + end + 2
			continue
		}
		break
	}

	if pos >= len(l.src) {
		return &token.Token{Kind: token.Eof, Position: pos}, pos, nil
	}

	start := pos
	c := l.src[pos]

	switch {
	case isIdentStart(c):
		end := pos
		for end < len(l.src) && isIdentPart(l.src[end]) {
			end++
		}
		lit := l.src[pos:end]
		if kw, ok := token.Keywords[lit]; ok {
			return &token.Token{Kind: kw, Literal: lit, Position: start}, end, nil
		}
		return &token.Token{Kind: token.Identifier, Literal: lit, Position: start}, end, nil

	case isDigit(c):
		end := pos
		for end < len(l.src) && isDigit(l.src[end]) {
			end++
		}
		if end < len(l.src) && l.src[end] == '.' && end+1 < len(l.src) && isDigit(l.src[end+1]) {
			end++
			for end < len(l.src) && isDigit(l.src[end]) {
				end++
			}
		}
		lit := l.src[pos:end]
		val, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid number %q at position %d", lit, start)
		}
		return &token.Token{Kind: token.Number, Literal: lit, Number: val, Position: start}, end, nil

	case c == '\'' || c == '"':
		quote := c
		end := pos + 1
		for end < len(l.src) && l.src[end] != quote {
			end++
		}
		if end >= len(l.src) {
			return nil, 0, fmt.Errorf("unexpected end of string at position %d", start)
		}
		value := l.src[pos+1 : end]
		return &token.Token{Kind: token.String, Literal: value, Position: start}, end + 1, nil

	default:
		// `=>` is a special case: lexes as the symbol Arrow, never as the
		// operator `=` followed by `>`.
		if strings.HasPrefix(l.src[pos:], "=>") {
			return &token.Token{Kind: token.Arrow, Literal: "=>", Position: start}, pos + 2, nil
		}

		// Longest-match resolution across both the symbol and operator sets:
		// extend the prefix as long as at least one candidate still
		// matches, and commit to the longest exact match found.
		bestLen := 0
		var bestKind token.Kind
		isOperator := false
		for _, sym := range token.Symbols {
			if strings.HasPrefix(l.src[pos:], sym.Lexeme) && len(sym.Lexeme) > bestLen {
				bestLen = len(sym.Lexeme)
				bestKind = sym.Kind
				isOperator = false
			}
		}
		for _, op := range token.OperatorLexemes {
			if strings.HasPrefix(l.src[pos:], op) && len(op) > bestLen {
				bestLen = len(op)
				isOperator = true
			}
		}
		if bestLen == 0 {
			return nil, 0, fmt.Errorf("unrecognised token at position %d: %q", start, string(c))
		}
		lit := l.src[pos : pos+bestLen]
		if isOperator {
			return &token.Token{Kind: token.Operator, Literal: lit, Position: start}, pos + bestLen, nil
		}
		return &token.Token{Kind: bestKind, Literal: lit, Position: start}, pos + bestLen, nil
	}
}

func skipWhitespace(src string, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
			continue
		}
		break
	}
	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
