package lexer_test

import (
	"testing"

	"github.com/alastairzotos/eco-parser/lexer"
	"github.com/alastairzotos/eco-parser/token"
)

func consumeAll(t *testing.T, src string) []*token.Token {
	t.Helper()
	l := lexer.New(src)
	var toks []*token.Token
	for {
		tok, err := l.Consume()
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks
		}
	}
}

func TestLexerBasicTokens(t *testing.T) {
	toks := consumeAll(t, "const x = 42;")
	want := []token.Kind{token.Const, token.Identifier, token.Operator, token.Number, token.Semicolon, token.Eof}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %v, want %v", i, toks[i].Kind, k)
		}
	}
}

// Relational symbols lex as their own Lt/Gt kinds (shared with HTML tag
// delimiters), not as token.Operator, and must still carry their lexeme in
// Literal so the parser's equality/relational level can match it.
func TestLexerLtGtCarryLiteral(t *testing.T) {
	toks := consumeAll(t, "a < b > c")
	lt := toks[1]
	gt := toks[3]
	if lt.Kind != token.Lt || lt.Literal != "<" {
		t.Errorf("got kind=%v literal=%q, want Lt with literal %q", lt.Kind, lt.Literal, "<")
	}
	if gt.Kind != token.Gt || gt.Literal != ">" {
		t.Errorf("got kind=%v literal=%q, want Gt with literal %q", gt.Kind, gt.Literal, ">")
	}
}

func TestLexerPeekDoesNotAdvance(t *testing.T) {
	l := lexer.New("foo bar")
	first, err := l.Peek()
	if err != nil {
		t.Fatal(err)
	}
	second, err := l.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if first.Literal != second.Literal {
		t.Fatalf("peek advanced the lexer: %q then %q", first.Literal, second.Literal)
	}
	consumed, err := l.Consume()
	if err != nil {
		t.Fatal(err)
	}
	if consumed.Literal != "foo" {
		t.Fatalf("got %q, want %q", consumed.Literal, "foo")
	}
	next, err := l.Consume()
	if err != nil {
		t.Fatal(err)
	}
	if next.Literal != "bar" {
		t.Fatalf("got %q, want %q", next.Literal, "bar")
	}
}

func TestLexerRevert(t *testing.T) {
	l := lexer.New("one two three")
	mark := l.GetPosition()
	if _, err := l.Consume(); err != nil {
		t.Fatal(err)
	}
	l.Revert(mark)
	tok, err := l.Consume()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Literal != "one" {
		t.Fatalf("revert did not rewind: got %q, want %q", tok.Literal, "one")
	}
}

func TestLexerLineAndColumn(t *testing.T) {
	l := lexer.New("a\nb\nccc")
	// locate the offset of the third "c" on the third line
	pos := len("a\nb\ncc")
	line, col := l.GetLineAndColumn(pos)
	if line != 3 || col != 3 {
		t.Errorf("got line=%d col=%d, want line=3 col=3", line, col)
	}
}
