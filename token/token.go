// Package token defines the closed set of lexical tokens recognised by the
// eco lexer and parser.
package token

import "strconv"

// Kind is the set of lexical token kinds. It is a closed set: every token
// produced by the lexer carries one of these kinds.
type Kind int

const (
	Illegal Kind = iota
	Eof

	Identifier
	Number
	String
	Operator // one of the lexemes in OperatorLexemes

	// Keyword-valued literals, carrying a constant value.
	True
	False
	Null
	Undefined

	// Keywords.
	Const
	Let
	Return
	New
	If
	Else
	While
	Try
	Catch
	Finally
	Throw
	Typeof
	Export
	Default
	Expose
	Import
	From
	As

	// Symbols.
	Arrow        // =>
	Ellipsis     // ...
	Backtick     // `
	DollarBrace  // ${
	CloseTagOpen // </
	SelfClose    // />
	Lt           // <
	Gt           // >
	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	LBrace       // {
	RBrace       // }
	Comma        // ,
	Dot          // .
	Question     // ?
	Colon        // :
	Semicolon    // ;
)

var kindNames = map[Kind]string{
	Illegal:     "illegal",
	Eof:         "eof",
	Identifier:  "identifier",
	Number:      "number",
	String:      "string",
	Operator:    "operator",
	True:        "true",
	False:       "false",
	Null:        "null",
	Undefined:   "undefined",
	Const:       "const",
	Let:         "let",
	Return:      "return",
	New:         "new",
	If:          "if",
	Else:        "else",
	While:       "while",
	Try:         "try",
	Catch:       "catch",
	Finally:     "finally",
	Throw:       "throw",
	Typeof:      "typeof",
	Export:      "export",
	Default:     "default",
	Expose:      "expose",
	Import:      "import",
	From:        "from",
	As:          "as",
	Arrow:       "=>",
	Ellipsis:    "...",
	Backtick:    "`",
	DollarBrace: "${",
	CloseTagOpen: "</",
	SelfClose:   "/>",
	Lt:          "<",
	Gt:          ">",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
	Comma:       ",",
	Dot:         ".",
	Question:    "?",
	Colon:       ":",
	Semicolon:   ";",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Keywords maps the keyword/keyword-literal lexeme to its token kind.
var Keywords = map[string]Kind{
	"const":     Const,
	"let":       Let,
	"return":    Return,
	"new":       New,
	"if":        If,
	"else":      Else,
	"while":     While,
	"try":       Try,
	"catch":     Catch,
	"finally":   Finally,
	"throw":     Throw,
	"typeof":    Typeof,
	"export":    Export,
	"default":   Default,
	"expose":    Expose,
	"import":    Import,
	"from":      From,
	"as":        As,
	"true":      True,
	"false":     False,
	"null":      Null,
	"undefined": Undefined,
}

// Symbols is the closed set of multi- and single-character symbols, longest
// lexeme first so that a naive linear scan still finds the longest match.
var Symbols = []struct {
	Lexeme string
	Kind   Kind
}{
	{"=>", Arrow},
	{"...", Ellipsis},
	{"</", CloseTagOpen},
	{"/>", SelfClose},
	{"${", DollarBrace},
	{"`", Backtick},
	{"<", Lt},
	{">", Gt},
	{"(", LParen},
	{")", RParen},
	{"[", LBracket},
	{"]", RBracket},
	{"{", LBrace},
	{"}", RBrace},
	{",", Comma},
	{".", Dot},
	{"?", Question},
	{":", Colon},
	{";", Semicolon},
}

// OperatorLexemes is the closed set of operator lexemes, longest first.
var OperatorLexemes = []string{
	"+=", "-=", "*=", "/=",
	"++", "--",
	"&&", "||",
	"===", "==",
	"!==", "!=",
	">=", "<=",
	"+", "-", "*", "/", "!", "=",
}

// AssignmentOps is the set of operator lexemes that make a Binary a
// refinement Assignment node.
var AssignmentOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true,
}

// Token is a single lexical token: its kind, its literal lexeme/value, and
// its zero-based byte position in the source.
type Token struct {
	Kind     Kind
	Literal  string
	Number   float64
	Position int
}
