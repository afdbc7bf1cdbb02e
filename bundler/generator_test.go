package bundler_test

import (
	"testing"

	"github.com/alastairzotos/eco-parser/bundler"
	"github.com/alastairzotos/eco-parser/parser"
)

func TestStmtSourceRoundTrip(t *testing.T) {
	cases := []string{
		"const x = 1;",
		"const [a, b] = [1, 2];",
		"const f = (n) => n * 2;",
		"if (x) { y; } else { z; }",
		"while (x) { y; }",
		"try { a; } catch (e) { b; } finally { c; }",
		"foo();",
		"x;",
		"x = 1;",
	}

	for _, src := range cases {
		prog, err := parser.ParseProgram(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if len(prog.Statements) != 1 {
			t.Fatalf("%q: got %d statements, want 1", src, len(prog.Statements))
		}

		out := bundler.StmtSource(prog.Statements[0])

		reparsed, err := parser.ParseProgram(out)
		if err != nil {
			t.Fatalf("%q: regenerated source %q failed to reparse: %v", src, out, err)
		}
		if len(reparsed.Statements) != 1 {
			t.Fatalf("%q: regenerated source parsed into %d statements, want 1", src, len(reparsed.Statements))
		}

		again := bundler.StmtSource(reparsed.Statements[0])
		if again != out {
			t.Errorf("%q: StmtSource is not a fixed point:\n  first:  %s\n  second: %s", src, out, again)
		}
	}
}

// A VarDecl's own gen case already writes its trailing semicolon, so
// ToSource and StmtSource must agree on it (StmtSource must not double it).
func TestToSourceAndStmtSourceAgreeOnSelfTerminatingStatements(t *testing.T) {
	prog, err := parser.ParseProgram("const x = 1 + 2;")
	if err != nil {
		t.Fatal(err)
	}
	stmt := prog.Statements[0]
	if got, want := bundler.ToSource(stmt), "const x = 1 + 2;"; got != want {
		t.Errorf("ToSource: got %q, want %q", got, want)
	}
	if got, want := bundler.StmtSource(stmt), "const x = 1 + 2;"; got != want {
		t.Errorf("StmtSource: got %q, want %q", got, want)
	}
}
