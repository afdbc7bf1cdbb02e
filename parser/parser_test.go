package parser_test

import (
	"testing"

	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseProgram(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return prog
}

func TestParseVarDecl(t *testing.T) {
	prog := mustParse(t, "const x = 1;")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDecl", prog.Statements[0])
	}
	if !decl.IsConst || decl.Variable.Name != "x" {
		t.Errorf("got IsConst=%v Name=%q", decl.IsConst, decl.Variable.Name)
	}
}

// Relational operators must parse as Binary nodes even though `<`/`>`
// lex under their own Lt/Gt token kinds rather than Operator.
func TestParseRelationalOperators(t *testing.T) {
	for _, op := range []string{"<", ">", "<=", ">=", "==", "!="} {
		src := "a " + op + " b;"
		prog := mustParse(t, src)
		bin, ok := prog.Statements[0].(*ast.Binary)
		if !ok {
			t.Fatalf("%q: got %T, want *ast.Binary", src, prog.Statements[0])
		}
		if bin.Op != op {
			t.Errorf("%q: got op %q, want %q", src, bin.Op, op)
		}
	}
}

func TestParseArrayDestructure(t *testing.T) {
	prog := mustParse(t, "const [a, , b, ...rest] = xs;")
	decl := prog.Statements[0].(*ast.VarDecl)
	v := decl.Variable
	if v.VariableType != ast.DestructureArray {
		t.Fatalf("got VariableType %v, want DestructureArray", v.VariableType)
	}
	if len(v.Values) != 4 {
		t.Fatalf("got %d destructured values, want 4", len(v.Values))
	}
	if !v.Values[1].Hole {
		t.Errorf("element 1 should be a hole")
	}
	if v.Values[2].Name != "b" {
		t.Errorf("got element 2 name %q, want %q", v.Values[2].Name, "b")
	}
	if !v.Values[3].IsRest || v.Values[3].Name != "rest" {
		t.Errorf("element 3 should be rest named %q, got %+v", "rest", v.Values[3])
	}
}

func TestParseObjectDestructureWithDefault(t *testing.T) {
	prog := mustParse(t, "const { a, b = 2 } = obj;")
	decl := prog.Statements[0].(*ast.VarDecl)
	v := decl.Variable
	if v.VariableType != ast.DestructureObject {
		t.Fatalf("got VariableType %v, want DestructureObject", v.VariableType)
	}
	if v.Values[1].Name != "b" || v.Values[1].Default == nil {
		t.Errorf("element 1 should be named b with a default, got %+v", v.Values[1])
	}
}

func TestParseArrowFunctionBacktracking(t *testing.T) {
	prog := mustParse(t, "const f = (a, b) => a + b;")
	decl := prog.Statements[0].(*ast.VarDecl)
	fn, ok := decl.Variable.Default.(*ast.Function)
	if !ok {
		t.Fatalf("got %T, want *ast.Function", decl.Variable.Default)
	}
	if !fn.IsArrow || len(fn.Parameters) != 2 {
		t.Fatalf("got IsArrow=%v params=%d, want true/2", fn.IsArrow, len(fn.Parameters))
	}
	if _, isBlock := fn.Body.(*ast.Block); isBlock {
		t.Errorf("expression-bodied arrow should not parse a Block")
	}
}

func TestParseParenthesizedExpressionNotArrow(t *testing.T) {
	prog := mustParse(t, "const x = (a + b);")
	decl := prog.Statements[0].(*ast.VarDecl)
	if _, ok := decl.Variable.Default.(*ast.Parens); !ok {
		t.Fatalf("got %T, want *ast.Parens", decl.Variable.Default)
	}
}

func TestParseImportForms(t *testing.T) {
	prog := mustParse(t, `
import './side-effect';
import def from './a';
import * as ns from './b';
import { x, y as z } from './c';
`)
	if len(prog.Statements) != 4 {
		t.Fatalf("got %d statements, want 4", len(prog.Statements))
	}
	for i, stmt := range prog.Statements {
		if _, ok := stmt.(*ast.Import); !ok {
			t.Fatalf("statement %d: got %T, want *ast.Import", i, stmt)
		}
	}
	named := prog.Statements[3].(*ast.Import)
	if len(named.Objects) != 2 || named.Objects[1].Alias != "z" {
		t.Errorf("got %+v", named.Objects)
	}
}

func TestParseExportForms(t *testing.T) {
	prog := mustParse(t, `
export default 1;
export const a = 2;
export { x, y as z } from './m';
export * from './n';
`)
	if len(prog.Statements) != 4 {
		t.Fatalf("got %d statements, want 4", len(prog.Statements))
	}
	for i, stmt := range prog.Statements {
		if _, ok := stmt.(*ast.Export); !ok {
			t.Fatalf("statement %d: got %T, want *ast.Export", i, stmt)
		}
	}
}

func TestParseImportExportRejectedInBlock(t *testing.T) {
	_, err := parser.ParseProgram("if (true) { import './a'; }")
	if err == nil {
		t.Fatal("expected an error for a non-top-level import")
	}
}

func TestParseTemplateString(t *testing.T) {
	prog := mustParse(t, "const s = `hi ${name}!`;")
	decl := prog.Statements[0].(*ast.VarDecl)
	tpl, ok := decl.Variable.Default.(*ast.TemplateString)
	if !ok {
		t.Fatalf("got %T, want *ast.TemplateString", decl.Variable.Default)
	}
	if len(tpl.Parts) != 3 {
		t.Fatalf("got %d parts, want 3 (literal, expr, literal)", len(tpl.Parts))
	}
}

func TestParseHTMLFragmentAndSelfClosing(t *testing.T) {
	prog := mustParse(t, "const el = <><input disabled/></>;")
	decl := prog.Statements[0].(*ast.VarDecl)
	frag, ok := decl.Variable.Default.(*ast.HTML)
	if !ok {
		t.Fatalf("got %T, want *ast.HTML", decl.Variable.Default)
	}
	if frag.TagName != "" {
		t.Errorf("fragment should have an empty tag name, got %q", frag.TagName)
	}
	if len(frag.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(frag.Children))
	}
	input := frag.Children[0].(*ast.HTML)
	if input.TagName != "input" || len(input.Attributes) != 1 {
		t.Errorf("got %+v", input)
	}
}

func TestParseUnclosedStringIsError(t *testing.T) {
	_, err := parser.ParseProgram(`const s = "unterminated;`)
	if err == nil {
		t.Fatal("expected a parse error for an unterminated string")
	}
}
