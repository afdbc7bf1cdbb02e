// Package bundler implements the module-graph walker described in spec
// §4.5: cycle-safe canonical module caching, export aggregation, and
// source re-emission via each node's to-source contract, culminating in
// a single wrapped CommonJS-style script.
package bundler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alastairzotos/eco-parser/ast"
)

// ToSource re-emits node as eco source text — the `to_source` contract
// spec §4.5 assigns to every AST node, used both to rebuild each module's
// body during bundling and by the `eco fmt` CLI command.
//
// Grounded on T14Raptor-go-fAST/generator/generator.go: a free function
// switching on ast.Node into a strings.Builder, kept here (rather than as
// methods on the node types) for the same reason interpreter.Evaluate is
// a free function — package ast stays dependency-free, and this package
// can import both ast and parser.
func ToSource(node ast.Node) string {
	var out strings.Builder
	gen(&out, node, 0)
	return out.String()
}

// StmtSource renders stmt the way it appears in a statement list (a
// Block's body, or a module's top-level statements): identical to
// ToSource, except a bare expression statement gets its trailing `;`
// added back. The parser consumes that semicolon itself when parsing an
// expression statement (parseStatement's default case) rather than
// storing it on the expression node, so ToSource alone would drop it.
func StmtSource(stmt ast.Stmt) string {
	var out strings.Builder
	gen(&out, stmt, 0)
	if !selfTerminating(stmt) {
		out.WriteString(";")
	}
	return out.String()
}

// selfTerminating reports whether stmt's own gen case already writes a
// trailing terminator (`;`, or a closing `}`), so StmtSource/the Block
// case must not add another one.
func selfTerminating(stmt ast.Stmt) bool {
	switch stmt.(type) {
	case *ast.Noop, *ast.VarDecl, *ast.Block, *ast.If, *ast.While, *ast.Return,
		*ast.Throw, *ast.TryCatch, *ast.Import, *ast.Export:
		return true
	}
	return false
}

func pad(out *strings.Builder, indent int) {
	out.WriteString(strings.Repeat("    ", indent))
}

func gen(out *strings.Builder, node ast.Node, indent int) {
	switch n := node.(type) {
	case nil:

	case *ast.Noop:
		out.WriteString(";")
	case *ast.VarDecl:
		out.WriteString(varDeclSource(n))
	case *ast.Block:
		out.WriteString("{\n")
		for _, s := range n.Statements {
			pad(out, indent+1)
			gen(out, s, indent+1)
			if !selfTerminating(s) {
				out.WriteString(";")
			}
			out.WriteString("\n")
		}
		pad(out, indent)
		out.WriteString("}")
	case *ast.If:
		out.WriteString("if (")
		gen(out, n.Cond, indent)
		out.WriteString(") ")
		gen(out, n.Then, indent)
		if n.Else != nil {
			out.WriteString(" else ")
			gen(out, n.Else, indent)
		}
	case *ast.While:
		out.WriteString("while (")
		gen(out, n.Cond, indent)
		out.WriteString(") ")
		gen(out, n.Body, indent)
	case *ast.Return:
		out.WriteString("return")
		if n.Value != nil {
			out.WriteString(" ")
			gen(out, n.Value, indent)
		}
		out.WriteString(";")
	case *ast.Throw:
		out.WriteString("throw ")
		gen(out, n.Value, indent)
		out.WriteString(";")
	case *ast.TryCatch:
		out.WriteString("try ")
		gen(out, n.Try, indent)
		if n.Catch != nil {
			out.WriteString(" catch ")
			if n.CatchName != "" {
				out.WriteString("(" + n.CatchName + ") ")
			}
			gen(out, n.Catch, indent)
		}
		if n.Finally != nil {
			out.WriteString(" finally ")
			gen(out, n.Finally, indent)
		}
	case *ast.Import:
		out.WriteString(importSource(n))
	case *ast.Export:
		out.WriteString(exportSource(n))

	case *ast.Literal:
		out.WriteString(literalSource(n))
	case *ast.Load:
		out.WriteString(n.Name)
	case *ast.Parens:
		out.WriteString("(")
		gen(out, n.Inner, indent)
		out.WriteString(")")
	case *ast.Spread:
		out.WriteString("...")
		gen(out, n.Value, indent)
	case *ast.Array:
		out.WriteString("[")
		for i, e := range n.Elements {
			if i > 0 {
				out.WriteString(", ")
			}
			gen(out, e, indent)
		}
		out.WriteString("]")
	case *ast.Object:
		out.WriteString("{ ")
		for i, f := range n.Fields {
			if i > 0 {
				out.WriteString(", ")
			}
			switch f.Kind {
			case ast.FieldSpread:
				out.WriteString("...")
				gen(out, f.Value, indent)
			case ast.FieldDynamic:
				out.WriteString("[")
				gen(out, f.KeyExpr, indent)
				out.WriteString("]: ")
				gen(out, f.Value, indent)
			default:
				out.WriteString(f.Key)
				if f.Value != nil {
					out.WriteString(": ")
					gen(out, f.Value, indent)
				}
			}
		}
		out.WriteString(" }")
	case *ast.Function:
		genFunction(out, n, indent)
	case *ast.Unary:
		out.WriteString(n.Op)
		gen(out, n.Expr, indent)
	case *ast.IncOrDec:
		if n.IsPrefix {
			out.WriteString(n.Op)
			gen(out, n.Expr, indent)
		} else {
			gen(out, n.Expr, indent)
			out.WriteString(n.Op)
		}
	case *ast.Binary:
		gen(out, n.Left, indent)
		out.WriteString(" " + n.Op + " ")
		gen(out, n.Right, indent)
	case *ast.Assignment:
		gen(out, n.Target, indent)
		out.WriteString(" " + n.Op + " ")
		gen(out, n.Value, indent)
	case *ast.Ternary:
		gen(out, n.Cond, indent)
		out.WriteString(" ? ")
		gen(out, n.Then, indent)
		out.WriteString(" : ")
		gen(out, n.Else, indent)
	case *ast.ArrayAccess:
		gen(out, n.Object, indent)
		out.WriteString("[")
		gen(out, n.Index, indent)
		out.WriteString("]")
	case *ast.FieldAccess:
		gen(out, n.Object, indent)
		out.WriteString("." + n.Field)
	case *ast.FuncCall:
		gen(out, n.Callee, indent)
		out.WriteString("(")
		genArgs(out, n.Args, indent)
		out.WriteString(")")
	case *ast.MethodCall:
		gen(out, n.Object, indent)
		out.WriteString("." + n.FieldName + "(")
		genArgs(out, n.Args, indent)
		out.WriteString(")")
	case *ast.New:
		out.WriteString("new " + n.ClassName + "(")
		genArgs(out, n.Args, indent)
		out.WriteString(")")
	case *ast.Typeof:
		out.WriteString("typeof ")
		gen(out, n.Expr, indent)
	case *ast.HTML:
		genHTML(out, n, indent)
	case *ast.HTMLExpr:
		out.WriteString("{")
		gen(out, n.Expr, indent)
		out.WriteString("}")
	case *ast.HTMLText:
		out.WriteString(n.Text)
	case *ast.TemplateString:
		out.WriteString("`")
		for _, p := range n.Parts {
			if tc, ok := p.(*ast.TemplateStringContent); ok {
				out.WriteString(tc.Text)
			} else {
				out.WriteString("${")
				gen(out, p, indent)
				out.WriteString("}")
			}
		}
		out.WriteString("`")
	case *ast.TemplateStringContent:
		out.WriteString(n.Text)

	default:
		panic(fmt.Sprintf("ToSource: unexpected node type %T", node))
	}
}

func genArgs(out *strings.Builder, args []ast.Expr, indent int) {
	for i, a := range args {
		if i > 0 {
			out.WriteString(", ")
		}
		gen(out, a, indent)
	}
}

func genFunction(out *strings.Builder, n *ast.Function, indent int) {
	if n.IsArrow {
		out.WriteString("(")
		genParams(out, n.Parameters)
		out.WriteString(") => ")
		gen(out, n.Body, indent)
		return
	}
	out.WriteString("function")
	if n.Name != "" {
		out.WriteString(" " + n.Name)
	}
	out.WriteString("(")
	genParams(out, n.Parameters)
	out.WriteString(") ")
	gen(out, n.Body, indent)
}

func genParams(out *strings.Builder, params []*ast.Variable) {
	for i, p := range params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(variableSource(p))
	}
}

func genHTML(out *strings.Builder, n *ast.HTML, indent int) {
	if n.TagName == "" {
		out.WriteString("<>")
	} else {
		out.WriteString("<" + n.TagName)
		for _, a := range n.Attributes {
			out.WriteString(" " + a.Name)
			if a.Value != nil {
				out.WriteString("={")
				gen(out, a.Value, indent)
				out.WriteString("}")
			}
		}
		out.WriteString(">")
	}
	for _, c := range n.Children {
		gen(out, c, indent)
	}
	if n.TagName == "" {
		out.WriteString("</>")
	} else {
		out.WriteString("</" + n.TagName + ">")
	}
}

func literalSource(n *ast.Literal) string {
	switch v := n.Value.(type) {
	case nil:
		return "null"
	case ast.Undefined:
		return "undefined"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		panic(fmt.Sprintf("literalSource: unexpected literal value %T", v))
	}
}

func variableSource(v *ast.Variable) string {
	var s string
	switch v.VariableType {
	case ast.Identifier:
		s = v.Name
	case ast.DestructureArray:
		parts := make([]string, len(v.Values))
		for i, dv := range v.Values {
			parts[i] = destructuredValueSource(dv)
		}
		s = "[" + strings.Join(parts, ", ") + "]"
	case ast.DestructureObject:
		parts := make([]string, len(v.Values))
		for i, dv := range v.Values {
			parts[i] = destructuredValueSource(dv)
		}
		s = "{ " + strings.Join(parts, ", ") + " }"
	}
	if v.Default != nil {
		s += " = " + ToSource(v.Default)
	}
	return s
}

func destructuredValueSource(dv ast.DestructuredValue) string {
	if dv.Hole {
		return ""
	}
	if dv.IsRest {
		return "..." + dv.Name
	}
	s := dv.Name
	if dv.Default != nil {
		s += " = " + ToSource(dv.Default)
	}
	return s
}

func varDeclSource(n *ast.VarDecl) string {
	kw := "let"
	if n.IsConst {
		kw = "const"
	}
	return kw + " " + variableSource(n.Variable) + ";"
}

func importSource(n *ast.Import) string {
	switch {
	case n.DefaultName != "":
		return "import " + n.DefaultName + " from " + strconv.Quote(n.FromFile) + ";"
	case n.NamespaceName != "":
		return "import * as " + n.NamespaceName + " from " + strconv.Quote(n.FromFile) + ";"
	case len(n.Objects) > 0:
		parts := make([]string, len(n.Objects))
		for i, o := range n.Objects {
			if o.Alias != "" && o.Alias != o.Name {
				parts[i] = o.Name + " as " + o.Alias
			} else {
				parts[i] = o.Name
			}
		}
		return "import { " + strings.Join(parts, ", ") + " } from " + strconv.Quote(n.FromFile) + ";"
	default:
		return "import " + strconv.Quote(n.FromFile) + ";"
	}
}

func exportSource(n *ast.Export) string {
	switch {
	case n.DefaultValue != nil:
		return "export default " + ToSource(n.DefaultValue) + ";"
	case n.VarDecl != nil:
		return "export " + varDeclSource(n.VarDecl)
	case n.From != nil && n.From.All:
		return "export * from " + strconv.Quote(n.From.File) + ";"
	case n.From != nil:
		parts := make([]string, len(n.From.Named))
		for i, e := range n.From.Named {
			if e.Alias != "" && e.Alias != e.Name {
				parts[i] = e.Name + " as " + e.Alias
			} else {
				parts[i] = e.Name
			}
		}
		return "export { " + strings.Join(parts, ", ") + " } from " + strconv.Quote(n.From.File) + ";"
	default:
		return ""
	}
}
