package interpreter

import (
	"strings"

	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/parser"
	"github.com/alastairzotos/eco-parser/runtime"
)

// evalLiteral implements spec §4.3's Literal semantics: a string literal
// containing `#{` is interpolated by replacing each `#{ expr }`
// (non-greedy, no nesting) with the string form of its evaluated
// sub-expression, re-parsed on demand via the parser's expression entry
// point.
func evalLiteral(n *ast.Literal, rt *runtime.Runtime) (runtime.Value, error) {
	switch v := n.Value.(type) {
	case nil:
		return runtime.Null, nil
	case ast.Undefined:
		return runtime.Undefined, nil
	case bool:
		return runtime.Bool(v), nil
	case float64:
		return runtime.Number(v), nil
	case string:
		if !strings.Contains(v, "#{") {
			return runtime.String(v), nil
		}
		interpolated, err := interpolate(v, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		return runtime.String(interpolated), nil
	}
	return runtime.Undefined, errf(n.PosVal, "unrecognised literal value %T", n.Value)
}

// interpolate scans s for non-nesting `#{ expr }` runs and replaces each
// with the string form of its evaluated expression.
func interpolate(s string, rt *runtime.Runtime) (string, error) {
	var out strings.Builder
	rest := s
	for {
		idx := strings.Index(rest, "#{")
		if idx == -1 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:idx])
		after := rest[idx+2:]
		end := strings.IndexByte(after, '}')
		if end == -1 {
			// Unterminated interpolation: emit the rest verbatim.
			out.WriteString(rest[idx:])
			break
		}
		exprSrc := after[:end]
		expr, err := parser.ParseExpression(exprSrc)
		if err != nil {
			return "", err
		}
		v, err := Evaluate(expr, rt)
		if err != nil {
			return "", err
		}
		out.WriteString(v.String())
		rest = after[end+1:]
	}
	return out.String(), nil
}
