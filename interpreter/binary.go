package interpreter

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/runtime"
)

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func evalUnary(n *ast.Unary, rt *runtime.Runtime) (runtime.Value, error) {
	v, err := Evaluate(n.Expr, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	switch n.Op {
	case "!":
		return runtime.Bool(!v.Truthy()), nil
	case "-":
		return runtime.Number(-numberOf(v)), nil
	}
	return runtime.Undefined, errf(n.PosVal, "unsupported unary operator %q", n.Op)
}

func evalTernary(n *ast.Ternary, rt *runtime.Runtime) (runtime.Value, error) {
	cond, err := Evaluate(n.Cond, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	if cond.Truthy() {
		return Evaluate(n.Then, rt)
	}
	return Evaluate(n.Else, rt)
}

func evalBinary(n *ast.Binary, rt *runtime.Runtime) (runtime.Value, error) {
	// && and || short-circuit: the right operand is only evaluated when
	// the left doesn't already decide the result (spec §4.3).
	if n.Op == "&&" {
		left, err := Evaluate(n.Left, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		if !left.Truthy() {
			return left, nil
		}
		return Evaluate(n.Right, rt)
	}
	if n.Op == "||" {
		left, err := Evaluate(n.Left, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		if left.Truthy() {
			return left, nil
		}
		return Evaluate(n.Right, rt)
	}

	left, err := Evaluate(n.Left, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	right, err := Evaluate(n.Right, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	return applyBinaryOp(n.Op, left, right, n.PosVal)
}

// applyBinaryOp implements the arithmetic, comparison, and equality
// operators (spec §4.3), shared with compound assignment (`+=` etc).
func applyBinaryOp(op string, left, right runtime.Value, pos int) (runtime.Value, error) {
	switch op {
	case "+":
		if left.Kind == runtime.KindString || right.Kind == runtime.KindString {
			return runtime.String(left.String() + right.String()), nil
		}
		return runtime.Number(numberOf(left) + numberOf(right)), nil
	case "-":
		return runtime.Number(numberOf(left) - numberOf(right)), nil
	case "*":
		return runtime.Number(numberOf(left) * numberOf(right)), nil
	case "/":
		return runtime.Number(numberOf(left) / numberOf(right)), nil
	case "===":
		return runtime.Bool(strictEquals(left, right)), nil
	case "!==":
		return runtime.Bool(!strictEquals(left, right)), nil
	case "==":
		return runtime.Bool(looseEquals(left, right)), nil
	case "!=":
		return runtime.Bool(!looseEquals(left, right)), nil
	case "<":
		return runtime.Bool(compare(left, right) < 0), nil
	case "<=":
		return runtime.Bool(compare(left, right) <= 0), nil
	case ">":
		return runtime.Bool(compare(left, right) > 0), nil
	case ">=":
		return runtime.Bool(compare(left, right) >= 0), nil
	}
	return runtime.Undefined, errf(pos, "unsupported binary operator %q", op)
}

func numberOf(v runtime.Value) float64 {
	switch v.Kind {
	case runtime.KindNumber:
		return v.Number
	case runtime.KindBool:
		if v.Bool {
			return 1
		}
		return 0
	case runtime.KindString:
		n, err := parseNumber(v.Str)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func compare(l, r runtime.Value) int {
	if l.Kind == runtime.KindString && r.Kind == runtime.KindString {
		switch {
		case l.Str < r.Str:
			return -1
		case l.Str > r.Str:
			return 1
		default:
			return 0
		}
	}
	ln, rn := numberOf(l), numberOf(r)
	switch {
	case ln < rn:
		return -1
	case ln > rn:
		return 1
	default:
		return 0
	}
}

// strictEquals implements `===`: same kind and same value, with reference
// identity for arrays/objects/functions (spec §9 Open Question: host
// values compare by Go `==` on the Host field when the dynamic type
// supports it, else are always unequal).
func strictEquals(l, r runtime.Value) bool {
	if l.Kind != r.Kind {
		return false
	}
	switch l.Kind {
	case runtime.KindUndefined, runtime.KindNull:
		return true
	case runtime.KindBool:
		return l.Bool == r.Bool
	case runtime.KindNumber:
		return l.Number == r.Number
	case runtime.KindString:
		return l.Str == r.Str
	case runtime.KindArray:
		return sameArray(l.Array, r.Array)
	case runtime.KindObject:
		return l.Obj == r.Obj
	case runtime.KindFunction:
		return l.Fn == r.Fn
	case runtime.KindHtmlElement:
		return l.Html == r.Html
	default:
		if l.Host != nil && !reflect.TypeOf(l.Host).Comparable() {
			return false
		}
		return l.Host == r.Host
	}
}

// sameArray reports reference identity: true when both slices share the
// same backing array (the same array literal evaluation), matching the
// spec's reference-equality rule for arrays under `===`.
func sameArray(a, b []runtime.Value) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

// looseEquals implements `==` (spec §9 Open Question): same kinds compare
// under strict equality; null and undefined equal each other and nothing
// else (so `null == 0` is false); any other mix of kinds compares both
// sides numerically through numberOf (strings parsed, booleans 1/0, every
// other kind 0).
func looseEquals(l, r runtime.Value) bool {
	if l.Kind == r.Kind {
		return strictEquals(l, r)
	}
	if isNullish(l) && isNullish(r) {
		return true
	}
	if isNullish(l) || isNullish(r) {
		return false
	}
	return numberOf(l) == numberOf(r)
}

func isNullish(v runtime.Value) bool {
	return v.Kind == runtime.KindUndefined || v.Kind == runtime.KindNull
}
