package interpreter_test

import (
	"testing"

	"github.com/alastairzotos/eco-parser/interpreter"
	"github.com/alastairzotos/eco-parser/parser"
	"github.com/alastairzotos/eco-parser/runtime"
)

func run(t *testing.T, src string) runtime.Value {
	t.Helper()
	prog, err := parser.ParseProgram(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	rt := runtime.New(nil)
	v, err := interpreter.Run(prog, rt)
	if err != nil {
		t.Fatalf("run %q: %v", src, err)
	}
	return v
}

func TestVarDeclAndBinaryArithmetic(t *testing.T) {
	v := run(t, "const x = 1 + 2; x;")
	if v.Kind != runtime.KindNumber || v.Number != 3 {
		t.Errorf("got %v, want number 3", v)
	}
}

func TestIfElse(t *testing.T) {
	v := run(t, `
const x = 5;
let result;
if (x > 3) {
  result = "big";
} else {
  result = "small";
}
result;
`)
	if v.Kind != runtime.KindString || v.Str != "big" {
		t.Errorf("got %v, want string \"big\"", v)
	}
}

func TestWhileLoop(t *testing.T) {
	v := run(t, `
let i = 0;
let sum = 0;
while (i < 5) {
  sum = sum + i;
  i = i + 1;
}
sum;
`)
	if v.Number != 10 {
		t.Errorf("got %v, want 10", v.Number)
	}
}

func TestClosureCapturesLexicalScopeOnly(t *testing.T) {
	// The returned closure must see `x` as captured at definition time,
	// and must not see the `x` declared in the caller's scope after the
	// closure escaped it.
	v := run(t, `
const makeAdder = function (x) {
  return function (n) {
    return x + n;
  };
};
const add10 = makeAdder(10);
let x = 999;
add10(5);
`)
	if v.Number != 15 {
		t.Errorf("got %v, want 15", v.Number)
	}
}

func TestNamedFunctionExpressionSelfRecursion(t *testing.T) {
	v := run(t, `
const fact = function fact(n) {
  if (n <= 1) { return 1; }
  return n * fact(n - 1);
};
fact(5);
`)
	if v.Number != 120 {
		t.Errorf("got %v, want 120", v.Number)
	}
}

func TestConstBoundArrowSelfRecursion(t *testing.T) {
	v := run(t, "const g = n => n <= 1 ? 1 : n * g(n - 1); g(5);")
	if v.Number != 120 {
		t.Errorf("got %v, want 120", v.Number)
	}
}

func TestArrowExpressionBodyImplicitReturn(t *testing.T) {
	v := run(t, "const double = (n) => n * 2; double(21);")
	if v.Number != 42 {
		t.Errorf("got %v, want 42", v.Number)
	}
}

func TestArrowBlockBodyNoImplicitReturn(t *testing.T) {
	v := run(t, "const f = (n) => { n * 2; }; f(21);")
	if v.Kind != runtime.KindUndefined {
		t.Errorf("got %v, want undefined", v)
	}
}

func TestArrayDestructureWithRestAndHole(t *testing.T) {
	v := run(t, `
const [a, , b, ...rest] = [1, 2, 3, 4, 5];
(rest[0] + rest[1]) + (a + b);
`)
	// Binary operators at a single precedence level are non-associative
	// (spec's documented idiosyncrasy: "a + b + c" would only combine the
	// first two operands), so the chained sum is built with explicit
	// parens around each pair instead of one flat additive chain.
	//
	// A hole consumes no source position of its own (see
	// bindArrayDestructure), so `b` binds [1]=2 and `...rest` binds
	// [2:]=[3,4,5], not [2]=3/[3:]=[4,5].
	want := 3.0 + 4 + 1 + 2
	if v.Number != want {
		t.Errorf("got %v, want %v", v.Number, want)
	}
}

func TestArrayDestructureHoleDoesNotConsumeRestElement(t *testing.T) {
	v := run(t, "const [a, , ...b] = [1, 2, 3, 4]; a + b.length;")
	if v.Number != 4 {
		t.Errorf("got %v, want 4", v.Number)
	}
}

func TestObjectDestructureWithDefault(t *testing.T) {
	v := run(t, `
const { a, b = 100 } = { a: 1 };
a + b;
`)
	if v.Number != 101 {
		t.Errorf("got %v, want 101", v.Number)
	}
}

func TestTryCatchCatchesThrow(t *testing.T) {
	v := run(t, `
let caught;
try {
  throw "boom";
} catch (e) {
  caught = e;
}
caught;
`)
	if v.Kind != runtime.KindString || v.Str != "boom" {
		t.Errorf("got %v, want string \"boom\"", v)
	}
}

func TestTryFinallyAlwaysRuns(t *testing.T) {
	v := run(t, `
let ran = false;
try {
  throw "x";
} catch (e) {
} finally {
  ran = true;
}
ran;
`)
	if v.Kind != runtime.KindBool || !v.Bool {
		t.Errorf("got %v, want true", v)
	}
}

func TestStrictEqualityArrayIdentity(t *testing.T) {
	v := run(t, `
const a = [1, 2];
const b = a;
const c = [1, 2];
[a === b, a === c];
`)
	if v.Kind != runtime.KindArray || len(v.Array) != 2 {
		t.Fatalf("got %v", v)
	}
	if !v.Array[0].Bool {
		t.Errorf("same-reference arrays should be ===")
	}
	if v.Array[1].Bool {
		t.Errorf("distinct arrays with equal contents should not be ===")
	}
}

func TestLooseEqualityCoercion(t *testing.T) {
	v := run(t, `["5" == 5, null == undefined, null == 0];`)
	want := []bool{true, true, false}
	for i, w := range want {
		if v.Array[i].Bool != w {
			t.Errorf("element %d: got %v, want %v", i, v.Array[i].Bool, w)
		}
	}
}

func TestTemplateStringInterpolation(t *testing.T) {
	v := run(t, `
const name = "world";
` + "`hello ${name}!`" + `;
`)
	if v.Str != "hello world!" {
		t.Errorf("got %q, want %q", v.Str, "hello world!")
	}
}

func TestTypeofMapping(t *testing.T) {
	v := run(t, `[typeof undefined, typeof null, typeof 1, typeof "s", typeof true, typeof [], typeof {}];`)
	want := []string{"undefined", "object", "number", "string", "boolean", "object", "object"}
	for i, w := range want {
		if v.Array[i].Str != w {
			t.Errorf("element %d: got %q, want %q", i, v.Array[i].Str, w)
		}
	}
}
