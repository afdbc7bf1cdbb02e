// Package interpreter implements the tree-walking evaluator described in
// spec §4.3: a single Evaluate entry point dispatching on ast.Node via a
// type switch (mirroring the teacher's evaluator/generator packages,
// which are themselves free functions over ast.Node rather than methods
// on the node types — done here for the same reason: `#{…}` string-literal
// interpolation must re-invoke package parser, and ast must stay
// dependency-free).
package interpreter

import (
	"fmt"

	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/runtime"
)

// RuntimeError is a run-time evaluation failure (spec §7): illegal
// assignment, assignment failure, or any other evaluator-detected fault.
// User `throw` and host-raised exceptions propagate as runtime.Thrown /
// unchanged errors instead, so try/catch can tell them apart.
type RuntimeError struct {
	Pos int
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func errf(pos int, format string, args ...any) error {
	return &RuntimeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Evaluate dispatches node to its evaluation semantics (spec §4.3). It
// returns the non-local-return signal (see runtime.Unwind/AsUnwind) like
// any other error; callers that are not a function-call boundary must
// propagate it unchanged.
func Evaluate(node ast.Node, rt *runtime.Runtime) (runtime.Value, error) {
	switch n := node.(type) {
	// --- statements ---
	case *ast.Noop:
		return runtime.Undefined, nil
	case *ast.VarDecl:
		return evalVarDecl(n, rt)
	case *ast.Block:
		return evalBlock(n, rt)
	case *ast.If:
		return evalIf(n, rt)
	case *ast.While:
		return evalWhile(n, rt)
	case *ast.Return:
		return evalReturn(n, rt)
	case *ast.Throw:
		return evalThrow(n, rt)
	case *ast.TryCatch:
		return evalTryCatch(n, rt)
	case *ast.Import, *ast.Export:
		// No interpreter semantics (spec §4.3): these exist for the bundler.
		return runtime.Undefined, nil

	// --- expressions ---
	case *ast.Literal:
		return evalLiteral(n, rt)
	case *ast.Load:
		return rt.GetLocal(n.Name), nil
	case *ast.Parens:
		return Evaluate(n.Inner, rt)
	case *ast.Spread:
		return Evaluate(n.Value, rt)
	case *ast.Array:
		return evalArray(n, rt)
	case *ast.Object:
		return evalObject(n, rt)
	case *ast.Function:
		return evalFunction(n, rt)
	case *ast.Unary:
		return evalUnary(n, rt)
	case *ast.IncOrDec:
		return evalIncOrDec(n, rt)
	case *ast.Binary:
		return evalBinary(n, rt)
	case *ast.Assignment:
		return evalAssignment(n, rt)
	case *ast.Ternary:
		return evalTernary(n, rt)
	case *ast.ArrayAccess:
		return evalArrayAccess(n, rt)
	case *ast.FieldAccess:
		return evalFieldAccess(n, rt)
	case *ast.FuncCall:
		return evalFuncCall(n, rt)
	case *ast.MethodCall:
		return evalMethodCall(n, rt)
	case *ast.New:
		return evalNew(n, rt)
	case *ast.Typeof:
		v, err := Evaluate(n.Expr, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		return runtime.String(v.TypeOf()), nil
	case *ast.HTML:
		return evalHTML(n, rt)
	case *ast.HTMLExpr:
		return Evaluate(n.Expr, rt)
	case *ast.HTMLText:
		return runtime.String(n.Text), nil
	case *ast.TemplateString:
		return evalTemplateString(n, rt)
	case *ast.TemplateStringContent:
		return runtime.String(n.Text), nil
	}
	return runtime.Undefined, errf(node.Pos(), "unhandled node type %T", node)
}

// Run evaluates an entire program: each top-level statement in order, in
// the runtime's current scope frame (the base frame runtime.New creates);
// Run pushes no frame of its own. A top-level `return` ends the run with
// its value.
func Run(prog *ast.Program, rt *runtime.Runtime) (runtime.Value, error) {
	var last runtime.Value
	for _, stmt := range prog.Statements {
		v, err := Evaluate(stmt, rt)
		if err != nil {
			if ret, ok := runtime.AsUnwind(err); ok {
				return ret, nil
			}
			return runtime.Undefined, err
		}
		last = v
	}
	return last, nil
}

func evalVarDecl(n *ast.VarDecl, rt *runtime.Runtime) (runtime.Value, error) {
	var value runtime.Value
	if n.Variable.Default != nil {
		v, err := Evaluate(n.Variable.Default, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		value = v
	}
	// A `const`/`let` binding whose initializer is an anonymous function
	// (including an arrow) gets the declared name inferred onto the
	// closure, the same as a named function expression — this is what
	// lets `const g = n => n <= 1 ? 1 : n * g(n - 1);` see its own `g`
	// at call time via callValue's self-bind (spec §8 "recursion via
	// captured scope"): the closure's CapturedScope snapshot is taken
	// before this VarDecl declares the name, so without this inference
	// the callee's own name would otherwise be unreachable.
	if n.Variable.VariableType == ast.Identifier && value.Kind == runtime.KindFunction &&
		value.Fn != nil && value.Fn.Name == "" {
		value.Fn.Name = n.Variable.Name
	}
	if err := bindVariable(n.Variable, value, rt); err != nil {
		return runtime.Undefined, err
	}
	return runtime.Undefined, nil
}

func evalBlock(n *ast.Block, rt *runtime.Runtime) (runtime.Value, error) {
	rt.PushScope()
	defer rt.PopScope()

	var last runtime.Value
	for _, stmt := range n.Statements {
		v, err := Evaluate(stmt, rt)
		if err != nil {
			// Propagate unwind/exceptions after cleanup: the deferred
			// PopScope above runs regardless (spec §3 invariant).
			return runtime.Undefined, err
		}
		last = v
	}
	return last, nil
}

func evalIf(n *ast.If, rt *runtime.Runtime) (runtime.Value, error) {
	cond, err := Evaluate(n.Cond, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	if cond.Truthy() {
		return Evaluate(n.Then, rt)
	}
	if n.Else != nil {
		return Evaluate(n.Else, rt)
	}
	return runtime.Undefined, nil
}

func evalWhile(n *ast.While, rt *runtime.Runtime) (runtime.Value, error) {
	var last runtime.Value
	for {
		cond, err := Evaluate(n.Cond, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		if !cond.Truthy() {
			break
		}
		v, err := Evaluate(n.Body, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		last = v
	}
	return last, nil
}

func evalReturn(n *ast.Return, rt *runtime.Runtime) (runtime.Value, error) {
	var value runtime.Value
	if n.Value != nil {
		v, err := Evaluate(n.Value, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		value = v
	}
	return runtime.Undefined, runtime.Unwind(value)
}

func evalThrow(n *ast.Throw, rt *runtime.Runtime) (runtime.Value, error) {
	v, err := Evaluate(n.Value, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	return runtime.Undefined, &runtime.Thrown{Value: v}
}

func evalTryCatch(n *ast.TryCatch, rt *runtime.Runtime) (runtime.Value, error) {
	runFinally := func() error {
		if n.Finally == nil {
			return nil
		}
		_, err := Evaluate(n.Finally, rt)
		return err
	}

	value, tryErr := Evaluate(n.Try, rt)

	if tryErr != nil {
		if _, isUnwind := runtime.AsUnwind(tryErr); isUnwind {
			// Non-local return is never catchable by user code (spec §7);
			// finally still runs on every exit path.
			if ferr := runFinally(); ferr != nil {
				return runtime.Undefined, ferr
			}
			return runtime.Undefined, tryErr
		}

		thrown, isThrown := tryErr.(*runtime.Thrown)
		if !isThrown {
			// A host-raised RuntimeError (or any non-Thrown error) is also
			// catchable per spec §7 ("any of the above except the
			// non-local-return signal").
			thrown = &runtime.Thrown{Value: runtime.String(tryErr.Error())}
		}

		if n.Catch == nil {
			if ferr := runFinally(); ferr != nil {
				return runtime.Undefined, ferr
			}
			return runtime.Undefined, tryErr
		}

		rt.PushScope()
		if n.CatchName != "" {
			rt.Declare(n.CatchName, thrown.Value)
		}
		value, tryErr = Evaluate(n.Catch, rt)
		rt.PopScope()
	}

	if ferr := runFinally(); ferr != nil {
		return runtime.Undefined, ferr
	}
	return value, tryErr
}
