package interpreter

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/runtime"
)

// evalFunction creates a Closure capturing the current flattened scope and
// `this` (spec §3/§4.3): a function expression's value is the closure
// itself, not its invocation.
func evalFunction(n *ast.Function, rt *runtime.Runtime) (runtime.Value, error) {
	params := make([]any, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = p
	}
	closure := &runtime.Closure{
		Name:          n.Name,
		CapturedScope: rt.GetFullScope(),
		Parameters:    params,
		Body:          n.Body,
		IsArrow:       n.IsArrow,
	}
	if !n.IsArrow {
		closure.ThisArg = rt.GetThis()
	}
	return runtime.FromClosure(closure), nil
}

func evalFuncCall(n *ast.FuncCall, rt *runtime.Runtime) (runtime.Value, error) {
	callee, err := Evaluate(n.Callee, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	args, err := evalArgs(n.Args, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	return callValue(callee, runtime.FromObject(rt.Global), args, n.PosVal, rt)
}

func evalMethodCall(n *ast.MethodCall, rt *runtime.Runtime) (runtime.Value, error) {
	obj, err := Evaluate(n.Object, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	args, err := evalArgs(n.Args, rt)
	if err != nil {
		return runtime.Undefined, err
	}

	var fn runtime.Value
	if obj.Kind == runtime.KindObject && obj.Obj != nil {
		fn, _ = obj.Obj.Get(n.FieldName)
	}
	if fn.Kind != runtime.KindFunction {
		return runtime.Undefined, errf(n.PosVal, "%s is not a function", n.FieldName)
	}
	return callValue(fn, obj, args, n.PosVal, rt)
}

// evalArgs evaluates a call's argument list. Spread arguments evaluate
// transparently (not flattened at call sites, spec §9 known limitation).
func evalArgs(argExprs []ast.Expr, rt *runtime.Runtime) ([]runtime.Value, error) {
	args := make([]runtime.Value, 0, len(argExprs))
	for _, a := range argExprs {
		v, err := Evaluate(a, rt)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// callValue invokes a function Value with the given this-binding and
// arguments: pushes the closure's captured scope as a fresh frame, a
// parameter frame binding args to parameters (honoring destructuring and
// defaults), evaluates the body, and converts a non-local-return into the
// call's result (spec §3/§4.3 — the one place an Unwind is consumed rather
// than propagated).
func callValue(fn runtime.Value, thisArg runtime.Value, args []runtime.Value, pos int, rt *runtime.Runtime) (runtime.Value, error) {
	if fn.Kind != runtime.KindFunction || fn.Fn == nil {
		return runtime.Undefined, errf(pos, "value is not callable")
	}
	closure := fn.Fn

	callThis := closure.ThisArg
	if closure.IsArrow {
		callThis = rt.GetThis()
	} else if thisArg.Kind != runtime.KindUndefined {
		callThis = thisArg
	}

	rt.PushThis(callThis)
	rt.PushStack(closure)
	restoreScope := rt.EnterClosureScope(closure.CapturedScope)

	defer func() {
		restoreScope()
		rt.PopStack()
		rt.PopThis()
	}()

	if closure.Name != "" {
		// A named function expression can recurse by its own name (spec
		// §4.3): bind it in the call's param frame, not the captured
		// snapshot, so it doesn't leak into sibling closures.
		rt.Declare(closure.Name, fn)
	}

	for i, p := range closure.Parameters {
		v, ok := p.(*ast.Variable)
		if !ok {
			return runtime.Undefined, errf(pos, "malformed parameter")
		}
		var arg runtime.Value
		if i < len(args) {
			arg = args[i]
		}
		if arg.Kind == runtime.KindUndefined && v.Default != nil {
			d, err := Evaluate(v.Default, rt)
			if err != nil {
				return runtime.Undefined, err
			}
			arg = d
		}
		if err := bindVariable(v, arg, rt); err != nil {
			return runtime.Undefined, err
		}
	}

	body, ok := closure.Body.(ast.Stmt)
	if !ok {
		return runtime.Undefined, errf(pos, "malformed function body")
	}

	result, err := Evaluate(body, rt)
	if err != nil {
		if ret, isUnwind := runtime.AsUnwind(err); isUnwind {
			return ret, nil
		}
		return runtime.Undefined, err
	}

	// An arrow function's expression body is its implicit return value; a
	// block-bodied function with no explicit `return` yields undefined.
	if closure.IsArrow {
		if _, isBlock := closure.Body.(*ast.Block); !isBlock {
			return result, nil
		}
	}
	return runtime.Undefined, nil
}

func evalNew(n *ast.New, rt *runtime.Runtime) (runtime.Value, error) {
	if rt.Instantiate == nil {
		return runtime.Undefined, errf(n.PosVal, "no host class %q is registered", n.ClassName)
	}
	args, err := evalArgs(n.Args, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	return rt.Instantiate(n.ClassName, args)
}
