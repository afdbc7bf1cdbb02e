package interpreter

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/runtime"
)

// bindVariable binds value to v's pattern in the current (innermost) scope
// frame (spec §3 Variable / destructuring): a bare identifier binds
// directly; array/object destructuring distributes value's elements or
// fields across the pattern, falling back to each element's own default
// when its source position is missing or undefined.
func bindVariable(v *ast.Variable, value runtime.Value, rt *runtime.Runtime) error {
	switch v.VariableType {
	case ast.Identifier:
		rt.Declare(v.Name, value)
		return nil
	case ast.DestructureArray:
		return bindArrayDestructure(v.Values, value, rt)
	case ast.DestructureObject:
		return bindObjectDestructure(v.Values, value, rt)
	}
	return errf(v.PosVal, "unrecognised variable pattern")
}

func bindArrayDestructure(values []ast.DestructuredValue, value runtime.Value, rt *runtime.Runtime) error {
	var src []runtime.Value
	if value.Kind == runtime.KindArray {
		src = value.Array
	}
	index := 0
	for _, dv := range values {
		if dv.IsRest {
			var rest []runtime.Value
			if index < len(src) {
				rest = src[index:]
			}
			rt.Declare(dv.Name, runtime.Array(rest))
			return nil
		}
		if dv.Hole {
			// A hole is a pure placeholder in the pattern, not in the
			// source: it occupies no position of its own and does not
			// advance past a source element, so a following name or
			// `...rest` still starts at the same index the hole sits
			// at (`const [a, , ...b] = [1,2,3,4]` rest-binds `[2,3,4]`,
			// not `[3,4]`).
			continue
		}
		elem := runtime.Undefined
		if index < len(src) {
			elem = src[index]
		}
		index++
		if elem.Kind == runtime.KindUndefined && dv.Default != nil {
			d, err := Evaluate(dv.Default, rt)
			if err != nil {
				return err
			}
			elem = d
		}
		rt.Declare(dv.Name, elem)
	}
	return nil
}

func bindObjectDestructure(values []ast.DestructuredValue, value runtime.Value, rt *runtime.Runtime) error {
	var src *runtime.Object
	if value.Kind == runtime.KindObject {
		src = value.Obj
	}
	used := map[string]bool{}
	for _, dv := range values {
		if dv.IsRest {
			rest := runtime.NewObject()
			if src != nil {
				for _, k := range src.Keys {
					if used[k] {
						continue
					}
					v, _ := src.Get(k)
					rest.Set(k, v)
				}
			}
			rt.Declare(dv.Name, runtime.FromObject(rest))
			return nil
		}
		used[dv.Name] = true
		field := runtime.Undefined
		if src != nil {
			if v, ok := src.Get(dv.Name); ok {
				field = v
			}
		}
		if field.Kind == runtime.KindUndefined && dv.Default != nil {
			d, err := Evaluate(dv.Default, rt)
			if err != nil {
				return err
			}
			field = d
		}
		rt.Declare(dv.Name, field)
	}
	return nil
}

func evalArrayAccess(n *ast.ArrayAccess, rt *runtime.Runtime) (runtime.Value, error) {
	obj, err := Evaluate(n.Object, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	idx, err := Evaluate(n.Index, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	return indexValue(obj, idx), nil
}

func indexValue(obj, idx runtime.Value) runtime.Value {
	switch obj.Kind {
	case runtime.KindArray:
		if idx.Kind != runtime.KindNumber {
			return runtime.Undefined
		}
		i := int(idx.Number)
		if i < 0 || i >= len(obj.Array) {
			return runtime.Undefined
		}
		return obj.Array[i]
	case runtime.KindObject:
		if obj.Obj == nil {
			return runtime.Undefined
		}
		if v, ok := obj.Obj.Get(idx.String()); ok {
			return v
		}
		return runtime.Undefined
	case runtime.KindString:
		if idx.Kind != runtime.KindNumber {
			return runtime.Undefined
		}
		i := int(idx.Number)
		if i < 0 || i >= len(obj.Str) {
			return runtime.Undefined
		}
		return runtime.String(string(obj.Str[i]))
	default:
		return runtime.Undefined
	}
}

func evalFieldAccess(n *ast.FieldAccess, rt *runtime.Runtime) (runtime.Value, error) {
	obj, err := Evaluate(n.Object, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	if obj.Kind == runtime.KindArray && n.Field == "length" {
		return runtime.Number(float64(len(obj.Array))), nil
	}
	if obj.Kind != runtime.KindObject || obj.Obj == nil {
		return runtime.Undefined, nil
	}
	if v, ok := obj.Obj.Get(n.Field); ok {
		return v, nil
	}
	return runtime.Undefined, nil
}

// evalAssignment implements `=`, `+=`, `-=`, `*=`, `/=` against a Load,
// ArrayAccess, or FieldAccess target (spec §4.3); any other target is an
// illegal-assignment RuntimeError.
func evalAssignment(n *ast.Assignment, rt *runtime.Runtime) (runtime.Value, error) {
	rhs, err := Evaluate(n.Value, rt)
	if err != nil {
		return runtime.Undefined, err
	}

	newValue := rhs
	if n.Op != "=" {
		current, err := Evaluate(n.Target, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		op := n.Op[:len(n.Op)-1] // "+=" -> "+"
		newValue, err = applyBinaryOp(op, current, rhs, n.PosVal)
		if err != nil {
			return runtime.Undefined, err
		}
	}

	if err := assignTo(n.Target, newValue, rt); err != nil {
		return runtime.Undefined, err
	}
	return newValue, nil
}

// assignTo writes value to the lvalue target, which must be a Load,
// ArrayAccess, or FieldAccess (spec §4.3 Assignment invariant).
func assignTo(target ast.Expr, value runtime.Value, rt *runtime.Runtime) error {
	switch t := target.(type) {
	case *ast.Load:
		rt.SetLocal(t.Name, value)
		return nil
	case *ast.ArrayAccess:
		obj, err := Evaluate(t.Object, rt)
		if err != nil {
			return err
		}
		idx, err := Evaluate(t.Index, rt)
		if err != nil {
			return err
		}
		return setIndexed(obj, idx, value, t.PosVal)
	case *ast.FieldAccess:
		obj, err := Evaluate(t.Object, rt)
		if err != nil {
			return err
		}
		if obj.Kind != runtime.KindObject || obj.Obj == nil {
			return errf(t.PosVal, "cannot assign field %q on a non-object", t.Field)
		}
		obj.Obj.Set(t.Field, value)
		return nil
	}
	return errf(target.Pos(), "illegal assignment target")
}

func setIndexed(obj, idx, value runtime.Value, pos int) error {
	switch obj.Kind {
	case runtime.KindArray:
		if idx.Kind != runtime.KindNumber {
			return errf(pos, "array index must be a number")
		}
		i := int(idx.Number)
		if i < 0 {
			return errf(pos, "negative array index")
		}
		// In-bounds assignment mutates the shared backing array directly,
		// visible through every other Value sharing this slice. Growing
		// the array is a known limitation: append may reallocate, and the
		// grown slice header only lives in this local copy, not in the
		// lvalue's original storage.
		if i >= len(obj.Array) {
			return errf(pos, "array index %d out of bounds (length %d)", i, len(obj.Array))
		}
		obj.Array[i] = value
		return nil
	case runtime.KindObject:
		if obj.Obj == nil {
			return errf(pos, "cannot assign into a nil object")
		}
		obj.Obj.Set(idx.String(), value)
		return nil
	}
	return errf(pos, "cannot index-assign into a %s", obj.Kind)
}

// evalIncOrDec implements prefix/postfix `++`/`--` (spec §4.3): Expr must
// be a Load, ArrayAccess, or FieldAccess. The result is the updated value
// for prefix, the pre-update value for postfix.
func evalIncOrDec(n *ast.IncOrDec, rt *runtime.Runtime) (runtime.Value, error) {
	switch n.Expr.(type) {
	case *ast.Load, *ast.ArrayAccess, *ast.FieldAccess:
	default:
		return runtime.Undefined, errf(n.PosVal, "illegal %s target", n.Op)
	}

	current, err := Evaluate(n.Expr, rt)
	if err != nil {
		return runtime.Undefined, err
	}
	delta := 1.0
	if n.Op == "--" {
		delta = -1.0
	}
	updated := runtime.Number(numberOf(current) + delta)
	if err := assignTo(n.Expr, updated, rt); err != nil {
		return runtime.Undefined, err
	}
	if n.IsPrefix {
		return updated, nil
	}
	return current, nil
}
