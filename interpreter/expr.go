package interpreter

import (
	"github.com/alastairzotos/eco-parser/ast"
	"github.com/alastairzotos/eco-parser/runtime"
)

// evalArray evaluates elements left-to-right; a Spread element flattens
// into the result (spec §4.3).
func evalArray(n *ast.Array, rt *runtime.Runtime) (runtime.Value, error) {
	var out []runtime.Value
	for _, elem := range n.Elements {
		if spread, ok := elem.(*ast.Spread); ok {
			v, err := Evaluate(spread.Value, rt)
			if err != nil {
				return runtime.Undefined, err
			}
			if v.Kind == runtime.KindArray {
				out = append(out, v.Array...)
			} else {
				out = append(out, v)
			}
			continue
		}
		v, err := Evaluate(elem, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		out = append(out, v)
	}
	return runtime.Array(out), nil
}

// evalObject builds a new record (spec §4.3): Regular{key,value} assigns
// the evaluated value, or Load(key) for a shorthand property; Dynamic
// computes the key; Spread merges the evaluated value's own properties.
func evalObject(n *ast.Object, rt *runtime.Runtime) (runtime.Value, error) {
	obj := runtime.NewObject()
	for _, field := range n.Fields {
		switch field.Kind {
		case ast.FieldRegular:
			if field.Value != nil {
				v, err := Evaluate(field.Value, rt)
				if err != nil {
					return runtime.Undefined, err
				}
				obj.Set(field.Key, v)
			} else {
				obj.Set(field.Key, rt.GetLocal(field.Key))
			}
		case ast.FieldDynamic:
			key, err := Evaluate(field.KeyExpr, rt)
			if err != nil {
				return runtime.Undefined, err
			}
			v, err := Evaluate(field.Value, rt)
			if err != nil {
				return runtime.Undefined, err
			}
			obj.Set(key.String(), v)
		case ast.FieldSpread:
			v, err := Evaluate(field.Value, rt)
			if err != nil {
				return runtime.Undefined, err
			}
			if v.Kind == runtime.KindObject && v.Obj != nil {
				for _, k := range v.Obj.Keys {
					val, _ := v.Obj.Get(k)
					obj.Set(k, val)
				}
			}
		}
	}
	return runtime.FromObject(obj), nil
}

// evalTemplateString concatenates the string forms of each evaluated part
// in order (spec §4.3).
func evalTemplateString(n *ast.TemplateString, rt *runtime.Runtime) (runtime.Value, error) {
	var out string
	for _, part := range n.Parts {
		v, err := Evaluate(part, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		out += v.String()
	}
	return runtime.String(out), nil
}

// evalHTML evaluates attributes and children, looks up the tag name in
// the scope chain, and constructs the opaque HtmlElement (spec §4.3).
func evalHTML(n *ast.HTML, rt *runtime.Runtime) (runtime.Value, error) {
	attrs := runtime.NewObject()
	for _, a := range n.Attributes {
		if a.Value == nil {
			attrs.Set(a.Name, runtime.Bool(true))
			continue
		}
		v, err := Evaluate(a.Value, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		attrs.Set(a.Name, v)
	}

	var children []runtime.Value
	for _, c := range n.Children {
		v, err := Evaluate(c, rt)
		if err != nil {
			return runtime.Undefined, err
		}
		children = append(children, v)
	}

	var tagOrComponent runtime.Value
	if n.TagName == "" {
		tagOrComponent = runtime.String("")
	} else if bound := rt.GetLocal(n.TagName); bound.Kind == runtime.KindFunction {
		tagOrComponent = bound
	} else {
		tagOrComponent = runtime.String(n.TagName)
	}

	ctor := rt.HtmlCtor
	if ctor == nil {
		ctor = runtime.DefaultHtmlElement
	}
	return runtime.FromHtml(ctor(tagOrComponent, attrs, children)), nil
}
