// Package runtime implements the mutable evaluation state described in
// spec §3/§4.4: a global record, a scope-frame stack, a `this` register,
// and the closure stack, plus the dynamically-typed Value sum (spec §9).
//
// Grounded on Metnew-simple-go-js-interpreter/runtime/{value,environment}.go
// for the tagged-value-plus-frame-stack shape, and daios-ai-msg/types.go
// for the ordered-object-field pattern.
package runtime

import "fmt"

// Kind tags a Value's dynamic type.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindFunction
	KindHtmlElement
	KindHost
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindHtmlElement:
		return "html_element"
	case KindHost:
		return "host"
	}
	return "unknown"
}

// Object is an insertion-ordered record: fields preserve declaration order
// so that spread/shorthand evaluation (spec §4.3) is deterministic.
type Object struct {
	Keys   []string
	Values map[string]Value
}

// NewObject returns an empty, ordered object record.
func NewObject() *Object {
	return &Object{Values: map[string]Value{}}
}

// Get returns the field's value and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// Set assigns key, appending it to Keys on first write.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.Values[key]; !exists {
		o.Keys = append(o.Keys, key)
	}
	o.Values[key] = v
}

// Value is the dynamically-typed value sum evaluation produces and
// consumes: {undefined, null, bool, number, string, array, object,
// function, html_element, host_value} (spec §9).
type Value struct {
	Kind Kind

	Bool   bool
	Number float64
	Str    string
	Array  []Value
	Obj    *Object
	Fn     *Closure
	Html   *HtmlElement
	Host   any // an opaque host-supplied value (e.g. a host exception)
}

var Undefined = Value{Kind: KindUndefined}
var Null = Value{Kind: KindNull}

func Bool(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }
func String(s string) Value { return Value{Kind: KindString, Str: s} }
func Array(vs []Value) Value {
	return Value{Kind: KindArray, Array: vs}
}
func FromObject(o *Object) Value { return Value{Kind: KindObject, Obj: o} }
func FromClosure(c *Closure) Value {
	return Value{Kind: KindFunction, Fn: c}
}
func FromHtml(h *HtmlElement) Value {
	return Value{Kind: KindHtmlElement, Html: h}
}
func FromHost(h any) Value { return Value{Kind: KindHost, Host: h} }

// Truthy implements the language's truthiness rule: false, 0, "", null,
// and undefined are falsy; everything else (including empty arrays and
// objects) is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindUndefined, KindNull:
		return false
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number != 0
	case KindString:
		return v.Str != ""
	default:
		return true
	}
}

// String implements fmt.Stringer with the language's string coercion,
// used by template strings, `+` concatenation, and `#{}` interpolation.
func (v Value) String() string {
	switch v.Kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Number)
	case KindString:
		return v.Str
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.String()
		}
		return joinComma(parts)
	case KindObject:
		return "[object Object]"
	case KindFunction:
		return "[function]"
	case KindHtmlElement:
		return "[html_element]"
	default:
		return fmt.Sprintf("%v", v.Host)
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

// TypeOf implements the spec §4.3 `typeof` mapping, including the
// intentionally-preserved JS quirk that `typeof null === "object"`
// (DESIGN.md Open Question).
func (v Value) TypeOf() string {
	switch v.Kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "object"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	default:
		return "object"
	}
}
