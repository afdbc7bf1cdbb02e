package runtime

// Scope is one level of the scope stack: a mapping from name to value.
type Scope map[string]Value

// Closure is a captured lexical environment plus a callable adapter (spec
// §3/§9): {name, captured_scope, parameters_ref, body_ref, this_arg}. A
// Closure holds no reference to any Runtime; the interpreter passes the
// Runtime in at each call, so there is no closure↔runtime cycle.
type Closure struct {
	Name          string
	CapturedScope Scope
	// Parameters and Body are opaque references to []*ast.Variable and
	// ast.Stmt, typed as `any` here so that package runtime has no
	// import-time dependency on package ast — which in turn lets package
	// ast stay dependency-free, per the teacher's own layering. The
	// interpreter package, which imports both, type-asserts them back.
	Parameters []any
	Body       any
	ThisArg    Value
	IsArrow    bool
}

// Thrown wraps a user `throw`ed value so try/catch can distinguish it from
// a host Go error.
type Thrown struct {
	Value Value
}

func (t *Thrown) Error() string { return "uncaught exception: " + t.Value.String() }

// Unwind builds the internal non-local-return signal (spec §3/§9): any
// evaluation may yield it; only a function-call boundary converts it into
// the call's return value. It is returned as a sentinel error carrying v;
// AsUnwind recognises and unwraps it.
func Unwind(v Value) error { return &unwindErr{v} }

type unwindErr struct{ v Value }

func (u *unwindErr) Error() string { return "return" }

// AsUnwind reports whether err is a non-local-return signal, returning its
// payload.
func AsUnwind(err error) (Value, bool) {
	if u, ok := err.(*unwindErr); ok {
		return u.v, true
	}
	return Undefined, false
}

// Runtime is the mutable evaluation state of one program evaluation: the
// global record, the scope-frame stack, the `this` register, and the
// closure stack (spec §3/§4.4). A Runtime instance is strictly owned by
// one evaluation; it is never shared across concurrent evaluations
// (spec §5).
type Runtime struct {
	Global       *Object
	scopes       []Scope
	this         []Value
	closureStack []*Closure

	HtmlCtor    HtmlConstructor
	Instantiate func(className string, args []Value) (Value, error)
}

// New creates a Runtime over the given global bindings. The scope stack
// starts with one frame, satisfying the invariant that it is never empty
// during evaluation of any node below the root (spec §3).
func New(global *Object) *Runtime {
	if global == nil {
		global = NewObject()
	}
	rt := &Runtime{Global: global, HtmlCtor: DefaultHtmlElement}
	rt.scopes = []Scope{{}}
	rt.this = []Value{Undefined}
	return rt
}

// PushScope pushes a new frame (or frame, if given) onto the scope stack.
func (rt *Runtime) PushScope(frame ...Scope) {
	if len(frame) > 0 && frame[0] != nil {
		rt.scopes = append(rt.scopes, frame[0])
	} else {
		rt.scopes = append(rt.scopes, Scope{})
	}
}

// PopScope pops the innermost frame.
func (rt *Runtime) PopScope() {
	rt.scopes = rt.scopes[:len(rt.scopes)-1]
}

// GetScope returns the innermost frame.
func (rt *Runtime) GetScope() Scope {
	return rt.scopes[len(rt.scopes)-1]
}

// ScopeDepth returns the current scope-stack depth, for invariant checks.
func (rt *Runtime) ScopeDepth() int { return len(rt.scopes) }

// ClosureDepth returns the current closure-stack depth, for invariant
// checks.
func (rt *Runtime) ClosureDepth() int { return len(rt.closureStack) }

// EnterClosureScope swaps in a fresh scope stack for a closure invocation:
// a copy of the closure's captured snapshot, plus one empty frame for
// parameters and locals. This isolates the call from the caller's live
// scope frames — a closure must only see what it captured lexically plus
// the global record, never the caller's in-flight block locals (spec §3).
// The returned restore function must be called exactly once, on every
// exit path, to put the caller's stack back.
func (rt *Runtime) EnterClosureScope(captured Scope) (restore func()) {
	old := rt.scopes
	clone := Scope{}
	for k, v := range captured {
		clone[k] = v
	}
	rt.scopes = []Scope{clone, {}}
	return func() { rt.scopes = old }
}

// GetFullScope returns a flattened snapshot of the scope chain, outer
// frames first, inner frames overwriting outer bindings — the capture
// snapshot a Function evaluation takes at creation time (spec §3).
func (rt *Runtime) GetFullScope() Scope {
	flat := Scope{}
	for _, frame := range rt.scopes {
		for k, v := range frame {
			flat[k] = v
		}
	}
	return flat
}

// GetLocal walks the scope stack top-down for name, falling back to the
// global record (spec §4.3 Load semantics): "returns global[name] when
// truthy, else undefined" when not found in any frame.
func (rt *Runtime) GetLocal(name string) Value {
	for i := len(rt.scopes) - 1; i >= 0; i-- {
		if v, ok := rt.scopes[i][name]; ok {
			return v
		}
	}
	if v, ok := rt.Global.Get(name); ok && v.Truthy() {
		return v
	}
	return Undefined
}

// SetLocal writes to the innermost frame that already has the name bound,
// walking outward. If the name is not bound in any frame, the write is
// silently dropped (spec §9 known limitation).
func (rt *Runtime) SetLocal(name string, v Value) {
	for i := len(rt.scopes) - 1; i >= 0; i-- {
		if _, ok := rt.scopes[i][name]; ok {
			rt.scopes[i][name] = v
			return
		}
	}
}

// Declare binds name in the current (innermost) frame, used by VarDecl and
// parameter binding.
func (rt *Runtime) Declare(name string, v Value) {
	rt.GetScope()[name] = v
}

// PushStack pushes a closure onto the active-closure stack.
func (rt *Runtime) PushStack(c *Closure) { rt.closureStack = append(rt.closureStack, c) }

// PopStack pops the active-closure stack.
func (rt *Runtime) PopStack() { rt.closureStack = rt.closureStack[:len(rt.closureStack)-1] }

// StackTop returns the innermost active closure, or nil if none.
func (rt *Runtime) StackTop() *Closure {
	if len(rt.closureStack) == 0 {
		return nil
	}
	return rt.closureStack[len(rt.closureStack)-1]
}

// GetThis returns the current `this` value.
func (rt *Runtime) GetThis() Value { return rt.this[len(rt.this)-1] }

// PushThis pushes a new `this` value, scoped to the current call.
func (rt *Runtime) PushThis(v Value) { rt.this = append(rt.this, v) }

// PopThis pops the `this` register.
func (rt *Runtime) PopThis() { rt.this = rt.this[:len(rt.this)-1] }
