package runtime_test

import (
	"testing"

	"github.com/alastairzotos/eco-parser/runtime"
)

func TestGetLocalFallsBackToGlobal(t *testing.T) {
	global := runtime.NewObject()
	global.Set("g", runtime.Number(7))
	rt := runtime.New(global)
	if got := rt.GetLocal("g"); got.Number != 7 {
		t.Errorf("got %v, want 7", got)
	}
	if got := rt.GetLocal("missing"); got.Kind != runtime.KindUndefined {
		t.Errorf("got %v, want undefined", got)
	}
}

func TestSetLocalWritesInnermostExistingFrame(t *testing.T) {
	rt := runtime.New(nil)
	rt.Declare("x", runtime.Number(1))
	rt.PushScope()
	rt.SetLocal("x", runtime.Number(2))
	if got := rt.GetLocal("x"); got.Number != 2 {
		t.Errorf("got %v, want 2", got)
	}
	rt.PopScope()
	if got := rt.GetLocal("x"); got.Number != 2 {
		t.Errorf("got %v, want 2 after popping the child frame", got)
	}
}

func TestSetLocalDropsWriteWhenUnbound(t *testing.T) {
	rt := runtime.New(nil)
	rt.SetLocal("never-declared", runtime.Number(1))
	if got := rt.GetLocal("never-declared"); got.Kind != runtime.KindUndefined {
		t.Errorf("got %v, want undefined (write should be silently dropped)", got)
	}
}

func TestGetFullScopeInnerOverridesOuter(t *testing.T) {
	rt := runtime.New(nil)
	rt.Declare("x", runtime.Number(1))
	rt.PushScope()
	rt.Declare("x", runtime.Number(2))
	rt.Declare("y", runtime.Number(3))

	snapshot := rt.GetFullScope()
	if snapshot["x"].Number != 2 {
		t.Errorf("got x=%v, want 2 (inner frame wins)", snapshot["x"].Number)
	}
	if snapshot["y"].Number != 3 {
		t.Errorf("got y=%v, want 3", snapshot["y"].Number)
	}
}

// EnterClosureScope must isolate the callee from the caller's live frames:
// a name declared in the caller's current block, after the closure
// captured its snapshot, must not be visible inside the call.
func TestEnterClosureScopeIsolatesCallerFrames(t *testing.T) {
	rt := runtime.New(nil)
	captured := rt.GetFullScope() // empty at this point

	rt.Declare("laterCallerLocal", runtime.Number(99))

	restore := rt.EnterClosureScope(captured)
	if got := rt.GetLocal("laterCallerLocal"); got.Kind != runtime.KindUndefined {
		t.Errorf("closure call should not see the caller's live local, got %v", got)
	}
	restore()

	if got := rt.GetLocal("laterCallerLocal"); got.Number != 99 {
		t.Errorf("restore() should bring back the caller's frame, got %v", got)
	}
}

func TestPushPopThisStack(t *testing.T) {
	rt := runtime.New(nil)
	rt.PushThis(runtime.String("a"))
	rt.PushThis(runtime.String("b"))
	if got := rt.GetThis(); got.Str != "b" {
		t.Errorf("got %q, want %q", got.Str, "b")
	}
	rt.PopThis()
	if got := rt.GetThis(); got.Str != "a" {
		t.Errorf("got %q, want %q", got.Str, "a")
	}
}
