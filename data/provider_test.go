package data

import (
	"reflect"
	"testing"

	"github.com/gosoy/sauce/render"
)

// resolveBlocking drives a provider the way a renderer does: poll the
// status, wait on the detach source until ready, then resolve.
func resolveBlocking(t *testing.T, p ValueProvider) Value {
	t.Helper()
	for i := 0; ; i++ {
		if i > 100 {
			t.Fatal("provider never became ready")
		}
		var r = p.Status()
		if r.IsDone() {
			return p.Resolve()
		}
		r.Source().Wait()
	}
}

func TestCoerceToBool(t *testing.T) {
	tests := []struct {
		value    Value
		expected Bool
	}{
		{Null{}, Bool(false)},
		{Int(0), Bool(false)},
		{Int(3), Bool(true)},
		{String(""), Bool(false)},
		{String("x"), Bool(true)},
	}

	for _, test := range tests {
		// a ready provider coerces eagerly to a plain Bool
		var coerced = CoerceToBool(test.value)
		if b, ok := coerced.(Bool); !ok || b != test.expected {
			t.Errorf("CoerceToBool(%#v) => %#v, expected %#v", test.value, coerced, test.expected)
		}
	}
}

func TestCoerceToBoolDeferred(t *testing.T) {
	var sig = render.NewSignal()
	var coerced = CoerceToBool(FromFuture(sig))

	var r = coerced.Status()
	if r.IsDone() {
		t.Fatal("coercion of a pending provider is ready")
	}
	if r.Source() != sig {
		t.Errorf("detached on %v, expected the signal", r.Source())
	}

	// rendering before ready emits nothing and reports the detach
	var buf = render.NewBuffer(0)
	r, err := coerced.RenderAndResolve(buf)
	if err != nil {
		t.Fatal(err)
	}
	if r.IsDone() || buf.Len() != 0 {
		t.Fatalf("rendered %q from a pending coercion, result %v", buf.String(), r)
	}

	sig.Resolve("some text")
	if v := resolveBlocking(t, coerced); v != Bool(true) {
		t.Errorf("resolved to %#v, expected Bool(true)", v)
	}
	if r, _ := coerced.RenderAndResolve(buf); !r.IsDone() || buf.String() != "true" {
		t.Errorf("rendered %q with result %v, expected %q and done", buf.String(), r, "true")
	}
}

func TestWithDefault(t *testing.T) {
	var fallback = String("fallback")
	tests := []struct {
		provider ValueProvider
		expected Value
	}{
		{nil, fallback},
		{Undefined{}, fallback},
		{Null{}, Null{}},
		{Int(8), Int(8)},
		{Lazy(func() Value { return Undefined{} }), fallback},
		{Lazy(func() Value { return Int(8) }), Int(8)},
	}

	for _, test := range tests {
		var v = resolveBlocking(t, WithDefault(test.provider, fallback))
		if !reflect.DeepEqual(v, test.expected) {
			t.Errorf("WithDefault(%#v) resolved to %#v, expected %#v", test.provider, v, test.expected)
		}
	}
}

func TestWithDefaultPassThrough(t *testing.T) {
	// a resolved non-undefined value passes through unwrapped
	var v = String("present")
	if got := WithDefault(v, String("fallback")); got != v {
		t.Errorf("WithDefault returned %#v, expected the value itself", got)
	}
}

func TestWithDefaultStatus(t *testing.T) {
	var sig = render.NewSignal()
	var p = WithDefault(FromFuture(sig), String("fallback"))

	// the detach carries the underlying source
	var r = p.Status()
	if r.IsDone() {
		t.Fatal("ready before the source resolved")
	}
	if r.Source() != sig {
		t.Errorf("detached on %v, expected the signal", r.Source())
	}

	sig.Resolve(nil) // converts to Null, which is not substituted
	if v := resolveBlocking(t, p); v != (Null{}) {
		t.Errorf("resolved to %#v, expected Null", v)
	}
}

func TestWithDefaultUndefinedFuture(t *testing.T) {
	var sig = render.NewSignal()
	var p = WithDefault(FromFuture(sig), String("fallback"))

	sig.Resolve(Undefined{})
	if v := resolveBlocking(t, p); v != String("fallback") {
		t.Errorf("resolved to %#v, expected the fallback", v)
	}
	var buf = render.NewBuffer(0)
	if _, err := p.RenderAndResolve(buf); err != nil || buf.String() != "fallback" {
		t.Errorf("rendered %q (err %v), expected %q", buf.String(), err, "fallback")
	}
}

func TestListOf(t *testing.T) {
	var sig = render.NewSignal()
	var p = ListOf(Int(1), FromFuture(sig), String("c"))

	if r := p.Status(); r.IsDone() || r.Source() != sig {
		t.Fatalf("status %v, expected a detach on the pending member", r)
	}

	sig.Resolve(2)
	var v = resolveBlocking(t, p)
	if !reflect.DeepEqual(v, List{Int(1), Int(2), String("c")}) {
		t.Errorf("resolved to %#v", v)
	}
	// memoized: the same list comes back
	if second := p.Resolve(); !second.Equals(v) {
		t.Errorf("second resolve returned a different list")
	}
}

func TestRecordOf(t *testing.T) {
	var sig = render.NewSignal()
	var p = RecordOf(map[string]ValueProvider{
		"a": String("ready"),
		"b": FromFuture(sig),
	})

	if r := p.Status(); r.IsDone() || r.Source() != sig {
		t.Fatalf("status %v, expected a detach on the pending member", r)
	}

	sig.Resolve(true)
	var v = resolveBlocking(t, p)
	if !reflect.DeepEqual(v, Map{"a": String("ready"), "b": Bool(true)}) {
		t.Errorf("resolved to %#v", v)
	}
	if second := p.Resolve(); !second.Equals(v) {
		t.Errorf("second resolve returned a different map")
	}
}

func TestStatusNeverLimited(t *testing.T) {
	var p = NewCaching(
		func() render.Result { return render.Limited() },
		func() Value { return Int(1) })

	defer func() { recover() }()
	var r = p.Status()
	t.Errorf("expected panic from a limited status, got %v", r)
}

// The complete output of an incremental render matches rendering the
// resolved value in one shot, for every provider shape.
func TestIncrementalRenderEquivalence(t *testing.T) {
	var build = func() (ValueProvider, *render.Signal, *render.Signal) {
		var a, b = render.NewSignal(), render.NewSignal()
		return Concat(
			String("a="),
			FromFuture(a),
			Concat(String(" b="), WithDefault(FromFuture(b), String("?"))),
		), a, b
	}

	// incremental: render, parking on each detach as it appears
	var p, sigA, sigB = build()
	var buf = render.NewBuffer(0)
	var resolvers = []func(){
		func() { sigA.Resolve(1) },
		func() { sigB.Resolve(Undefined{}) },
	}
	for i := 0; ; i++ {
		if i > 10 {
			t.Fatal("render never completed")
		}
		r, err := p.RenderAndResolve(buf)
		if err != nil {
			t.Fatal(err)
		}
		if r.IsDone() {
			break
		}
		resolvers[0]()
		resolvers = resolvers[1:]
		r.Source().Wait()
	}

	// one shot: resolve everything first, render once
	var q, sigC, sigD = build()
	sigC.Resolve(1)
	sigD.Resolve(Undefined{})
	var oneShot = resolveBlocking(t, q).String()

	if buf.String() != oneShot {
		t.Errorf("incremental render produced %q, one-shot %q", buf.String(), oneShot)
	}
	if oneShot != "a=1 b=?" {
		t.Errorf("rendered %q, expected %q", oneShot, "a=1 b=?")
	}
}
