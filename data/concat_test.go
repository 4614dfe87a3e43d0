package data

import (
	"testing"

	"github.com/gosoy/sauce/render"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		parts    []ValueProvider
		expected string
	}{
		{nil, ""},
		{[]ValueProvider{String("a")}, "a"},
		{[]ValueProvider{String("a"), Int(1), String("b")}, "a1b"},
		{[]ValueProvider{Concat(String("a"), String("b")), String("c")}, "abc"},
		{[]ValueProvider{Lazy(func() Value { return Float(2.5) })}, "2.5"},
	}

	for _, test := range tests {
		var p = Concat(test.parts...)
		if !p.Status().IsDone() {
			t.Fatalf("Concat(%v) not ready", test.parts)
		}
		var buf = render.NewBuffer(0)
		r, err := p.RenderAndResolve(buf)
		if err != nil || !r.IsDone() {
			t.Fatalf("render => %v, %v", r, err)
		}
		if buf.String() != test.expected {
			t.Errorf("rendered %q, expected %q", buf.String(), test.expected)
		}
		if v := p.Resolve(); v != String(test.expected) {
			t.Errorf("resolved to %#v, expected %q", v, test.expected)
		}
	}
}

func TestConcatDetach(t *testing.T) {
	var sig = render.NewSignal()
	var p = Concat(String("before "), FromFuture(sig), String(" after"))

	var buf = render.NewBuffer(0)
	r, err := p.RenderAndResolve(buf)
	if err != nil {
		t.Fatal(err)
	}
	if r.IsDone() || r.Source() != sig {
		t.Fatalf("result %v, expected a detach on the signal", r)
	}
	if buf.String() != "before " {
		t.Errorf("rendered %q before detaching, expected %q", buf.String(), "before ")
	}

	sig.Resolve("it")
	r.Source().Wait()
	r, err = p.RenderAndResolve(buf)
	if err != nil || !r.IsDone() {
		t.Fatalf("resumed render => %v, %v", r, err)
	}
	// resuming appended only the content after the detach point
	if buf.String() != "before it after" {
		t.Errorf("rendered %q, expected %q", buf.String(), "before it after")
	}
}

func TestConcatSoftLimit(t *testing.T) {
	var p = Concat(String("abcd"), String("ef"))

	// the limit is advisory: a part that is mid-write finishes its write
	var buf = render.NewBuffer(3)
	r, err := p.RenderAndResolve(buf)
	if err != nil {
		t.Fatal(err)
	}
	if r.Type() != render.TypeLimited {
		t.Fatalf("result %v, expected limited", r)
	}
	if buf.String() != "abcd" {
		t.Errorf("rendered %q at the pause, expected %q", buf.String(), "abcd")
	}

	// the driver drains the buffer and resumes
	buf.Reset()
	r, err = p.RenderAndResolve(buf)
	if err != nil || !r.IsDone() {
		t.Fatalf("resumed render => %v, %v", r, err)
	}
	if buf.String() != "ef" {
		t.Errorf("rendered %q after resuming, expected %q", buf.String(), "ef")
	}
}

func TestConcatResolveMidStream(t *testing.T) {
	var sig = render.NewSignal()
	var p = Concat(String("x"), FromFuture(sig), String("z"))

	var buf = render.NewBuffer(0)
	if r, _ := p.RenderAndResolve(buf); r.IsDone() {
		t.Fatal("rendered to completion with a pending part")
	}

	sig.Resolve("y")
	if v := p.Resolve(); v != String("xyz") {
		t.Fatalf("resolved to %#v, expected %q", v, "xyz")
	}
	if !p.Status().IsDone() {
		t.Error("not ready after resolving")
	}

	// rendering emits only what the first call did not
	r, err := p.RenderAndResolve(buf)
	if err != nil || !r.IsDone() {
		t.Fatalf("render after resolve => %v, %v", r, err)
	}
	if buf.String() != "xyz" {
		t.Errorf("rendered %q in total, expected %q", buf.String(), "xyz")
	}
}

func TestConcatResolveNotReady(t *testing.T) {
	var p = Concat(FromFuture(render.NewSignal()))

	defer func() { recover() }()
	var v = p.Resolve()
	t.Errorf("expected panic resolving pending content, got %#v", v)
}
