// Package render defines the completion protocol shared between value
// providers and the rendering driver: the tri-state Result returned by
// polling operations, the async Source that a detached Result waits on, and
// the Appendable output sink that rendering writes to.
package render

// Type enumerates the ways a polling operation can return.
type Type int

const (
	// TypeDone indicates resolution or rendering ran to completion.
	TypeDone Type = iota

	// TypeDetach indicates progress is blocked on an async Source.  The
	// caller should wait on the source and poll again.
	TypeDetach

	// TypeLimited indicates the output sink asked for a pause.  Only
	// rendering contexts produce it; a value provider's Status never
	// returns it.
	TypeLimited
)

func (t Type) String() string {
	switch t {
	case TypeDone:
		return "done"
	case TypeDetach:
		return "detach"
	case TypeLimited:
		return "limited"
	}
	return "unknown"
}

// Result reports whether a polling operation completed, and if not, why not.
// Results are immutable; the zero value is a done result.
//
// Callers should rely on the invariant that completion is monotonic: once an
// operation on a given provider returns a done Result, every later call on
// that provider returns done as well.
type Result struct {
	typ    Type
	source Source
}

// Done returns the completed result.
func Done() Result { return Result{} }

// Limited returns a result indicating the output sink's soft limit was
// reached.  Rendering may be continued once the caller has drained the sink.
func Limited() Result { return Result{typ: TypeLimited} }

// ContinueAfter returns a detached result blocked on the given source.
func ContinueAfter(src Source) Result {
	if src == nil {
		panic("render: ContinueAfter called with a nil source")
	}
	return Result{typ: TypeDetach, source: src}
}

// IsDone reports whether the operation ran to completion.
func (r Result) IsDone() bool { return r.typ == TypeDone }

// Type returns which of the three states this result is in.
func (r Result) Type() Type { return r.typ }

// Source returns the async source that a detached result is blocked on.  It
// panics on a non-detach result; callers must check Type first.
func (r Result) Source() Source {
	if r.typ != TypeDetach {
		panic("render: Source called on a " + r.typ.String() + " result")
	}
	return r.source
}

func (r Result) String() string {
	if r.typ == TypeDetach {
		return "detach (waiting on async source)"
	}
	return r.typ.String()
}
