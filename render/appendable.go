package render

import (
	"bytes"
	"io"
)

// Appendable accepts sequential rendered output.  It is what a provider's
// RenderAndResolve writes to: an io.Writer that can additionally advise the
// renderer to pause when a soft output limit is reached.  Write errors
// propagate out of rendering unmodified.
type Appendable interface {
	io.Writer
	io.StringWriter

	// SoftLimitReached reports whether the renderer should stop at the
	// next safe point and return a limited Result.  It is advisory:
	// writes issued after the limit is reached must still succeed.
	SoftLimitReached() bool
}

// NewAppendable adapts an io.Writer into an Appendable with no output limit.
// The limit is dropped even if w is itself a limited Appendable; callers that
// want limit semantics pass the Appendable where one is accepted.
func NewAppendable(w io.Writer) Appendable {
	return writerAppendable{w}
}

type writerAppendable struct{ w io.Writer }

func (a writerAppendable) Write(p []byte) (int, error)       { return a.w.Write(p) }
func (a writerAppendable) WriteString(s string) (int, error) { return io.WriteString(a.w, s) }
func (a writerAppendable) SoftLimitReached() bool            { return false }

// Buffer is an in-memory Appendable with an optional soft limit.  Drivers
// that render in bounded chunks write into a Buffer, drain it when rendering
// returns limited, and continue.
type Buffer struct {
	buf       bytes.Buffer
	softLimit int
}

// NewBuffer returns a Buffer that reports its soft limit reached once at
// least softLimit bytes are buffered.  A softLimit of zero means unlimited.
func NewBuffer(softLimit int) *Buffer {
	return &Buffer{softLimit: softLimit}
}

func (b *Buffer) Write(p []byte) (int, error)       { return b.buf.Write(p) }
func (b *Buffer) WriteString(s string) (int, error) { return b.buf.WriteString(s) }

func (b *Buffer) SoftLimitReached() bool {
	return b.softLimit > 0 && b.buf.Len() >= b.softLimit
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return b.buf.Len() }

// String returns everything written since the last Reset.
func (b *Buffer) String() string { return b.buf.String() }

// Reset discards buffered output, clearing the soft-limit condition.
func (b *Buffer) Reset() { b.buf.Reset() }
