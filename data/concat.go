package data

import (
	"bytes"
	"fmt"

	"github.com/gosoy/sauce/render"
)

// ContentProvider is a deferred concatenation of rendered parts.  It streams
// parts to an output incrementally, suspending when a part detaches or when
// the output reports its soft limit, and can still resolve to the complete
// string at any point after.
//
// Everything rendered so far is captured in an internal buffer so Resolve
// never loses content that was already streamed.  The emitted cursor marks
// the prefix of the buffer that has reached an output; streaming only ever
// appends past it.
type ContentProvider struct {
	parts   []ValueProvider
	idx     int
	buf     bytes.Buffer
	emitted int
	value   Value
}

// Concat returns a provider rendering the given parts in order.
func Concat(parts ...ValueProvider) *ContentProvider {
	return &ContentProvider{parts: parts}
}

// Resolve renders any remaining parts into the capture buffer and returns
// the complete content as a String.  All parts must be ready.
func (p *ContentProvider) Resolve() Value {
	if p.value == nil {
		for p.idx < len(p.parts) {
			r, err := p.parts[p.idx].RenderAndResolve(captureOnly{&p.buf})
			if err != nil {
				panic(fmt.Errorf("data: resolving content failed: %w", err))
			}
			if !r.IsDone() {
				panic("data: Resolve called on content that is not ready")
			}
			p.idx++
		}
		p.value = String(p.buf.String())
	}
	return p.value
}

func (p *ContentProvider) Status() render.Result {
	if p.value != nil {
		return render.Done()
	}
	for _, part := range p.parts[p.idx:] {
		if r := checkStatus(part); !r.IsDone() {
			return r
		}
	}
	return render.Done()
}

func (p *ContentProvider) RenderAndResolve(out render.Appendable) (render.Result, error) {
	if err := p.flush(out); err != nil {
		return render.Done(), err
	}
	for p.idx < len(p.parts) {
		if out.SoftLimitReached() {
			return render.Limited(), nil
		}
		r, err := p.parts[p.idx].RenderAndResolve(&teeAppendable{content: p, out: out})
		if err != nil || !r.IsDone() {
			return r, err
		}
		p.idx++
	}
	return render.Done(), nil
}

// flush emits content that was buffered by Resolve but never streamed, for
// example when a resolve was forced between two rendering calls.
func (p *ContentProvider) flush(out render.Appendable) error {
	for p.emitted < p.buf.Len() {
		n, err := out.Write(p.buf.Bytes()[p.emitted:])
		p.emitted += n
		if err != nil {
			return err
		}
	}
	return nil
}

// teeAppendable duplicates part output into the capture buffer and the
// real output, advancing the emitted cursor as bytes land.  Limit pressure
// comes from the real output, so parts suspend exactly when a direct render
// would.
type teeAppendable struct {
	content *ContentProvider
	out     render.Appendable
}

func (t *teeAppendable) Write(b []byte) (int, error) {
	t.content.buf.Write(b)
	var n, err = t.out.Write(b)
	t.content.emitted += n
	return n, err
}

func (t *teeAppendable) WriteString(s string) (int, error) {
	t.content.buf.WriteString(s)
	var n, err = t.out.WriteString(s)
	t.content.emitted += n
	return n, err
}

func (t *teeAppendable) SoftLimitReached() bool { return t.out.SoftLimitReached() }

// captureOnly renders into the buffer with no output attached.  It never
// reports a limit, so a resolve-forced render runs to completion.
type captureOnly struct {
	buf *bytes.Buffer
}

func (c captureOnly) Write(b []byte) (int, error)       { return c.buf.Write(b) }
func (c captureOnly) WriteString(s string) (int, error) { return c.buf.WriteString(s) }
func (c captureOnly) SoftLimitReached() bool            { return false }
