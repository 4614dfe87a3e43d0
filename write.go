package sauce

import (
	"io"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/render"
)

// Write renders p to wr, blocking until every deferred input has completed.
// The sink is unlimited, so pauses only ever come from async sources, and
// Write waits those out.  Provider failures are returned as errors.
func Write(wr io.Writer, p data.ValueProvider) (err error) {
	defer errRecover(&err)
	var out = render.NewAppendable(wr)
	for {
		r, err := p.RenderAndResolve(out)
		if err != nil {
			return err
		}
		if r.IsDone() {
			return nil
		}
		r.Source().Wait()
	}
}

// WriteString renders p to a string, blocking like Write.
func WriteString(p data.ValueProvider) (string, error) {
	var buf = render.NewBuffer(0)
	if err := Write(buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Resolve blocks until p is ready, then resolves it.  Provider failures are
// returned as errors.
func Resolve(p data.ValueProvider) (v data.Value, err error) {
	defer errRecover(&err)
	for {
		var r = p.Status()
		if r.IsDone() {
			return p.Resolve(), nil
		}
		r.Source().Wait()
	}
}
