package sauce

import (
	"fmt"

	"github.com/gosoy/sauce/data"
	"github.com/gosoy/sauce/render"
)

// A Continuation is a render that has started but not finished.  Rendering
// pauses when the value detaches on an async source or when the sink reports
// its soft limit reached; the continuation hands control back to the caller,
// and Continue picks up exactly where the render left off.
type Continuation struct {
	provider data.ValueProvider
	out      render.Appendable
	result   render.Result
}

// Render performs the first rendering step of p into out and returns the
// continuation.  Its Result tells whether the render finished, detached on
// an async source, or paused at the sink's soft limit.
func Render(p data.ValueProvider, out render.Appendable) (*Continuation, error) {
	var c = &Continuation{provider: p, out: out}
	var _, err = c.step()
	return c, err
}

// Result returns the state of the render after the last step.
func (c *Continuation) Result() render.Result { return c.result }

// Continue performs one more rendering step.  The caller first relieves
// whatever paused the render: wait on (or poll) the detach source, or drain
// the sink past its limit.  Continue panics if the render already finished.
func (c *Continuation) Continue() (render.Result, error) {
	if c.result.IsDone() {
		panic("sauce: Continue called on a finished render")
	}
	return c.step()
}

func (c *Continuation) step() (_ render.Result, err error) {
	defer errRecover(&err)
	var r, rerr = c.provider.RenderAndResolve(c.out)
	if rerr != nil {
		return r, rerr
	}
	c.result = r
	return r, nil
}

// errRecover is the handler that turns provider panics (failed async
// sources, poisoned computations) into returns from the driver entry points.
func errRecover(errp *error) {
	if e := recover(); e != nil {
		if err, ok := e.(error); ok {
			*errp = err
			return
		}
		*errp = fmt.Errorf("%v", e)
	}
}
