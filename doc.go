/*
Package sauce resolves and renders soy data values whose inputs may still be
in flight.

A value provider stands in for a value that may not be computable yet: a
record field backed by an RPC, a list element produced by a promise, a block
of content concatenating both.  Rendering walks the provider, emits what is
ready, and pauses when it reaches a value that is not, reporting the async
source it is blocked on.  Completion is monotonic: once a provider reports
done, it stays done.

Blocking usage

Most callers want the blocking form, which waits out every pause:

	var name = data.FromPromise(fetchName(id)) // a promise.Promise[string]
	var page = data.Concat(
		data.String("Welcome, "),
		name,
		data.String("!"),
	)
	err := sauce.Write(w, page)

Provider failures (a rejected promise, a failed source) come back as errors.

Stepwise usage

To bound the output produced per step, render into a sink with a soft limit
and drain it between steps:

	var buf = render.NewBuffer(64 << 10)
	c, err := sauce.Render(page, buf)
	for err == nil && !c.Result().IsDone() {
		switch c.Result().Type() {
		case render.TypeLimited:
			flush(buf)
			buf.Reset()
		case render.TypeDetach:
			c.Result().Source().Wait()
		}
		_, err = c.Continue()
	}

Output already emitted is never re-emitted: a provider resumed after a pause
picks up exactly where it left off.

Signature toolchain

sauce/parse reads template signature files (*.soyh) and sauce/template
registers the parsed declarations.  sauce/javagen generates Java invocation
builders from the registry; the soyinvoke command wraps it for the command
line.
*/
package sauce
