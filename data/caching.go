package data

import "github.com/gosoy/sauce/render"

// CachingProvider resolves a value by running a compute function at most
// once and memoizing the result.  Wrap computations that are expensive or
// that must not observably run twice (side effects, nondeterminism).
//
// If compute panics, the provider is poisoned: the panic value is recorded
// and every later Resolve re-panics with it rather than retrying.  Status
// keeps forwarding to the status function until the value or poison exists,
// then short-circuits to done.
type CachingProvider struct {
	status  func() render.Result
	compute func() Value
	value   Value
	poison  interface{}
}

// NewCaching returns a provider over compute, gated by status.  status
// reports when compute may run without blocking; use render.Done for
// computations that are always ready.  compute must return a non-nil Value.
func NewCaching(status func() render.Result, compute func() Value) *CachingProvider {
	return &CachingProvider{status: status, compute: compute}
}

// Computed reports whether the value has been computed (or the computation
// has poisoned the provider).  It never triggers computation.
func (p *CachingProvider) Computed() bool {
	return p.value != nil || p.poison != nil
}

func (p *CachingProvider) Resolve() Value {
	if p.poison != nil {
		panic(p.poison)
	}
	if p.value == nil {
		p.run()
	}
	return p.value
}

// run executes compute once, recording a panic as poison before rethrowing.
func (p *CachingProvider) run() {
	defer func() {
		if e := recover(); e != nil {
			p.poison = e
			panic(e)
		}
	}()
	p.value = p.compute()
	if p.value == nil {
		panic("data: caching provider computed a nil value")
	}
}

func (p *CachingProvider) Status() render.Result {
	if p.Computed() {
		return render.Done()
	}
	var r = p.status()
	if r.Type() == render.TypeLimited {
		panic("data: a provider's status must never be limited")
	}
	return r
}

func (p *CachingProvider) RenderAndResolve(out render.Appendable) (render.Result, error) {
	var r = p.Status()
	if !r.IsDone() {
		return r, nil
	}
	return p.Resolve().RenderAndResolve(out)
}
