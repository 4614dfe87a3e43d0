package data

import (
	"fmt"

	"github.com/asmsh/promise"

	"github.com/gosoy/sauce/render"
)

// Lazy returns a provider that computes its value on first use.  The
// computation is assumed to never block, so the provider is always ready.
func Lazy(compute func() Value) *CachingProvider {
	return NewCaching(render.Done, compute)
}

// FromFuture returns a provider over an async source.  Its status detaches
// on src until the source completes, and resolving converts the source's
// payload with New.  A failed source panics from Resolve with the source's
// error; the top-level render entry points recover it into a plain error.
func FromFuture(src render.Source) *CachingProvider {
	return NewCaching(
		func() render.Result {
			if src.Done() {
				return render.Done()
			}
			return render.ContinueAfter(src)
		},
		func() Value {
			payload, err := src.Get()
			if err != nil {
				panic(fmt.Errorf("data: async source failed: %w", err))
			}
			return New(payload)
		})
}

// FromPromise returns a provider over a promise.  The promise's value is
// converted with New once it fulfills; a rejected promise panics from
// Resolve like a failed source.
func FromPromise[T any](p promise.Promise[T]) *CachingProvider {
	return FromFuture(&promiseSource[T]{p: p, wait: p.WaitChan()})
}

// promiseSource adapts a promise to the render.Source interface.  The
// result is read through Res exactly once and cached, since promises treat
// repeated reads of a consumed result as an error.
type promiseSource[T any] struct {
	p       promise.Promise[T]
	wait    chan struct{}
	done    bool
	handled bool
	val     interface{}
	err     error
}

func (s *promiseSource[T]) Done() bool {
	if !s.done {
		select {
		case <-s.wait:
			s.done = true
		default:
		}
	}
	return s.done
}

func (s *promiseSource[T]) Wait() {
	s.p.Wait()
	s.done = true
}

func (s *promiseSource[T]) Get() (interface{}, error) {
	if !s.handled {
		var res = s.p.Res()
		s.done, s.handled = true, true
		s.val, s.err = res.Val(), res.Err()
	}
	return s.val, s.err
}
