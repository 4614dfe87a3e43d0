package data

import (
	"sort"

	"github.com/gosoy/sauce/render"
)

// ValueProvider is a possibly-deferred producer of a Value.
//
// Providers let late-resolved values (futures, promises, content still being
// rendered) sit inside records, lists, and content fragments, and be resolved
// only if actually used.  Every Value is itself a provider, of itself.
//
// A provider instance belongs to one resolve/render chain at a time.  Its
// internal state (caches, render cursors) is owned exclusively by that chain;
// wrappers only ever call their delegate's methods, never touch its state.
type ValueProvider interface {
	// Resolve returns the resolved value.  For a provider backed by an
	// async source it must not be called until Status reports done; for
	// always-ready providers it may be called directly.  Repeated calls
	// are side-effect-free and return an equivalent value.
	Resolve() Value

	// Status reports whether Resolve can proceed without blocking: done
	// once the value is available, otherwise a detach carrying the async
	// source to wait on.  It is cheap, safe to poll, and monotonic: after
	// the first done result every later call is done too.  A status is
	// never limited; only rendering contexts produce limited results.
	Status() render.Result

	// RenderAndResolve renders this value to out, possibly partially.
	//
	// It renders the same content as resolving and then rendering, but
	// may suspend part of the way through.  The method is stateful: if it
	// returns a non-done result, the next call resumes from the previous
	// point, and emission across calls is append-only.  Write errors from
	// out propagate unmodified.
	RenderAndResolve(out render.Appendable) (render.Result, error)
}

// checkStatus polls p, enforcing the contract that a provider status is
// never limited.  A limited status is a bug in the provider, not a runtime
// condition, so it panics.
func checkStatus(p ValueProvider) render.Result {
	var r = p.Status()
	if r.Type() == render.TypeLimited {
		panic("data: a provider's status must never be limited")
	}
	return r
}

// CoerceToBool returns a provider resolving to the truthiness of the value p
// resolves to.  This is useful when a condition needs only truthiness and
// coercing is simpler than consuming the fully resolved value.  If p is
// already done the coercion happens eagerly and the result is a plain Bool,
// avoiding a wrapper that could never suspend.
func CoerceToBool(p ValueProvider) ValueProvider {
	if checkStatus(p).IsDone() {
		return Bool(p.Resolve().Truthy())
	}
	return boolProvider{p}
}

// boolProvider is the deferred arm of CoerceToBool.
type boolProvider struct {
	delegate ValueProvider
}

func (b boolProvider) Resolve() Value {
	return Bool(b.delegate.Resolve().Truthy())
}

func (b boolProvider) Status() render.Result {
	return checkStatus(b.delegate)
}

// RenderAndResolve renders only if the delegate is already done.  Boolean
// coercions are branched on, not streamed, so this narrows the general
// streaming contract on purpose: a pending delegate yields its detach with
// nothing emitted, and no resumption state is kept.
func (b boolProvider) RenderAndResolve(out render.Appendable) (render.Result, error) {
	var r = b.Status()
	if !r.IsDone() {
		return r, nil
	}
	return b.Resolve().RenderAndResolve(out)
}

// WithDefault returns a provider whose resolved value is def whenever p is
// nil or resolves to Undefined, and p's value otherwise.  A nil p is allowed
// so callers don't have to check, e.g., the result of a map lookup before
// wrapping it.
//
// A delegate that is already a resolved non-Undefined value passes through
// unchanged, keeping its identity and streaming behavior.
func WithDefault(p ValueProvider, def Value) ValueProvider {
	if p == nil {
		return def
	}
	if v, ok := p.(Value); ok {
		if _, undef := v.(Undefined); undef {
			return def
		}
		return v
	}
	// Status forwards to the delegate rather than being derived from the
	// cache, so a detach carries the delegate's own async source.
	return NewCaching(p.Status, func() Value {
		var v = p.Resolve()
		if _, undef := v.(Undefined); undef {
			return def
		}
		return v
	})
}

// ListOf returns a provider that resolves to a List of the values produced
// by the given providers, in order.  Its status is the first pending
// member's status, and the resolved List is memoized.
func ListOf(items ...ValueProvider) *CachingProvider {
	return NewCaching(
		func() render.Result {
			for _, item := range items {
				if r := checkStatus(item); !r.IsDone() {
					return r
				}
			}
			return render.Done()
		},
		func() Value {
			var list = make(List, len(items))
			for i, item := range items {
				list[i] = item.Resolve()
			}
			return list
		})
}

// RecordOf returns a provider that resolves to a Map of the values produced
// by the given named providers.  Status polls members in sorted key order so
// repeated polls park on a deterministic member.
func RecordOf(fields map[string]ValueProvider) *CachingProvider {
	var keys = make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return NewCaching(
		func() render.Result {
			for _, k := range keys {
				if r := checkStatus(fields[k]); !r.IsDone() {
					return r
				}
			}
			return render.Done()
		},
		func() Value {
			var m = make(Map, len(fields))
			for k, p := range fields {
				m[k] = p.Resolve()
			}
			return m
		})
}
