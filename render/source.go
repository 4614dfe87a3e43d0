package render

import "sync"

// Source is the minimal view of an asynchronous computation (a future, a
// promise, an RPC in flight) that a detached Result reports.  Value providers
// test completion with Done and read the payload with Get; the driver parks
// on Wait.  A Source does not carry cancellation: an abandoned computation
// simply stops being polled.
type Source interface {
	// Done reports whether the computation has completed.  It must be
	// cheap, safe to call repeatedly, and monotonic: once it returns
	// true it never returns false again.
	Done() bool

	// Wait blocks until the computation completes.
	Wait()

	// Get returns the computation's payload, blocking if it has not
	// completed yet.  Resolution code only calls Get once Done reports
	// true, so a well-behaved provider never blocks here.
	Get() (interface{}, error)
}

// Signal is a channel-backed Source resolved by hand.  It is the plain way
// to hand asynchronous data to a provider without pulling in a promise
// library.  The zero value is not usable; call NewSignal.
type Signal struct {
	done chan struct{}
	once sync.Once
	val  interface{}
	err  error
}

// NewSignal returns an unresolved Signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Resolve completes the signal with the given payload.  Only the first
// Resolve or Reject takes effect.
func (s *Signal) Resolve(val interface{}) {
	s.once.Do(func() {
		s.val = val
		close(s.done)
	})
}

// Reject completes the signal with an error.
func (s *Signal) Reject(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

func (s *Signal) Done() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Signal) Wait() { <-s.done }

func (s *Signal) Get() (interface{}, error) {
	<-s.done
	return s.val, s.err
}
