package callrate

import (
	"log/slog"
	"sync"
	"time"
)

// Throttler invokes a function at most once per cool-down window. The first
// call fires immediately and starts the window; calls made while the window
// is open are dropped, not queued. The window is measured from the moment of
// firing and is not extended by dropped calls.
//
// The zero value is not usable; use NewThrottler to create a Throttler.
type Throttler[T, R any] struct {
	// Configuration
	wait time.Duration
	fn   func(T) R
	conf config

	// State
	mux     sync.Mutex
	cooling bool
}

// NewThrottler creates a new Throttler that invokes fn at most once per wait.
// A zero or negative wait disables throttling: every call invokes fn.
//
// As with NewDebouncer, a receiver is bound with a method value or carried in
// T.
func NewThrottler[T, R any](
	wait time.Duration,
	fn func(T) R,
	opts ...Option,
) *Throttler[T, R] {
	return &Throttler[T, R]{
		wait: normalizeWait(wait),
		fn:   fn,
		conf: newConfig(opts),
	}
}

// Call invokes fn(arg) synchronously and returns its result and true, unless
// a cool-down window is open, in which case fn is not invoked and Call
// returns the zero R and false. Call is safe for concurrent use.
//
// The window opens before fn runs, so calls made from within fn are dropped.
// A panic raised by fn propagates to the caller and leaves the window open.
func (t *Throttler[T, R]) Call(arg T) (R, bool) {
	t.conf.metrics.call(kindThrottle, t.conf.name)

	if t.wait == 0 {
		t.conf.metrics.invocation(kindThrottle, t.conf.name)

		return t.fn(arg), true
	}

	if !t.acquire() {
		t.conf.metrics.dropped(t.conf.name)
		t.conf.debug(kindThrottle, "call dropped during cool-down")

		var zero R

		return zero, false
	}

	t.conf.metrics.invocation(kindThrottle, t.conf.name)
	t.conf.debug(kindThrottle, "invoking throttled function",
		slog.Duration("cooldown", t.wait),
	)

	return t.fn(arg), true
}

// CoolingDown reports whether a cool-down window is currently open.
func (t *Throttler[T, R]) CoolingDown() bool {
	t.mux.Lock()
	defer t.mux.Unlock()

	return t.cooling
}

// acquire opens a cool-down window and reports true, or reports false if one
// is already open.
func (t *Throttler[T, R]) acquire() bool {
	t.mux.Lock()
	defer t.mux.Unlock()

	if t.cooling {
		return false
	}

	t.cooling = true
	schedule(t.conf.clock, t.wait, t.release)

	return true
}

func (t *Throttler[T, R]) release() {
	t.mux.Lock()
	t.cooling = false
	t.mux.Unlock()

	t.conf.debug(kindThrottle, "cool-down elapsed")
}
