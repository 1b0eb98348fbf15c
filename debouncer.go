package callrate

import (
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Debouncer delays invoking a function until wait has passed without any new
// calls. Each call cancels the pending invocation, if any, and schedules a new
// one with the latest argument, so a burst of calls collapses into a single
// trailing invocation.
//
// The zero value is not usable; use NewDebouncer to create a Debouncer.
type Debouncer[T any] struct {
	// Configuration
	wait time.Duration
	fn   func(T)
	conf config

	// State
	mux     sync.Mutex
	gen     uint64
	pending clock.Timer
}

// NewDebouncer creates a new Debouncer that invokes fn with the argument of
// the most recent call once wait has elapsed since that call.
//
// Go has no implicit calling context, so a receiver is either bound at
// construction time with a method value (NewDebouncer(wait, obj.Apply)) or
// passed explicitly as part of T.
func NewDebouncer[T any](
	wait time.Duration,
	fn func(T),
	opts ...Option,
) *Debouncer[T] {
	return &Debouncer[T]{
		wait: normalizeWait(wait),
		fn:   fn,
		conf: newConfig(opts),
	}
}

// Call cancels any pending invocation and schedules fn(arg) to run after the
// wait duration. It never invokes fn inline, not even with a zero wait, and
// it does not wait for fn to run. Call is safe for concurrent use.
//
// A panic raised by fn happens on the clock's goroutine and is not recovered.
func (d *Debouncer[T]) Call(arg T) {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.conf.metrics.call(kindDebounce, d.conf.name)

	if d.pending != nil {
		d.pending.Stop()
		d.conf.metrics.superseded(d.conf.name)
		d.conf.debug(kindDebounce, "pending invocation superseded")
	}

	d.gen++
	gen := d.gen
	d.pending = schedule(d.conf.clock, d.wait, func() {
		d.fire(gen, arg)
	})
	d.conf.debug(kindDebounce, "invocation scheduled",
		slog.Duration("wait", d.wait),
	)
}

// fire is the timer callback. An invocation whose timer was stopped too late
// to prevent the callback from running is recognized by its stale generation
// and discarded.
func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mux.Lock()
	if gen != d.gen {
		d.mux.Unlock()
		return
	}
	d.pending = nil
	d.mux.Unlock()

	d.conf.metrics.invocation(kindDebounce, d.conf.name)
	d.conf.debug(kindDebounce, "invoking debounced function")

	d.fn(arg)
}
