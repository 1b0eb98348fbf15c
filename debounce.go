// Package callrate provides debounce and throttle wrappers, which change when
// and how often a function is called without changing what it does.
//
// Debouncing waits for a quiet period: a burst of calls results in a single
// invocation with the arguments of the last call, once no new call has been
// made for the wait duration. Throttling invokes immediately, then drops every
// call until a cool-down window has passed.
//
// Delays are scheduled on an injectable Clock, which defaults to the real
// clock. Tests can pass a fake clock with WithClock and step it forward.
package callrate

import (
	"time"
)

// Debounce returns a debounced function that delays invoking fn until after
// wait time has elapsed since the last time the debounced function was
// called. fn receives the argument of that last call.
//
// The debounced function is safe for concurrent use in goroutines and does
// not wait for fn to complete. There is no way to cancel a pending
// invocation; it runs even if the debounced function is no longer referenced.
func Debounce[T any](
	wait time.Duration,
	fn func(T),
	opts ...Option,
) func(T) {
	return NewDebouncer(wait, fn, opts...).Call
}

// DebounceFunc is like Debounce, for functions which take no arguments.
func DebounceFunc(wait time.Duration, fn func(), opts ...Option) func() {
	d := NewDebouncer(wait, func(struct{}) { fn() }, opts...)

	return func() {
		d.Call(struct{}{})
	}
}
