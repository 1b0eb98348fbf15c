package callrate

import (
	"time"
)

// Throttle returns a throttled function that invokes fn at most once per
// wait. A call which fires returns fn's result and true; a call made during
// the cool-down window is dropped and returns the zero R and false.
//
// With a zero wait, every call fires.
func Throttle[T, R any](
	wait time.Duration,
	fn func(T) R,
	opts ...Option,
) func(T) (R, bool) {
	return NewThrottler(wait, fn, opts...).Call
}

// ThrottleFunc is like Throttle, for functions which take no arguments and
// return nothing. With a zero or negative wait it returns fn itself.
func ThrottleFunc(wait time.Duration, fn func(), opts ...Option) func() {
	if normalizeWait(wait) == 0 {
		return fn
	}

	t := NewThrottler(wait, func(struct{}) struct{} {
		fn()

		return struct{}{}
	}, opts...)

	return func() {
		t.Call(struct{}{})
	}
}
