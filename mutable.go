package callrate

import (
	"time"
)

// NewMutable returns a debounced function like DebounceFunc, but the callback
// to run is passed to each call rather than fixed up front. Only the last f
// passed before the wait expires is invoked; previous values are discarded.
//
// The debounced function is safe for concurrent use in goroutines.
func NewMutable(wait time.Duration, opts ...Option) func(f func()) {
	return Debounce(wait, func(f func()) {
		if f != nil {
			f()
		}
	}, opts...)
}
