package callrate

import (
	"time"

	"k8s.io/utils/clock"
)

// Clock is the deferred-execution service used to schedule invocations and
// cool-down expiries. clock.RealClock satisfies it, as does the FakeClock from
// k8s.io/utils/clock/testing.
type Clock = clock.WithDelayedExecution

// schedule runs f once wait has elapsed on c. A zero wait still defers f to
// the clock rather than calling it inline.
func schedule(c Clock, wait time.Duration, f func()) clock.Timer {
	return c.AfterFunc(normalizeWait(wait), f)
}
