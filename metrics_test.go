package callrate

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_debounce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	clk := newFakeClock()

	d := NewDebouncer(10*time.Millisecond, func(int) {},
		WithClock(clk), WithMetrics(m), WithName("search"),
	)

	d.Call(1)
	d.Call(2)
	d.Call(3)
	clk.Step(10 * time.Millisecond)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Calls.WithLabelValues(kindDebounce, "search")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Superseded.WithLabelValues(kindDebounce, "search")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations.WithLabelValues(kindDebounce, "search")))
}

func TestMetrics_throttle(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	clk := newFakeClock()

	th := NewThrottler(10*time.Millisecond, func(int) int { return 0 },
		WithClock(clk), WithMetrics(m),
	)

	th.Call(1)
	th.Call(2)
	th.Call(3)
	clk.Step(10 * time.Millisecond)
	th.Call(4)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.Calls.WithLabelValues(kindThrottle, defaultName)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Invocations.WithLabelValues(kindThrottle, defaultName)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Dropped.WithLabelValues(kindThrottle, defaultName)))

	n, err := testutil.GatherAndCount(reg, "callrate_dropped_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_nil(t *testing.T) {
	t.Parallel()

	var m *Metrics

	assert.NotPanics(t, func() {
		m.call(kindThrottle, defaultName)
		m.invocation(kindThrottle, defaultName)
		m.dropped(defaultName)
		m.superseded(defaultName)
	})
}

func TestNewMetrics_duplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	clk := newFakeClock()

	d := NewDebouncer(10*time.Millisecond, func(int) {},
		WithClock(clk), WithLogger(logger), WithName("save"),
	)
	d.Call(1)
	d.Call(2)
	clk.Step(10 * time.Millisecond)

	th := NewThrottler(10*time.Millisecond, func(int) int { return 0 },
		WithClock(clk), WithLogger(logger), WithName("scroll"),
	)
	th.Call(1)
	th.Call(2)

	out := buf.String()
	assert.Contains(t, out, `msg="invocation scheduled"`)
	assert.Contains(t, out, `msg="pending invocation superseded" kind=debounce name=save`)
	assert.Contains(t, out, `msg="invoking debounced function" kind=debounce name=save`)
	assert.Contains(t, out, `msg="invoking throttled function" cooldown=10ms kind=throttle name=scroll`)
	assert.Contains(t, out, `msg="call dropped during cool-down" kind=throttle name=scroll`)
}

func TestWithClock_nilIgnored(t *testing.T) {
	t.Parallel()

	c := newConfig([]Option{WithClock(nil)})

	assert.NotNil(t, c.clock)
	assert.Equal(t, defaultName, c.name)
}
