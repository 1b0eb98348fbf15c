package callrate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindDebounce = "debounce"
	kindThrottle = "throttle"
)

// Metrics holds the Prometheus counters shared by debouncers and throttlers.
// All counters are labelled by kind ("debounce" or "throttle") and the name
// given with WithName.
//
// A nil *Metrics records nothing.
type Metrics struct {
	// Calls counts calls made to the wrapper.
	Calls *prometheus.CounterVec

	// Invocations counts invocations of the wrapped function.
	Invocations *prometheus.CounterVec

	// Dropped counts throttled calls discarded during a cool-down window.
	Dropped *prometheus.CounterVec

	// Superseded counts pending debounced invocations cancelled by a newer
	// call.
	Superseded *prometheus.CounterVec
}

// NewMetrics creates the callrate counters and registers them with reg. It
// panics if registration fails, like promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := []string{"kind", "name"}

	return &Metrics{
		Calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "callrate",
				Name:      "calls_total",
				Help:      "Total number of calls made to rate-controlled wrappers",
			},
			labels,
		),

		Invocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "callrate",
				Name:      "invocations_total",
				Help:      "Total number of invocations of wrapped functions",
			},
			labels,
		),

		Dropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "callrate",
				Name:      "dropped_total",
				Help:      "Total number of calls dropped during a cool-down window",
			},
			labels,
		),

		Superseded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "callrate",
				Name:      "superseded_total",
				Help:      "Total number of pending invocations replaced by a newer call",
			},
			labels,
		),
	}
}

func (m *Metrics) call(kind, name string) {
	if m != nil {
		m.Calls.WithLabelValues(kind, name).Inc()
	}
}

func (m *Metrics) invocation(kind, name string) {
	if m != nil {
		m.Invocations.WithLabelValues(kind, name).Inc()
	}
}

func (m *Metrics) dropped(name string) {
	if m != nil {
		m.Dropped.WithLabelValues(kindThrottle, name).Inc()
	}
}

func (m *Metrics) superseded(name string) {
	if m != nil {
		m.Superseded.WithLabelValues(kindDebounce, name).Inc()
	}
}
