package callrate

import (
	"log/slog"
)

// Option is a function that can be used to configure a debouncer or
// throttler.
type Option func(*config)

// WithClock returns an option that replaces the timer service used to defer
// invocations. It is mainly useful in tests, together with a fake clock that
// can be stepped forward.
//
// A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(conf *config) {
		if c != nil {
			conf.clock = c
		}
	}
}

// WithLogger returns an option that emits debug records for calls that are
// scheduled, superseded, fired or dropped.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics returns an option that records calls and invocations in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithName returns an option that sets the name used as the metric label and
// log attribute for the wrapper.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
