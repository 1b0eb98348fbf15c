package callrate

import (
	"context"
	"log/slog"
	"time"

	"k8s.io/utils/clock"
)

const defaultName = "default"

type config struct {
	clock   Clock
	logger  *slog.Logger
	metrics *Metrics
	name    string
}

func newConfig(opts []Option) config {
	c := config{
		clock: clock.RealClock{},
		name:  defaultName,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// normalizeWait treats negative durations as zero.
func normalizeWait(wait time.Duration) time.Duration {
	if wait < 0 {
		return 0
	}

	return wait
}

func (c *config) debug(kind, msg string, attrs ...slog.Attr) {
	if c.logger == nil {
		return
	}

	attrs = append(attrs, slog.String("kind", kind), slog.String("name", c.name))
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
