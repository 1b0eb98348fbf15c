package callrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMutable(t *testing.T) {
	t.Parallel()

	t.Run("last function wins", func(t *testing.T) {
		t.Parallel()

		clk := newFakeClock()
		var target int32

		debounced := NewMutable(100*time.Millisecond, WithClock(clk))

		debounced(func() { target += 1 })
		debounced(func() { target += 2 })
		debounced(func() { target += 4 })

		clk.Step(200 * time.Millisecond)

		assert.Equal(t, int32(4), target)
	})

	t.Run("nil function is ignored", func(t *testing.T) {
		t.Parallel()

		clk := newFakeClock()
		var target int32

		debounced := NewMutable(100*time.Millisecond, WithClock(clk))

		debounced(func() { target++ })
		debounced(nil)

		assert.NotPanics(t, func() { clk.Step(100 * time.Millisecond) })
		assert.Equal(t, int32(0), target)
	})
}
