package mock

import "github.com/quentinrf/proximity-alarm/internal/ports"

// Clock is a simulated microsecond counter. Time only moves when something
// sleeps or advances it, so measurements are deterministic.
type Clock struct {
	now  uint64
	mask uint64
}

var _ ports.Clock = (*Clock)(nil)

// NewClock creates a clock starting at start that wraps after bits bits
// (0 or 64 for a full 64-bit counter)
func NewClock(start uint64, bits uint) *Clock {
	mask := ^uint64(0)
	if bits > 0 && bits < 64 {
		mask = uint64(1)<<bits - 1
	}
	return &Clock{now: start, mask: mask}
}

// NowMicros returns the counter value, wrapped to the counter width
func (c *Clock) NowMicros() uint64 {
	return c.now & c.mask
}

// SleepMicros advances the clock
func (c *Clock) SleepMicros(d uint64) {
	c.now += d
}

// Advance moves the clock forward without sleeping
func (c *Clock) Advance(d uint64) {
	c.now += d
}

// elapsed is the unwrapped time since the clock was created, used by the
// simulated sensor to place its echo pulse
func (c *Clock) elapsed() uint64 {
	return c.now
}
