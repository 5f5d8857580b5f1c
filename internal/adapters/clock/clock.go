// Package clock provides the host's monotonic microsecond clock.
package clock

import (
	"runtime"
	"time"

	"github.com/quentinrf/proximity-alarm/internal/ports"
)

// spinLimit is the longest sleep done by spinning; the scheduler cannot
// wake a goroutine with microsecond accuracy
const spinLimit = 200 * time.Microsecond

// System counts microseconds since it was created using Go's monotonic
// clock reading
type System struct {
	epoch time.Time
}

var _ ports.Clock = (*System)(nil)

// NewSystem creates a clock starting at zero
func NewSystem() *System {
	return &System{epoch: time.Now()}
}

// NowMicros returns microseconds since the clock was created
func (c *System) NowMicros() uint64 {
	return uint64(time.Since(c.epoch).Microseconds())
}

// SleepMicros blocks for at least d microseconds
func (c *System) SleepMicros(d uint64) {
	dur := time.Duration(d) * time.Microsecond
	if dur > spinLimit {
		time.Sleep(dur)
		return
	}

	deadline := time.Now().Add(dur)
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}
