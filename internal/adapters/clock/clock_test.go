package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Monotonic(t *testing.T) {
	c := NewSystem()

	prev := c.NowMicros()
	for i := 0; i < 1000; i++ {
		now := c.NowMicros()
		assert.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

func TestSystem_SleepAtLeast(t *testing.T) {
	c := NewSystem()

	for _, d := range []uint64{2, 10, 150, 1500} {
		before := time.Now()
		c.SleepMicros(d)
		assert.GreaterOrEqual(t, time.Since(before), time.Duration(d)*time.Microsecond, "sleep %dµs", d)
	}
}

func TestSystem_CountsFromZero(t *testing.T) {
	c := NewSystem()
	c.SleepMicros(500)

	now := c.NowMicros()
	assert.GreaterOrEqual(t, now, uint64(500))
	assert.Less(t, now, uint64(time.Second/time.Microsecond))
}
