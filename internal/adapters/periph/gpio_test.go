package periph

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/quentinrf/proximity-alarm/internal/domain"
)

// registerTestPin registers a fake pin under GPIO<bcm> for the test's lifetime
func registerTestPin(t *testing.T, bcm int, level gpio.Level) *gpiotest.Pin {
	t.Helper()

	p := &gpiotest.Pin{N: "GPIO" + strconv.Itoa(bcm), Num: bcm, L: level}
	require.NoError(t, gpioreg.Register(p))
	t.Cleanup(func() { _ = gpioreg.Unregister(p.N) })
	return p
}

func TestOutput_DrivesLowThenFollowsSet(t *testing.T) {
	fake := registerTestPin(t, 9101, gpio.High)

	pin, err := Output(9101)
	require.NoError(t, err)
	assert.Equal(t, gpio.Low, fake.Read(), "output must start low")
	assert.Equal(t, "GPIO9101", pin.Name())

	require.NoError(t, pin.Set(true))
	assert.Equal(t, gpio.High, fake.Read())

	require.NoError(t, pin.Set(false))
	assert.Equal(t, gpio.Low, fake.Read())
}

func TestInput_PullsDown(t *testing.T) {
	fake := registerTestPin(t, 9102, gpio.High)

	pin, err := Input(9102)
	require.NoError(t, err)
	assert.Equal(t, gpio.PullDown, fake.P)
	assert.False(t, pin.Read())

	fake.L = gpio.High
	assert.True(t, pin.Read())
}

func TestLookup_UnknownPin(t *testing.T) {
	_, err := Output(9199)
	assert.True(t, errors.Is(err, domain.ErrUnknownPin), "got %v", err)

	_, err = Input(9199)
	assert.True(t, errors.Is(err, domain.ErrUnknownPin), "got %v", err)
}
