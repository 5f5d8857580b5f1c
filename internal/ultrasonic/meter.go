// Package ultrasonic measures distance with a trigger/echo ultrasonic ranging
// module such as the HC-SR04.
//
// A measurement sends a 10µs trigger pulse, then polls the echo pin for the
// rising and falling edges of the response pulse. The width of the echo
// pulse is the round-trip time of the sound burst.
package ultrasonic

import (
	"fmt"

	"github.com/quentinrf/proximity-alarm/internal/domain"
	"github.com/quentinrf/proximity-alarm/internal/ports"
)

const (
	// SettleMicros is how long the trigger is held low before the pulse
	SettleMicros = 2
	// TriggerMicros is the minimum trigger pulse width accepted by the module
	TriggerMicros = 10
	// DefaultEchoTimeout is the per-edge wait budget in microseconds. An
	// HC-SR04 with nothing in range answers with a ~38ms pulse.
	DefaultEchoTimeout = 38000
	// DefaultCounterBits is the width of the clock counter
	DefaultCounterBits = 64
)

// Config tunes a Meter. Zero values select the defaults.
type Config struct {
	// EchoTimeout bounds each wait for an echo edge, in microseconds
	EchoTimeout uint64
	// CounterBits is the number of bits after which the clock wraps
	CounterBits uint
}

// Meter measures distance through a trigger output and an echo input.
// It does not own the pins and must not be used from more than one
// goroutine at a time.
type Meter struct {
	trigger ports.OutputPin
	echo    ports.InputPin
	clock   ports.Clock

	timeout uint64
	mask    uint64
}

var _ ports.DistanceSensor = (*Meter)(nil)

// New creates a meter. The echo timeout has to fit in the clock counter,
// otherwise a wrapped counter could hide an expired budget.
func New(trigger ports.OutputPin, echo ports.InputPin, clock ports.Clock, cfg Config) (*Meter, error) {
	if trigger == nil || echo == nil || clock == nil {
		return nil, fmt.Errorf("%w: trigger, echo and clock are required", domain.ErrInvalidConfig)
	}

	if cfg.EchoTimeout == 0 {
		cfg.EchoTimeout = DefaultEchoTimeout
	}
	if cfg.CounterBits == 0 {
		cfg.CounterBits = DefaultCounterBits
	}
	if cfg.CounterBits > 64 {
		return nil, fmt.Errorf("%w: counter width %d bits", domain.ErrInvalidConfig, cfg.CounterBits)
	}

	mask := ^uint64(0)
	if cfg.CounterBits < 64 {
		mask = uint64(1)<<cfg.CounterBits - 1
	}
	if cfg.EchoTimeout >= mask {
		return nil, fmt.Errorf("%w: echo timeout %dµs does not fit a %d-bit clock",
			domain.ErrInvalidConfig, cfg.EchoTimeout, cfg.CounterBits)
	}

	return &Meter{
		trigger: trigger,
		echo:    echo,
		clock:   clock,
		timeout: cfg.EchoTimeout,
		mask:    mask,
	}, nil
}

// Measure fires one ranging cycle and converts the echo pulse width into a
// distance. Both edge times are the clock value of the last sample taken
// before the edge was seen. It returns an error wrapping
// domain.ErrSensorTimeout when an edge does not arrive within the budget.
func (m *Meter) Measure() (domain.Distance, error) {
	if err := m.pulse(); err != nil {
		return 0, err
	}

	start, err := m.await(true, m.clock.NowMicros(), "rise")
	if err != nil {
		return 0, err
	}

	// a pulse shorter than one sample leaves end at start
	end, err := m.await(false, start, "fall")
	if err != nil {
		return 0, err
	}

	return domain.DistanceFromEcho(m.elapsed(start, end)), nil
}

// pulse sends the low-high-low trigger waveform
func (m *Meter) pulse() error {
	if err := m.trigger.Set(false); err != nil {
		return fmt.Errorf("trigger low: %w", err)
	}
	m.clock.SleepMicros(SettleMicros)

	if err := m.trigger.Set(true); err != nil {
		return fmt.Errorf("trigger high: %w", err)
	}
	m.clock.SleepMicros(TriggerMicros)

	if err := m.trigger.Set(false); err != nil {
		return fmt.Errorf("trigger low: %w", err)
	}
	return nil
}

// await polls the echo pin until it reads level and returns the clock value
// of the last sample taken before that, or since when the first read
// already matches. The budget runs from since.
func (m *Meter) await(level bool, since uint64, edge string) (uint64, error) {
	last := since
	for m.echo.Read() != level {
		last = m.clock.NowMicros()
		if m.elapsed(since, last) > m.timeout {
			return 0, fmt.Errorf("%w: no echo %s edge within %dµs", domain.ErrSensorTimeout, edge, m.timeout)
		}
	}
	return last, nil
}

// elapsed is the wraparound-safe difference end - start on the counter
func (m *Meter) elapsed(start, end uint64) uint64 {
	return (end - start) & m.mask
}
