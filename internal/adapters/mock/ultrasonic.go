package mock

import (
	"math/rand"

	"github.com/quentinrf/proximity-alarm/internal/domain"
	"github.com/quentinrf/proximity-alarm/internal/ports"
)

// DefaultEchoDelay is the time between the end of the trigger pulse and the
// rising echo edge: the module sends an 8 cycle 40kHz burst first
const DefaultEchoDelay = 450

// Fault makes the simulated module misbehave
type Fault int

const (
	// FaultNone answers every trigger
	FaultNone Fault = iota
	// FaultNoRise never raises the echo pin (no module attached)
	FaultNoRise
	// FaultNoFall raises the echo pin and never lowers it
	FaultNoFall
)

// PinWrite is one recorded trigger write
type PinWrite struct {
	High bool
	At   uint64
}

// UltrasonicSensor simulates an HC-SR04 on a simulated clock.
// A falling trigger edge after a high level arms one echo pulse that starts
// Delay µs later and lasts Width µs (± Jitter). Every echo read costs
// ReadCost µs of clock time.
type UltrasonicSensor struct {
	Delay    uint64
	Width    uint64
	Jitter   uint64
	ReadCost uint64
	Fault    Fault

	clock   *Clock
	writes  []PinWrite
	trigger bool
	armed   bool
	riseAt  uint64
	fallAt  uint64
}

// NewUltrasonicSensor creates a sensor that reports an obstacle at distance d
func NewUltrasonicSensor(clock *Clock, d domain.Distance) *UltrasonicSensor {
	return &UltrasonicSensor{
		Delay:    DefaultEchoDelay,
		Width:    d.EchoMicros(),
		ReadCost: 1,
		clock:    clock,
	}
}

// Trigger returns the trigger input of the module
func (s *UltrasonicSensor) Trigger() ports.OutputPin {
	return triggerPin{s}
}

// Echo returns the echo output of the module
func (s *UltrasonicSensor) Echo() ports.InputPin {
	return echoPin{s}
}

// Writes returns every trigger write seen so far
func (s *UltrasonicSensor) Writes() []PinWrite {
	return append([]PinWrite(nil), s.writes...)
}

func (s *UltrasonicSensor) setTrigger(high bool) {
	now := s.clock.elapsed()
	s.writes = append(s.writes, PinWrite{High: high, At: now})

	falling := s.trigger && !high
	s.trigger = high
	if !falling {
		return
	}

	switch s.Fault {
	case FaultNoRise:
		s.armed = false
		return
	case FaultNoFall:
		s.armed = true
		s.riseAt = now + s.Delay
		s.fallAt = ^uint64(0)
		return
	}

	s.armed = true
	s.riseAt = now + s.Delay
	s.fallAt = s.riseAt + s.width()
}

func (s *UltrasonicSensor) width() uint64 {
	if s.Jitter == 0 {
		return s.Width
	}
	// uniform in [Width-Jitter, Width+Jitter]
	offset := rand.Int63n(int64(2*s.Jitter + 1))
	w := int64(s.Width) - int64(s.Jitter) + offset
	if w < 0 {
		w = 0
	}
	return uint64(w)
}

func (s *UltrasonicSensor) readEcho() bool {
	now := s.clock.elapsed()
	s.clock.Advance(s.ReadCost)
	return s.armed && now >= s.riseAt && now < s.fallAt
}

type triggerPin struct{ s *UltrasonicSensor }

func (p triggerPin) Set(high bool) error {
	p.s.setTrigger(high)
	return nil
}

type echoPin struct{ s *UltrasonicSensor }

func (p echoPin) Read() bool {
	return p.s.readEcho()
}
