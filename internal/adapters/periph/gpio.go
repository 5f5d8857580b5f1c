// Package periph provides the alarm's digital pins through periph.io.
//
// Pins are addressed by their BCM number and looked up as "GPIO<n>". On a
// host without GPIO drivers (a desktop) Init succeeds but every lookup fails
// with domain.ErrUnknownPin; use the mock driver there.
package periph

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/quentinrf/proximity-alarm/internal/domain"
	"github.com/quentinrf/proximity-alarm/internal/ports"
)

// Init loads the periph host drivers. It is safe to call more than once.
func Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}
	return nil
}

// Pin adapts a periph pin to the ports pin interfaces
type Pin struct {
	p gpio.PinIO
}

var (
	_ ports.OutputPin = (*Pin)(nil)
	_ ports.InputPin  = (*Pin)(nil)
)

// NewPin wraps an already configured periph pin
func NewPin(p gpio.PinIO) *Pin {
	return &Pin{p: p}
}

// Output looks up a BCM pin and configures it as an output driven low
func Output(bcm int) (*Pin, error) {
	p, err := lookup(bcm)
	if err != nil {
		return nil, err
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("configure %s as output: %w", p.Name(), err)
	}
	return NewPin(p), nil
}

// Input looks up a BCM pin and configures it as a pulled-down input without
// edge detection; the ultrasonic meter and the PIR are polled
func Input(bcm int) (*Pin, error) {
	p, err := lookup(bcm)
	if err != nil {
		return nil, err
	}
	if err := p.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("configure %s as input: %w", p.Name(), err)
	}
	return NewPin(p), nil
}

func lookup(bcm int) (gpio.PinIO, error) {
	name := fmt.Sprintf("GPIO%d", bcm)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPin, name)
	}
	return p, nil
}

// Set drives the pin
func (p *Pin) Set(high bool) error {
	return p.p.Out(gpio.Level(high))
}

// Read samples the pin
func (p *Pin) Read() bool {
	return p.p.Read() == gpio.High
}

// Name returns the periph name of the pin
func (p *Pin) Name() string {
	return p.p.Name()
}
