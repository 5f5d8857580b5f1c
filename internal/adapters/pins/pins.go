// Package pins builds the alarm's actuators and motion sensor on top of plain
// digital pins, whatever driver provides them.
package pins

import (
	"fmt"

	"github.com/quentinrf/proximity-alarm/internal/domain"
	"github.com/quentinrf/proximity-alarm/internal/ports"
)

// Buzzer is an active buzzer switched by one output pin
type Buzzer struct {
	pin ports.OutputPin
}

var _ ports.Buzzer = (*Buzzer)(nil)

// NewBuzzer creates a buzzer on pin
func NewBuzzer(pin ports.OutputPin) *Buzzer {
	return &Buzzer{pin: pin}
}

// SetBuzzer switches the buzzer on or off
func (b *Buzzer) SetBuzzer(on bool) error {
	return b.pin.Set(on)
}

// RGB is a common-cathode tri-color LED with one pin per channel
type RGB struct {
	red, green, blue ports.OutputPin
}

var _ ports.Indicator = (*RGB)(nil)

// NewRGB creates an indicator from its three channel pins
func NewRGB(red, green, blue ports.OutputPin) *RGB {
	return &RGB{red: red, green: green, blue: blue}
}

// SetColor drives all three channels, red first
func (l *RGB) SetColor(c domain.Color) error {
	if err := l.red.Set(c.R); err != nil {
		return fmt.Errorf("red channel: %w", err)
	}
	if err := l.green.Set(c.G); err != nil {
		return fmt.Errorf("green channel: %w", err)
	}
	if err := l.blue.Set(c.B); err != nil {
		return fmt.Errorf("blue channel: %w", err)
	}
	return nil
}

// PIR is a passive infrared motion sensor with a digital output.
// The sensor holds its output high while it sees motion.
type PIR struct {
	pin ports.InputPin
}

var _ ports.MotionSensor = (*PIR)(nil)

// NewPIR creates a motion sensor reading pin
func NewPIR(pin ports.InputPin) *PIR {
	return &PIR{pin: pin}
}

// MotionDetected samples the sensor output
func (p *PIR) MotionDetected() bool {
	return p.pin.Read()
}
