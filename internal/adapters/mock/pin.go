package mock

import (
	"math/rand"
	"sync"

	"github.com/quentinrf/proximity-alarm/internal/ports"
)

// Pin is an in-memory digital pin that records what was written to it
type Pin struct {
	mu     sync.Mutex
	level  bool
	writes []bool
	err    error
}

var (
	_ ports.OutputPin = (*Pin)(nil)
	_ ports.InputPin  = (*Pin)(nil)
)

// NewPin creates a pin at the given level
func NewPin(level bool) *Pin {
	return &Pin{level: level}
}

// Set records the write and changes the level, or returns the injected error
func (p *Pin) Set(high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.level = high
	p.writes = append(p.writes, high)
	return nil
}

// Read returns the current level
func (p *Pin) Read() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Writes returns every successful write
func (p *Pin) Writes() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.writes...)
}

// FailWith makes subsequent writes fail with err (nil clears it)
func (p *Pin) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// RandomPin reads high with the given probability
// Simulates a PIR sensor that sees someone walk by now and then
type RandomPin struct {
	probability float64
}

// NewRandomPin creates a pin reading high with probability p in [0, 1]
func NewRandomPin(p float64) *RandomPin {
	return &RandomPin{probability: p}
}

// Read draws a new sample on every call
func (p *RandomPin) Read() bool {
	return rand.Float64() < p.probability
}
