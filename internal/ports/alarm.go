package ports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/proximity-alarm/internal/domain"
)

// Alarm runs the motion -> distance -> output loop
type Alarm struct {
	motion    MotionSensor
	sensor    DistanceSensor
	buzzer    Buzzer
	indicator Indicator
	threshold domain.Distance
	interval  time.Duration

	state domain.State
}

// NewAlarm creates a new alarm controller.
// threshold is the exclusive upper bound of the danger zone.
func NewAlarm(motion MotionSensor, sensor DistanceSensor, buzzer Buzzer, indicator Indicator, threshold domain.Distance, interval time.Duration) *Alarm {
	return &Alarm{
		motion:    motion,
		sensor:    sensor,
		buzzer:    buzzer,
		indicator: indicator,
		threshold: threshold,
		interval:  interval,
		state:     domain.StateIdle,
	}
}

// State returns the state applied by the last tick
func (a *Alarm) State() domain.State {
	return a.state
}

// Run ticks at a fixed interval until the context is cancelled
func (a *Alarm) Run(ctx context.Context) {
	log.Info().
		Dur("interval", a.interval).
		Stringer("threshold", a.threshold.Physic()).
		Msg("starting alarm loop")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	// Tick immediately on start
	a.tickAndLog()

	for {
		select {
		case <-ticker.C:
			a.tickAndLog()

		case <-ctx.Done():
			log.Info().Msg("stopping alarm loop")
			return
		}
	}
}

func (a *Alarm) tickAndLog() {
	if _, err := a.Tick(); err != nil {
		log.Error().Err(err).Msg("alarm tick failed")
	}
}

// Tick performs one iteration: sample motion, measure if needed, drive the
// outputs. A sensor timeout counts as nothing in range; any other
// measurement error leaves the outputs untouched.
func (a *Alarm) Tick() (domain.State, error) {
	if !a.motion.MotionDetected() {
		return a.apply(domain.StateIdle)
	}

	d, err := a.sensor.Measure()
	switch {
	case errors.Is(err, domain.ErrSensorTimeout):
		log.Warn().Err(err).Msg("no echo from distance sensor")
		return a.apply(domain.StateSafe)
	case err != nil:
		return a.state, fmt.Errorf("measure distance: %w", err)
	}

	state := domain.Classify(true, d, a.threshold)
	log.Info().
		Float64("distance_cm", d.Centimeters()).
		Stringer("distance", d.Physic()).
		Str("state", state.String()).
		Msg("motion detected")

	return a.apply(state)
}

// Off silences the buzzer and switches the indicator off
func (a *Alarm) Off() error {
	if err := a.buzzer.SetBuzzer(false); err != nil {
		return fmt.Errorf("buzzer off: %w", err)
	}
	if err := a.indicator.SetColor(domain.Off); err != nil {
		return fmt.Errorf("indicator off: %w", err)
	}
	return nil
}

func (a *Alarm) apply(state domain.State) (domain.State, error) {
	if state != a.state {
		log.Debug().
			Str("from", a.state.String()).
			Str("to", state.String()).
			Msg("alarm state changed")
	}
	a.state = state

	if err := a.buzzer.SetBuzzer(state.BuzzerOn()); err != nil {
		return state, fmt.Errorf("set buzzer: %w", err)
	}
	if err := a.indicator.SetColor(state.Color()); err != nil {
		return state, fmt.Errorf("set indicator: %w", err)
	}
	return state, nil
}
