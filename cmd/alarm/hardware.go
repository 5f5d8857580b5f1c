package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/proximity-alarm/internal/adapters/clock"
	"github.com/quentinrf/proximity-alarm/internal/adapters/mock"
	"github.com/quentinrf/proximity-alarm/internal/adapters/periph"
	"github.com/quentinrf/proximity-alarm/internal/adapters/pins"
	"github.com/quentinrf/proximity-alarm/internal/domain"
	"github.com/quentinrf/proximity-alarm/internal/ports"
	"github.com/quentinrf/proximity-alarm/internal/ultrasonic"
)

// hardware is the set of devices the alarm loop drives
type hardware struct {
	motion    ports.MotionSensor
	distance  ports.DistanceSensor
	buzzer    ports.Buzzer
	indicator ports.Indicator
}

// rawPins are the driver pins before they become devices
type rawPins struct {
	pir, echo                ports.InputPin
	trigger, buzzer, r, g, b ports.OutputPin
	clock                    ports.Clock
}

func buildHardware(cfg Config) (*hardware, error) {
	var (
		raw *rawPins
		err error
	)
	switch cfg.Driver {
	case "mock":
		raw = mockPins(cfg)
		log.Info().
			Float64("distance_cm", cfg.SimDistanceCM).
			Float64("variation_cm", cfg.SimVariationCM).
			Float64("motion_chance", cfg.SimMotionChance).
			Msg("initialized simulated hardware")
	default:
		raw, err = periphPins(cfg)
		if err != nil {
			return nil, err
		}
		log.Info().
			Int("pir", cfg.PIRPin).
			Int("trigger", cfg.TriggerPin).
			Int("echo", cfg.EchoPin).
			Msg("initialized periph gpio")
	}

	meter, err := ultrasonic.New(raw.trigger, raw.echo, raw.clock, ultrasonic.Config{
		EchoTimeout: cfg.echoTimeoutMicros(),
	})
	if err != nil {
		return nil, fmt.Errorf("distance meter: %w", err)
	}

	return &hardware{
		motion:    pins.NewPIR(raw.pir),
		distance:  meter,
		buzzer:    pins.NewBuzzer(raw.buzzer),
		indicator: pins.NewRGB(raw.r, raw.g, raw.b),
	}, nil
}

func periphPins(cfg Config) (*rawPins, error) {
	if err := periph.Init(); err != nil {
		return nil, err
	}

	var raw rawPins
	inputs := []struct {
		bcm int
		dst *ports.InputPin
	}{
		{cfg.PIRPin, &raw.pir},
		{cfg.EchoPin, &raw.echo},
	}
	for _, in := range inputs {
		p, err := periph.Input(in.bcm)
		if err != nil {
			return nil, err
		}
		*in.dst = p
	}

	outputs := []struct {
		bcm int
		dst *ports.OutputPin
	}{
		{cfg.TriggerPin, &raw.trigger},
		{cfg.BuzzerPin, &raw.buzzer},
		{cfg.LEDRedPin, &raw.r},
		{cfg.LEDGreenPin, &raw.g},
		{cfg.LEDBluePin, &raw.b},
	}
	for _, out := range outputs {
		p, err := periph.Output(out.bcm)
		if err != nil {
			return nil, err
		}
		*out.dst = p
	}

	raw.clock = clock.NewSystem()
	return &raw, nil
}

func mockPins(cfg Config) *rawPins {
	simClock := mock.NewClock(0, 0)
	sensor := mock.NewUltrasonicSensor(simClock, domain.Distance(cfg.SimDistanceCM))
	sensor.Jitter = domain.Distance(cfg.SimVariationCM).EchoMicros()

	return &rawPins{
		pir:     mock.NewRandomPin(cfg.SimMotionChance),
		echo:    sensor.Echo(),
		trigger: sensor.Trigger(),
		buzzer:  mock.NewPin(false),
		r:       mock.NewPin(false),
		g:       mock.NewPin(false),
		b:       mock.NewPin(false),
		clock:   simClock,
	}
}
