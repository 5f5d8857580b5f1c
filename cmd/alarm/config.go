package main

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v6"
	"periph.io/x/conn/v3/physic"

	"github.com/quentinrf/proximity-alarm/internal/domain"
)

// Config holds application configuration
// Pin numbers are BCM numbers.
type Config struct {
	Driver string `env:"GPIO_DRIVER" envDefault:"periph"` // "periph" | "mock"

	PIRPin      int `env:"PIR_PIN" envDefault:"16"`
	TriggerPin  int `env:"TRIGGER_PIN" envDefault:"17"`
	EchoPin     int `env:"ECHO_PIN" envDefault:"18"`
	BuzzerPin   int `env:"BUZZER_PIN" envDefault:"14"`
	LEDRedPin   int `env:"LED_RED_PIN" envDefault:"19"`
	LEDGreenPin int `env:"LED_GREEN_PIN" envDefault:"20"`
	LEDBluePin  int `env:"LED_BLUE_PIN" envDefault:"21"`

	TickInterval  time.Duration   `env:"TICK_INTERVAL" envDefault:"500ms"`
	AlarmDistance physic.Distance `env:"ALARM_DISTANCE" envDefault:"1m"`
	EchoTimeout   time.Duration   `env:"ECHO_TIMEOUT" envDefault:"38ms"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// mock driver only
	SimDistanceCM   float64 `env:"SIM_DISTANCE_CM" envDefault:"80"`
	SimVariationCM  float64 `env:"SIM_VARIATION_CM" envDefault:"40"`
	SimMotionChance float64 `env:"SIM_MOTION_CHANCE" envDefault:"0.5"`
}

// parsers teaches env the periph units, so ALARM_DISTANCE accepts "1m" or "500mm"
var parsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(physic.Distance(0)): func(v string) (interface{}, error) {
		var d physic.Distance
		if err := d.Set(v); err != nil {
			return nil, err
		}
		return d, nil
	},
}

// loadConfig reads configuration from environment variables
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithFuncs(&cfg, parsers); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Driver {
	case "periph", "mock":
	default:
		return fmt.Errorf("%w: GPIO_DRIVER %q, want periph or mock", domain.ErrInvalidConfig, c.Driver)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: TICK_INTERVAL must be positive", domain.ErrInvalidConfig)
	}
	if c.EchoTimeout < time.Microsecond {
		return fmt.Errorf("%w: ECHO_TIMEOUT must be at least 1µs", domain.ErrInvalidConfig)
	}
	if c.AlarmDistance <= 0 {
		return fmt.Errorf("%w: ALARM_DISTANCE must be positive", domain.ErrInvalidConfig)
	}
	if c.SimMotionChance < 0 || c.SimMotionChance > 1 {
		return fmt.Errorf("%w: SIM_MOTION_CHANCE must be within [0, 1]", domain.ErrInvalidConfig)
	}
	return nil
}

// alarmThreshold converts the alarm distance for the controller
func (c Config) alarmThreshold() domain.Distance {
	return domain.DistanceFromPhysic(c.AlarmDistance)
}

// echoTimeoutMicros converts the echo budget for the meter
func (c Config) echoTimeoutMicros() uint64 {
	return uint64(c.EchoTimeout / time.Microsecond)
}
