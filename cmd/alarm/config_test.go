package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"

	"github.com/quentinrf/proximity-alarm/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "periph", cfg.Driver)
	assert.Equal(t, 16, cfg.PIRPin)
	assert.Equal(t, 17, cfg.TriggerPin)
	assert.Equal(t, 18, cfg.EchoPin)
	assert.Equal(t, 14, cfg.BuzzerPin)
	assert.Equal(t, []int{19, 20, 21}, []int{cfg.LEDRedPin, cfg.LEDGreenPin, cfg.LEDBluePin})
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, physic.Metre, cfg.AlarmDistance)
	assert.Equal(t, domain.Distance(100), cfg.alarmThreshold())
	assert.Equal(t, uint64(38000), cfg.echoTimeoutMicros())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("GPIO_DRIVER", "mock")
	t.Setenv("TRIGGER_PIN", "23")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("ECHO_TIMEOUT", "25ms")
	t.Setenv("ALARM_DISTANCE", "425mm")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.Driver)
	assert.Equal(t, 23, cfg.TriggerPin)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, uint64(25000), cfg.echoTimeoutMicros())
	assert.Equal(t, 425*physic.MilliMetre, cfg.AlarmDistance)
	assert.InDelta(t, 42.5, cfg.alarmThreshold().Centimeters(), 1e-9)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "unknown driver", key: "GPIO_DRIVER", value: "wiringpi"},
		{name: "zero tick", key: "TICK_INTERVAL", value: "0s"},
		{name: "sub-microsecond timeout", key: "ECHO_TIMEOUT", value: "10ns"},
		{name: "zero distance", key: "ALARM_DISTANCE", value: "0m"},
		{name: "motion chance above one", key: "SIM_MOTION_CHANCE", value: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := loadConfig()
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}

	t.Run("distance without unit", func(t *testing.T) {
		t.Setenv("ALARM_DISTANCE", "100")

		_, err := loadConfig()
		assert.Error(t, err)
	})

	t.Run("unparsable pin", func(t *testing.T) {
		t.Setenv("ECHO_PIN", "eighteen")

		_, err := loadConfig()
		assert.Error(t, err)
	})
}

func TestBuildHardware_Mock(t *testing.T) {
	t.Setenv("GPIO_DRIVER", "mock")
	t.Setenv("SIM_DISTANCE_CM", "50")
	t.Setenv("SIM_VARIATION_CM", "0")
	t.Setenv("SIM_MOTION_CHANCE", "1")

	cfg, err := loadConfig()
	require.NoError(t, err)

	hw, err := buildHardware(cfg)
	require.NoError(t, err)

	assert.True(t, hw.motion.MotionDetected())

	d, err := hw.distance.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, d.Centimeters(), 0.02)

	require.NoError(t, hw.buzzer.SetBuzzer(true))
	require.NoError(t, hw.indicator.SetColor(domain.Red))
}
