package ports

import (
	"github.com/quentinrf/proximity-alarm/internal/domain"
)

// DistanceSensor produces one distance reading per call
type DistanceSensor interface {
	// Measure blocks until the reading completes or the sensor times out
	Measure() (domain.Distance, error)
}

// MotionSensor reports whether motion is currently detected
type MotionSensor interface {
	MotionDetected() bool
}

// Buzzer is the audible alarm output
type Buzzer interface {
	SetBuzzer(on bool) error
}

// Indicator is the tri-color status light
type Indicator interface {
	SetColor(c domain.Color) error
}
