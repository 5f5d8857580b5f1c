package domain

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// MicrosPerCentimeter is the time sound needs to travel one centimeter in air
// (speed of sound ≈ 343 m/s)
const MicrosPerCentimeter = 29.1

// Distance is a distance measured by the ultrasonic sensor, in centimeters
type Distance float64

// DistanceFromEcho converts a round-trip echo duration in microseconds into
// a one-way distance
func DistanceFromEcho(micros uint64) Distance {
	return Distance((float64(micros) / 2.0) / MicrosPerCentimeter)
}

// NewDistance validates a distance given in centimeters
func NewDistance(cm float64) (Distance, error) {
	if cm < 0 {
		return 0, ErrInvalidDistance
	}
	return Distance(cm), nil
}

// Centimeters returns the raw value
func (d Distance) Centimeters() float64 {
	return float64(d)
}

// Physic returns the distance as a periph physic.Distance (nanometer resolution)
func (d Distance) Physic() physic.Distance {
	return physic.Distance(float64(d) * float64(10*physic.MilliMetre))
}

// DistanceFromPhysic converts a periph distance to centimeters
func DistanceFromPhysic(p physic.Distance) Distance {
	return Distance(float64(p) / float64(10*physic.MilliMetre))
}

// EchoMicros returns the echo pulse width a sensor reports for this distance.
// It is the inverse of DistanceFromEcho, rounded to the nearest microsecond.
func (d Distance) EchoMicros() uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(d)*2.0*MicrosPerCentimeter + 0.5)
}

func (d Distance) String() string {
	return fmt.Sprintf("%.1fcm", float64(d))
}
