package domain

import "errors"

var (
	// ErrSensorTimeout indicates the echo pin did not change state within the
	// configured budget
	ErrSensorTimeout = errors.New("sensor timeout")

	// ErrInvalidConfig indicates a component was built with unusable settings
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidDistance indicates a distance value is invalid
	ErrInvalidDistance = errors.New("distance cannot be negative")

	// ErrUnknownPin indicates a GPIO pin could not be found on the host
	ErrUnknownPin = errors.New("unknown gpio pin")
)
