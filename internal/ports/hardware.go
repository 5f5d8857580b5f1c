package ports

// OutputPin drives a digital output
// This is a PORT - adapters (periph GPIO, Mock) will implement it
type OutputPin interface {
	// Set drives the pin high (true) or low (false)
	Set(high bool) error
}

// InputPin samples a digital input
type InputPin interface {
	// Read returns true when the pin is high
	Read() bool
}

// Clock is a monotonic microsecond counter.
// NowMicros may wrap at the counter width of the platform; callers compare
// samples with unsigned differences only.
type Clock interface {
	NowMicros() uint64
	SleepMicros(d uint64)
}
