package domain

// State is the alarm state derived from one loop iteration
type State int

const (
	// StateIdle means no motion was detected
	StateIdle State = iota
	// StateSafe means motion was detected but nothing is within the alarm distance
	StateSafe
	// StateDanger means something moved within the alarm distance
	StateDanger
)

// Classify decides the alarm state for one iteration.
// Business rule: danger only when 0 < distance < threshold, a zero reading
// is treated as a sensor glitch.
func Classify(motion bool, d, threshold Distance) State {
	if !motion {
		return StateIdle
	}
	if d > 0 && d < threshold {
		return StateDanger
	}
	return StateSafe
}

// Color returns the indicator color for the state
func (s State) Color() Color {
	switch s {
	case StateDanger:
		return Red
	case StateSafe:
		return Green
	default:
		return Blue
	}
}

// BuzzerOn reports whether the buzzer sounds in this state
func (s State) BuzzerOn() bool {
	return s == StateDanger
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSafe:
		return "safe"
	case StateDanger:
		return "danger"
	}
	return "unknown"
}

// Color is one of the tri-color indicator channels
type Color struct {
	R, G, B bool
}

var (
	Red   = Color{R: true}
	Green = Color{G: true}
	Blue  = Color{B: true}
	Off   = Color{}
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Off:
		return "off"
	}
	return "mixed"
}
