package domain

import (
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestDistanceFromEcho(t *testing.T) {
	tests := []struct {
		name   string
		micros uint64
		want   float64
	}{
		{name: "zero width pulse", micros: 0, want: 0},
		{name: "ten centimeters", micros: 582, want: 10.0},
		{name: "one meter", micros: 5820, want: 100.0},
		{name: "odd width keeps fraction", micros: 1, want: 0.5 / 29.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceFromEcho(tt.micros).Centimeters()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceFromEcho(%d) = %v, want %v", tt.micros, got, tt.want)
			}
		})
	}
}

func TestNewDistance(t *testing.T) {
	tests := []struct {
		name    string
		cm      float64
		wantErr bool
	}{
		{name: "valid distance", cm: 42.5},
		{name: "zero is valid", cm: 0},
		{name: "negative is invalid", cm: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDistance(tt.cm)
			if tt.wantErr {
				if err != ErrInvalidDistance {
					t.Errorf("expected ErrInvalidDistance, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Centimeters() != tt.cm {
				t.Errorf("expected %v cm, got %v", tt.cm, d.Centimeters())
			}
		})
	}
}

func TestDistance_EchoMicrosRoundTrip(t *testing.T) {
	for _, cm := range []float64{2, 10, 57.3, 100, 400} {
		d := Distance(cm)
		back := DistanceFromEcho(d.EchoMicros())
		// one microsecond of rounding is 1/58.2 cm
		if math.Abs(back.Centimeters()-cm) > 1/58.2 {
			t.Errorf("round trip of %v cm gave %v", cm, back)
		}
	}
	if got := Distance(-3).EchoMicros(); got != 0 {
		t.Errorf("negative distance echo = %d, want 0", got)
	}
}

func TestDistance_Physic(t *testing.T) {
	if got := Distance(10).Physic(); got != 100*physic.MilliMetre {
		t.Errorf("Physic() = %v, want 10cm", got)
	}
	if got := DistanceFromPhysic(physic.Metre); got != 100 {
		t.Errorf("DistanceFromPhysic(1m) = %v, want 100cm", got)
	}
	if got := DistanceFromPhysic(Distance(57.5).Physic()); math.Abs(got.Centimeters()-57.5) > 1e-9 {
		t.Errorf("round trip of 57.5cm gave %v", got)
	}
}

func TestDistance_String(t *testing.T) {
	if got := Distance(9.96).String(); got != "10.0cm" {
		t.Errorf("String() = %q", got)
	}
}
