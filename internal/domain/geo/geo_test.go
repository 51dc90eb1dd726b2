package geo

import (
	"math"
	"testing"
)

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"berlin", 52.52, 13.405, true},
		{"poles", 90, -180, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -90.1, 0, false},
		{"lng too high", 0, 180.1, false},
		{"lng too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCoordinate(tt.lat, tt.lng).Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinateIsZero(t *testing.T) {
	if !NewCoordinate(0, 0).IsZero() {
		t.Error("null island should be zero")
	}
	if NewCoordinate(52.52, 13.405).IsZero() {
		t.Error("berlin should not be zero")
	}
}

func TestDistanceKm(t *testing.T) {
	berlin := NewCoordinate(52.5200, 13.4050)
	munich := NewCoordinate(48.1351, 11.5820)

	d := DistanceKm(berlin, munich)
	// Great-circle Berlin-Munich is roughly 504 km.
	if d < 490 || d > 520 {
		t.Errorf("DistanceKm(berlin, munich) = %v, want ~504", d)
	}

	if got := DistanceKm(berlin, berlin); got != 0 {
		t.Errorf("distance to self = %v, want 0", got)
	}

	if DistanceKm(berlin, munich) != DistanceKm(munich, berlin) {
		t.Error("distance should be symmetric")
	}
}

func TestUnreachable(t *testing.T) {
	if Unreachable != math.MaxFloat64 {
		t.Error("unreachable sentinel must exceed every real distance")
	}
}
