package astro

import (
	"math"
	"testing"
)

func TestNormalizeAngle360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-90, 270},
		{725, 5},
	}

	for _, tt := range tests {
		if got := NormalizeAngle360(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeAngle360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero keeps all segments", 0, "0°0′0″.0"},
		{"seconds only", 1.5 / 3600, "0°0′1″.5"},
		{"minutes only", 0.5, "0°30′0″.0"},
		{"axial tilt", 23.4392803055555555556, "23°26′21″.4"},
		{"negative", -10.5, "-10°30′0″.0"},
		{"rounds up to 360 wraps", 359.99999, "0°0′0″.0"},
		{"just below 360", 359.9999, "359°59′59″.6"},
		{"NaN", math.NaN(), "—"},
		{"Inf", math.Inf(-1), "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAngle(tt.in); got != tt.want {
				t.Errorf("FormatAngle(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDeg(t *testing.T) {
	if got := FormatDeg(10.1470275, 4); got != "10.1470°" {
		t.Errorf("FormatDeg() = %q, want %q", got, "10.1470°")
	}
	if got := FormatDeg(math.Inf(1), 2); got != "—" {
		t.Errorf("FormatDeg(Inf) = %q", got)
	}
}
