package astro

import (
	"fmt"
	"math"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// NormalizeAngle360 normalizes an angle to 0-360 degrees.
func NormalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// FormatAngle renders an angle in degrees as sexagesimal degrees,
// minutes and seconds with one decimal of seconds. All segments are shown.
// Angles in [0, 360) that round to 360° at that precision print as 0°.
func FormatAngle(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "—"
	}
	if deg >= 0 && deg < 360 && math.Round(deg*tenthsPerDeg) >= 360*tenthsPerDeg {
		deg = 0
	}
	return fmt.Sprintf("%#.1d", sexa.FmtAngle(unit.AngleFromDeg(deg)))
}

// tenths of an arcsecond per degree, the FormatAngle precision
const tenthsPerDeg = 3600 * 10

// FormatDeg renders an angle in decimal degrees.
func FormatDeg(deg float64, decimals int) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "—"
	}
	return fmt.Sprintf("%.*f°", decimals, deg)
}
