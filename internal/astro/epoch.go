package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// J2000 is the reference epoch, 2000 January 1 12:00.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// CenturiesSinceJ2000 returns the Julian centuries elapsed between J2000.0
// and t. The difference between UTC and TT is ignored.
func CenturiesSinceJ2000(t time.Time) float64 {
	return base.J2000Century(julian.TimeToJD(t.UTC()))
}

// TimeFromCenturies is the inverse of CenturiesSinceJ2000.
func TimeFromCenturies(c float64) time.Time {
	return julian.JDToTime(jdFromCenturies(c)).UTC()
}

// MeanObliquity returns the IAU mean obliquity of the ecliptic at c Julian
// centuries past J2000.0.
func MeanObliquity(c float64) unit.Angle {
	return nutation.MeanObliquity(jdFromCenturies(c))
}

// CenturiesPerDuration converts a wall-clock duration to Julian centuries.
func CenturiesPerDuration(d time.Duration) float64 {
	return d.Hours() / 24 / base.JulianCentury
}

// DurationFromCenturies is the inverse of CenturiesPerDuration.
func DurationFromCenturies(c float64) time.Duration {
	return time.Duration(c * base.JulianCentury * 24 * float64(time.Hour))
}

func jdFromCenturies(c float64) float64 {
	return base.J2000 + c*base.JulianCentury
}
