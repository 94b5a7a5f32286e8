package wgccre

import (
	"github.com/soniakeys/unit"
	"golang.org/x/exp/constraints"
)

// EarthAxialTiltDeg is the obliquity, in degrees, used to rotate a body's
// equatorial pole frame into the ecliptic frame of VSOP87.
const EarthAxialTiltDeg = 23.4392803055555555556

// lonOffset is a small empirical correction to the prime-meridian
// longitude, carried over from Stellarium's StelCore.
const lonOffset = 0.0000275

// EarthAxialTilt returns the obliquity used by ToVSOP87.
func EarthAxialTilt() unit.Angle {
	return unit.AngleFromDeg(EarthAxialTiltDeg)
}

// Orientation is a body's raw orientation in degrees: right ascension and
// declination of the north pole and the prime-meridian angle. Values are
// not range-reduced.
type Orientation[F constraints.Float] struct {
	Alpha F
	Delta F
	W     F
}

// Frame is an orientation expressed for a VSOP87 consumer. Lat and Lon lie
// in [0, 360); Roll is always zero.
type Frame[F constraints.Float] struct {
	Lat  F
	Lon  F
	Roll F
}

// Array returns the frame as a (lat, lon, roll) triple.
func (f Frame[F]) Array() [3]F {
	return [3]F{f.Lat, f.Lon, f.Roll}
}

// ToVSOP87 converts a raw orientation into the VSOP87-aligned frame.
func ToVSOP87[F constraints.Float](o Orientation[F]) Frame[F] {
	return Frame[F]{
		Lat: mod360(o.Delta + (90 - F(EarthAxialTiltDeg))),
		Lon: mod360((o.Alpha + o.W) - 180 + F(lonOffset)),
	}
}
