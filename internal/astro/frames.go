// Package astro provides the time scales, reference frames and angle
// formatting used around the orientation models.
package astro

import (
	"math"

	"github.com/litescript/ls-orient/internal/wgccre"
)

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Dot returns the scalar product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// EclipticLatitude returns the ecliptic latitude in degrees for a vector.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return radToDeg(math.Asin(v.Z / r))
}

// EclipticLongitude returns the ecliptic longitude in degrees for a vector.
func EclipticLongitude(v Vec3) float64 {
	lon := radToDeg(math.Atan2(v.Y, v.X))
	if lon < 0 {
		lon += 360
	}
	return lon
}

// obliquityRad is the tilt used by the orientation frame, in radians.
var obliquityRad = wgccre.EarthAxialTilt().Rad()

// EquatorialToEcliptic converts equatorial XYZ to ecliptic XYZ.
// Input is in any units; output is in the same units.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	// Rotation about the X-axis by the obliquity
	sinE, cosE := math.Sincos(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EclipticToEquatorial converts ecliptic XYZ to equatorial XYZ.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	sinE, cosE := math.Sincos(obliquityRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// PoleVector returns the equatorial unit vector of a pole given by its
// right ascension and declination in degrees.
func PoleVector(raDeg, decDeg float64) Vec3 {
	sinRA, cosRA := math.Sincos(degToRad(raDeg))
	sinDec, cosDec := math.Sincos(degToRad(decDeg))
	return Vec3{X: cosDec * cosRA, Y: cosDec * sinRA, Z: sinDec}
}

// EclipticPole returns the ecliptic latitude and longitude, in degrees, of
// a pole given in equatorial coordinates.
func EclipticPole(raDeg, decDeg float64) (latDeg, lonDeg float64) {
	ecl := EquatorialToEcliptic(PoleVector(raDeg, decDeg))
	return EclipticLatitude(ecl), EclipticLongitude(ecl)
}

// AxialTilt returns the angle in degrees between a pole given in
// equatorial coordinates and the ecliptic north pole.
func AxialTilt(raDeg, decDeg float64) float64 {
	lat, _ := EclipticPole(raDeg, decDeg)
	return 90 - lat
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
