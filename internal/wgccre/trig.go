package wgccre

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// sinD returns the sine of an angle given in degrees, scaled by 180/π.
//
// The scale factor is part of the convention the coefficient tables below
// were calibrated against, so the result lies in [-57.29578, 57.29578]
// rather than [-1, 1].
func sinD[F constraints.Float](x F) F {
	return F(math.Sin(reduce360(float64(x))*degToRad) * radToDeg)
}

// cosD returns the cosine of an angle given in degrees, scaled by 180/π.
func cosD[F constraints.Float](x F) F {
	return F(math.Cos(reduce360(float64(x))*degToRad) * radToDeg)
}

// reduce360 maps x into [0, 360). NaN and ±Inf yield NaN.
func reduce360(x float64) float64 {
	r := math.Mod(x, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// mod360 is reduce360 for any float type. The check after conversion
// catches float32 rounding a value just below 360 up to 360.
func mod360[F constraints.Float](x F) F {
	r := F(reduce360(float64(x)))
	if r >= 360 {
		r = 0
	}
	return r
}
