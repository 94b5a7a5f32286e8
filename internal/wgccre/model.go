package wgccre

import "golang.org/x/exp/constraints"

// daysPerT converts the time argument to the day count used by the
// rotation terms.
const daysPerT = 365250.0

type trigFunc int

const (
	fnSin trigFunc = iota
	fnCos
)

// angle is an auxiliary argument phase + rate·x, where x is T or, for
// daily angles, d.
type angle struct {
	phase, rate float64
	daily       bool
}

func perCentury(phase, rate float64) angle { return angle{phase: phase, rate: rate} }
func perDay(phase, rate float64) angle     { return angle{phase: phase, rate: rate, daily: true} }

// term is one periodic correction amp·f(arg).
type term struct {
	amp float64
	fn  trigFunc
	arg angle
}

func sine(amp float64, arg angle) term   { return term{amp: amp, fn: fnSin, arg: arg} }
func cosine(amp float64, arg angle) term { return term{amp: amp, fn: fnCos, arg: arg} }

// series is c0 + c1·x + c2·x² + Σ terms. x is T for the pole angles and d
// for the prime meridian.
type series struct {
	c0, c1, c2 float64
	terms      []term
}

// model holds one body's coefficients as published in a report.
type model struct {
	report Report
	alpha  series
	delta  series
	w      series
}

func evalAngle[F constraints.Float](a angle, t, d F) F {
	x := t
	if a.daily {
		x = d
	}
	return F(a.phase) + F(a.rate)*x
}

func evalTerm[F constraints.Float](tm term, t, d F) F {
	arg := evalAngle(tm.arg, t, d)
	if tm.fn == fnCos {
		return F(tm.amp) * cosD(arg)
	}
	return F(tm.amp) * sinD(arg)
}

func evalSeries[F constraints.Float](s series, x, t, d F) F {
	v := F(s.c0) + F(s.c1)*x
	if s.c2 != 0 {
		v += F(s.c2) * (x * x)
	}
	for _, tm := range s.terms {
		v += evalTerm(tm, t, d)
	}
	return v
}

// eval evaluates the model at t Julian centuries past J2000.0.
func eval[F constraints.Float](m model, t F) Orientation[F] {
	d := t * F(daysPerT)
	return Orientation[F]{
		Alpha: evalSeries(m.alpha, t, t, d),
		Delta: evalSeries(m.delta, t, t, d),
		W:     evalSeries(m.w, d, t, d),
	}
}
