package wgccre

import (
	"errors"
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

var models = map[Body]model{
	Sol:     sol2015,
	Mercury: mercury2015,
	Venus:   venus2015,
	Earth:   earth2009,
	Moon:    moon2009,
	Mars:    mars2015,
	Jupiter: jupiter2015,
	Saturn:  saturn2015,
	Uranus:  uranus2015,
	Neptune: neptune2015,
}

func lookup(b Body) (model, error) {
	m, ok := models[b]
	if !ok {
		return model{}, &UnknownBodyError{Name: b.String()}
	}
	return m, nil
}

// Raw returns the raw orientation of b at t Julian centuries past J2000.0.
func Raw[F constraints.Float](b Body, t F) (Orientation[F], error) {
	m, err := lookup(b)
	if err != nil {
		return Orientation[F]{}, err
	}
	return eval(m, t), nil
}

// GetOrientation returns the VSOP87-aligned orientation of b at t Julian
// centuries past J2000.0. For an unsupported body it returns the zero Frame
// and an error matching ErrUnknownBody.
func GetOrientation[F constraints.Float](b Body, t F) (Frame[F], error) {
	o, err := Raw(b, t)
	if err != nil {
		return Frame[F]{}, err
	}
	return ToVSOP87(o), nil
}

// GetOrientationByName is GetOrientation keyed by canonical body name.
func GetOrientationByName[F constraints.Float](name string, t F) (Frame[F], error) {
	b, err := ParseBody(name)
	if err != nil {
		return Frame[F]{}, err
	}
	return GetOrientation(b, t)
}

// AtEpoch returns the constant terms of b's model, as printed in the
// report. Bodies with periodic terms differ from Raw(b, 0) by the value of
// those terms at J2000.0.
func AtEpoch(b Body) (Orientation[float64], error) {
	m, err := lookup(b)
	if err != nil {
		return Orientation[float64]{}, err
	}
	return Orientation[float64]{Alpha: m.alpha.c0, Delta: m.delta.c0, W: m.w.c0}, nil
}

// RotationRate returns the secular rate of b's prime meridian in degrees
// per Julian century of T.
func RotationRate(b Body) (float64, error) {
	m, err := lookup(b)
	if err != nil {
		return 0, err
	}
	return m.w.c1 * daysPerT, nil
}

// Entry is one body's orientation at a point in time.
type Entry[F constraints.Float] struct {
	Body  Body
	T     F
	Raw   Orientation[F]
	Frame Frame[F]
}

// All evaluates every supported body at t, in Bodies order.
func All[F constraints.Float](t F) []Entry[F] {
	bodies := Bodies()
	out := make([]Entry[F], len(bodies))
	for i, b := range bodies {
		o := eval(models[b], t)
		out[i] = Entry[F]{Body: b, T: t, Raw: o, Frame: ToVSOP87(o)}
	}
	return out
}

// ErrSampleCount is returned by Sample when fewer than two samples are requested.
var ErrSampleCount = errors.New("wgccre: sample count must be at least 2")

// Sample evaluates b at n evenly spaced times from t0 to t1 inclusive.
// Samples are computed in parallel; the result does not depend on
// scheduling.
func Sample[F constraints.Float](b Body, t0, t1 F, n int) ([]Entry[F], error) {
	if n < 2 {
		return nil, ErrSampleCount
	}
	ts := make([]F, n)
	step := (t1 - t0) / F(n-1)
	for i := range ts {
		ts[i] = t0 + step*F(i)
	}
	ts[n-1] = t1
	return SampleAt(b, ts)
}

// SampleAt evaluates b at each of ts, in order. Evaluations run in
// parallel, one goroutine per chunk of ts.
func SampleAt[F constraints.Float](b Body, ts []F) ([]Entry[F], error) {
	m, err := lookup(b)
	if err != nil {
		return nil, err
	}

	n := len(ts)
	out := make([]Entry[F], n)
	if n == 0 {
		return out, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				o := eval(m, ts[i])
				out[i] = Entry[F]{Body: b, T: ts[i], Raw: o, Frame: ToVSOP87(o)}
			}
		}(lo, hi)
	}
	wg.Wait()
	return out, nil
}
