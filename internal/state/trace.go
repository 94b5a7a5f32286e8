package state

import (
	"math"
	"time"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/wgccre"
)

// RotationSample is the VSOP87 frame of a body at one epoch.
type RotationSample struct {
	Epoch time.Time
	Lat   float64
	Lon   float64
}

// RotationTrace contains frame samples over a time window.
type RotationTrace struct {
	Body        wgccre.Body
	Samples     []RotationSample
	WindowStart time.Time
	WindowEnd   time.Time
}

// ComputeRotationTrace samples b's frame at n evenly spaced epochs over
// [center-window, center+window].
func ComputeRotationTrace(b wgccre.Body, center time.Time, window time.Duration, n int) (*RotationTrace, error) {
	if n < 2 {
		return nil, wgccre.ErrSampleCount
	}
	start := center.Add(-window)
	end := center.Add(window)
	span := end.Sub(start)

	epochs := make([]time.Time, n)
	ts := make([]float64, n)
	for i := range epochs {
		epochs[i] = start.Add(time.Duration(float64(span) * float64(i) / float64(n-1)))
		ts[i] = astro.CenturiesSinceJ2000(epochs[i])
	}

	entries, err := wgccre.SampleAt(b, ts)
	if err != nil {
		return nil, err
	}

	samples := make([]RotationSample, n)
	for i, e := range entries {
		samples[i] = RotationSample{
			Epoch: epochs[i],
			Lat:   e.Frame.Lat,
			Lon:   e.Frame.Lon,
		}
	}

	return &RotationTrace{
		Body:        b,
		Samples:     samples,
		WindowStart: start,
		WindowEnd:   end,
	}, nil
}

// TraceWindow returns the half-width of b's rotation trace: limit, narrowed
// so the frame longitude turns at most once across the whole trace. Fast
// rotators would otherwise alias between samples.
func TraceWindow(b wgccre.Body, limit time.Duration) time.Duration {
	rate, err := wgccre.RotationRate(b)
	if err != nil || rate == 0 {
		return limit
	}
	half := astro.DurationFromCenturies(360/math.Abs(rate)) / 2
	if half < limit {
		return half
	}
	return limit
}

// Closest returns the sample nearest to at, or nil if there are none.
func (t *RotationTrace) Closest(at time.Time) *RotationSample {
	if t == nil || len(t.Samples) == 0 {
		return nil
	}

	var closest *RotationSample
	var minDelta time.Duration = 1<<63 - 1

	for i := range t.Samples {
		delta := t.Samples[i].Epoch.Sub(at)
		if delta < 0 {
			delta = -delta
		}
		if delta < minDelta {
			minDelta = delta
			closest = &t.Samples[i]
		}
	}
	return closest
}

func (t *RotationTrace) clone() *RotationTrace {
	if t == nil {
		return nil
	}
	c := *t
	c.Samples = make([]RotationSample, len(t.Samples))
	copy(c.Samples, t.Samples)
	return &c
}
