package state

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/wgccre"
)

func TestComputeRotationTrace(t *testing.T) {
	center := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	trace, err := ComputeRotationTrace(wgccre.Jupiter, center, 2*time.Hour, 9)
	if err != nil {
		t.Fatalf("ComputeRotationTrace() error = %v", err)
	}

	if len(trace.Samples) != 9 {
		t.Fatalf("len(Samples) = %d, want 9", len(trace.Samples))
	}
	if !trace.WindowStart.Equal(center.Add(-2*time.Hour)) || !trace.WindowEnd.Equal(center.Add(2*time.Hour)) {
		t.Errorf("window = %v..%v", trace.WindowStart, trace.WindowEnd)
	}
	if !trace.Samples[0].Epoch.Equal(trace.WindowStart) || !trace.Samples[8].Epoch.Equal(trace.WindowEnd) {
		t.Errorf("sample endpoints = %v..%v", trace.Samples[0].Epoch, trace.Samples[8].Epoch)
	}
	if !trace.Samples[4].Epoch.Equal(center) {
		t.Errorf("middle sample = %v, want %v", trace.Samples[4].Epoch, center)
	}

	// Lon and Lat must describe the sample's own Epoch exactly.
	for _, s := range trace.Samples {
		want, err := wgccre.GetOrientation(wgccre.Jupiter, astro.CenturiesSinceJ2000(s.Epoch))
		if err != nil {
			t.Fatalf("GetOrientation() error = %v", err)
		}
		if s.Lon != want.Lon || s.Lat != want.Lat {
			t.Errorf("sample at %v = (%v, %v), want (%v, %v)", s.Epoch, s.Lat, s.Lon, want.Lat, want.Lon)
		}
	}
}

func TestComputeRotationTrace_Errors(t *testing.T) {
	if _, err := ComputeRotationTrace(wgccre.Earth, astro.J2000, time.Hour, 1); !errors.Is(err, wgccre.ErrSampleCount) {
		t.Errorf("n=1 error = %v, want ErrSampleCount", err)
	}
	if _, err := ComputeRotationTrace(wgccre.Body(12), astro.J2000, time.Hour, 4); !errors.Is(err, wgccre.ErrUnknownBody) {
		t.Errorf("unknown body error = %v, want ErrUnknownBody", err)
	}
}

func TestRotationTrace_Closest(t *testing.T) {
	trace, err := ComputeRotationTrace(wgccre.Saturn, astro.J2000, time.Hour, 5)
	if err != nil {
		t.Fatalf("ComputeRotationTrace() error = %v", err)
	}

	got := trace.Closest(astro.J2000.Add(20 * time.Minute))
	if got == nil || !got.Epoch.Equal(astro.J2000.Add(30*time.Minute)) {
		t.Errorf("Closest() = %+v, want sample at +30m", got)
	}

	var empty *RotationTrace
	if empty.Closest(astro.J2000) != nil {
		t.Error("Closest() on nil trace should be nil")
	}
}

func TestTraceWindow(t *testing.T) {
	limit := DefaultConfig().TraceWindow

	tests := []struct {
		name string
		body wgccre.Body
		want time.Duration // 0: derived from the rotation rate
	}{
		{"slow rotator keeps limit", wgccre.Venus, limit},
		{"Sun keeps limit", wgccre.Sol, limit},
		{"Moon keeps limit", wgccre.Moon, limit},
		{"unknown body keeps limit", wgccre.Body(12), limit},
		{"Jupiter narrowed", wgccre.Jupiter, 0},
		{"Earth narrowed", wgccre.Earth, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraceWindow(tt.body, limit)
			if tt.want != 0 {
				if got != tt.want {
					t.Errorf("TraceWindow() = %v, want %v", got, tt.want)
				}
				return
			}
			if got >= limit || got <= 0 {
				t.Fatalf("TraceWindow() = %v, want within (0, %v)", got, limit)
			}

			// the whole trace spans one turn of W
			rate, _ := wgccre.RotationRate(tt.body)
			turn := math.Abs(rate) * astro.CenturiesPerDuration(2*got)
			if math.Abs(turn-360) > 1e-3 {
				t.Errorf("trace spans %v°, want 360°", turn)
			}
		})
	}
}

func TestManager_FastRotatorTraceNotAliased(t *testing.T) {
	m := NewManager(DefaultConfig(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	if err := m.SetFocus(wgccre.Jupiter); err != nil {
		t.Fatalf("SetFocus() error = %v", err)
	}

	trace := m.Snapshot().Trace
	if trace == nil {
		t.Fatal("no trace")
	}
	n := len(trace.Samples)
	maxStep := 360.0 / float64(n-1) * 1.01
	for i := 1; i < n; i++ {
		step := math.Abs(math.Remainder(trace.Samples[i].Lon-trace.Samples[i-1].Lon, 360))
		if step > maxStep {
			t.Errorf("lon step %d = %v°, want <= %v°", i, step, maxStep)
		}
	}
}
