package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/logging"
	"github.com/litescript/ls-orient/internal/observability"
	"github.com/litescript/ls-orient/internal/state"
	"github.com/litescript/ls-orient/internal/wgccre"
)

func TestResolveEpoch(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		timeStr string
		t       float64
		want    time.Time
		wantErr bool
	}{
		{"default now", "", math.NaN(), now, false},
		{"rfc3339", "2010-01-01T00:00:00Z", math.NaN(), time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"offset converted to UTC", "2010-01-01T02:00:00+02:00", math.NaN(), time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"centuries win", "2010-01-01T00:00:00Z", 0, astro.J2000, false},
		{"bad time", "yesterday", math.NaN(), time.Time{}, true},
		{"infinite centuries", "", math.Inf(1), time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveEpoch(tt.timeStr, tt.t, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if d := got.Sub(tt.want); d > time.Millisecond || d < -time.Millisecond {
				t.Errorf("epoch = %v, want %v", got, tt.want)
			}
		})
	}
}

// setFlags sets the headless flag globals for one test.
func setFlags(t *testing.T, body string, js, summary, epoch bool) {
	t.Helper()
	bodyName, jsonMode, summaryMode, epochMode, watchInterval = body, js, summary, epoch, 0
	t.Cleanup(func() {
		bodyName, jsonMode, summaryMode, epochMode, watchInterval = "", false, false, false, 0
	})
}

func TestRunHeadlessJSON(t *testing.T) {
	setFlags(t, "Earth", true, false, false)
	mgr := state.NewManager(state.DefaultConfig(), astro.J2000, nil)

	var buf bytes.Buffer
	if err := runHeadless(context.Background(), &buf, mgr, logging.Discard()); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	var export state.SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(export.Bodies) != 1 || export.Bodies[0].Name != "Earth" {
		t.Fatalf("bodies = %+v, want only Earth", export.Bodies)
	}
	if got := export.Bodies[0].VSOP87[0]; math.Abs(got-156.5607196944) > 1e-9 {
		t.Errorf("Earth lat = %v", got)
	}
}

func TestRunHeadlessSummaryDefault(t *testing.T) {
	setFlags(t, "", false, false, false)
	mgr := state.NewManager(state.DefaultConfig(), astro.J2000, nil)

	var buf bytes.Buffer
	if err := runHeadless(context.Background(), &buf, mgr, logging.Discard()); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	for _, b := range wgccre.Bodies() {
		if !strings.Contains(buf.String(), b.String()) {
			t.Errorf("summary missing %s", b)
		}
	}
}

func TestRunHeadlessEpochOnly(t *testing.T) {
	setFlags(t, "", false, false, true)
	mgr := state.NewManager(state.DefaultConfig(), astro.J2000, nil)

	var buf bytes.Buffer
	if err := runHeadless(context.Background(), &buf, mgr, logging.Discard()); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if strings.Contains(buf.String(), "Orientation @") {
		t.Error("-epoch alone should not print the summary")
	}
	if !strings.Contains(buf.String(), "W0") {
		t.Error("epoch table header missing")
	}
}

func TestRunHeadlessUnknownBody(t *testing.T) {
	setFlags(t, "Pluto", false, true, false)
	mgr := state.NewManager(state.DefaultConfig(), astro.J2000, nil)

	var buf bytes.Buffer
	err := runHeadless(context.Background(), &buf, mgr, logging.Discard())
	if !errors.Is(err, wgccre.ErrUnknownBody) {
		t.Fatalf("err = %v, want ErrUnknownBody", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunHeadlessWatchStops(t *testing.T) {
	setFlags(t, "Mars", false, true, false)
	watchInterval = 5 * time.Millisecond
	mgr := state.NewManager(state.DefaultConfig(), astro.J2000, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	if err := runHeadless(ctx, &buf, mgr, logging.Discard()); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if n := strings.Count(buf.String(), "Orientation @"); n < 2 {
		t.Errorf("watch printed %d tables, want at least 2", n)
	}
	if !mgr.Epoch().After(astro.J2000) {
		t.Error("watch did not advance the clock")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteMetrics(t *testing.T) {
	c, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	c.ObserveRecompute(time.Millisecond)

	var logBuf bytes.Buffer
	log := logging.New(logging.LevelDebug)
	log.SetOutput(&logBuf)

	var out bytes.Buffer
	writeMetrics(&out, c, log)
	if !strings.Contains(out.String(), "orient_recomputes_total 1") {
		t.Errorf("metrics output = %q", out.String())
	}
	if logBuf.Len() != 0 {
		t.Errorf("unexpected log output %q", logBuf.String())
	}

	writeMetrics(failingWriter{}, c, log)
	if !strings.Contains(logBuf.String(), "WARN") || !strings.Contains(logBuf.String(), "disk full") {
		t.Errorf("write failure not logged: %q", logBuf.String())
	}

	logBuf.Reset()
	writeMetrics(&out, nil, log)
	if logBuf.Len() != 0 {
		t.Errorf("nil collector logged %q", logBuf.String())
	}
}
