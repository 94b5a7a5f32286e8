package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 20, 9, 30, 15, 250e6, time.UTC)
}

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(level)
	l.SetOutput(&buf)
	l.sink.now = fixedClock
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_Filtering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("want 2 lines, got %q", out)
	}
	if !strings.Contains(out, "09:30:15.250 [WARN] shown 3\n") {
		t.Errorf("unexpected warn line in %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	l.With("wgccre").With("dispatch").Error("unknown body %q", "Pluto")

	want := "09:30:15.250 [ERROR] wgccre.dispatch: unknown body \"Pluto\"\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	// Children share the parent's level.
	child := l.With("ui")
	l.SetLevel(LevelError)
	if child.Enabled(LevelInfo) {
		t.Error("child should follow parent level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(LevelError) {
		t.Error("Discard logger should not be enabled at any level")
	}
	l.Error("nothing %s", "here")
}

func TestLogger_Concurrent(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.With("worker").Info("message %d", i)
		}(i)
	}
	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 20 {
		t.Errorf("got %d lines, want 20", n)
	}
}
