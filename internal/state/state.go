// Package state provides thread-safe management of the simulated clock and
// the orientation table derived from it.
package state

import (
	"sync"
	"time"

	"github.com/soniakeys/unit"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/logging"
	"github.com/litescript/ls-orient/internal/observability"
	"github.com/litescript/ls-orient/internal/wgccre"
)

// BodyState is one body's orientation at the current epoch.
type BodyState struct {
	Body   wgccre.Body
	Report wgccre.Report
	Raw    wgccre.Orientation[float64]
	Frame  wgccre.Frame[float64]

	// Pole direction in ecliptic coordinates, degrees
	PoleLat float64
	PoleLon float64
	Tilt    float64 // angle between the pole and the ecliptic north pole
}

// TimeSeries is a single data point keyed by simulated epoch.
type TimeSeries struct {
	Epoch time.Time
	Value float64
}

// Config holds configuration for the state manager.
type Config struct {
	Step          time.Duration // simulated time added per Advance
	TickInterval  time.Duration // wall-clock time between UI ticks
	MaxHistoryLen int           // per-body longitude history
	TraceWindow   time.Duration // half-width of the rotation trace
	TraceSamples  int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Step:          10 * time.Minute,
		TickInterval:  500 * time.Millisecond,
		MaxHistoryLen: 120,
		TraceWindow:   12 * time.Hour,
		TraceSamples:  48,
	}
}

// Manager holds the simulated epoch and everything computed from it.
type Manager struct {
	mu sync.RWMutex

	epoch  time.Time
	step   time.Duration
	paused bool
	focus  wgccre.Body

	bodies        []BodyState
	history       map[wgccre.Body][]TimeSeries
	maxHistoryLen int

	trace        *RotationTrace
	traceWindow  time.Duration
	traceSamples int

	lastError error
	log       *logging.Logger
	metrics   *observability.Collector
}

// NewManager creates a manager positioned at epoch and computes the
// initial table.
func NewManager(cfg Config, epoch time.Time, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	if cfg.TraceSamples < 2 {
		cfg.TraceSamples = 2
	}
	m := &Manager{
		epoch:         epoch.UTC(),
		step:          cfg.Step,
		focus:         wgccre.Earth,
		history:       make(map[wgccre.Body][]TimeSeries),
		maxHistoryLen: cfg.MaxHistoryLen,
		traceWindow:   cfg.TraceWindow,
		traceSamples:  cfg.TraceSamples,
		log:           log.With("state"),
	}
	m.mu.Lock()
	m.recomputeLocked()
	m.mu.Unlock()
	return m
}

// Recompute rebuilds the table and focused trace for the current epoch.
func (m *Manager) Recompute() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeLocked()
}

// SetMetrics attaches a collector that observes every recomputation.
func (m *Manager) SetMetrics(c *observability.Collector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics = c
}

func (m *Manager) recomputeLocked() {
	start := time.Now()
	defer func() { m.metrics.ObserveRecompute(time.Since(start)) }()

	c := astro.CenturiesSinceJ2000(m.epoch)

	entries := wgccre.All(c)
	m.bodies = make([]BodyState, len(entries))
	for i, e := range entries {
		lat, lon := astro.EclipticPole(e.Raw.Alpha, e.Raw.Delta)
		m.bodies[i] = BodyState{
			Body:    e.Body,
			Report:  e.Body.Report(),
			Raw:     e.Raw,
			Frame:   e.Frame,
			PoleLat: lat,
			PoleLon: lon,
			Tilt:    90 - lat,
		}
		m.appendHistory(e.Body, e.Frame.Lon)
		m.metrics.AddEvaluations(e.Body.Report().String(), 1)
	}

	trace, err := ComputeRotationTrace(m.focus, m.epoch, TraceWindow(m.focus, m.traceWindow), m.traceSamples)
	if err != nil {
		m.log.Error("rotation trace for %v: %v", m.focus, err)
		m.lastError = err
		m.trace = nil
		return
	}
	m.trace = trace
	m.lastError = nil
	m.log.Debug("recomputed %d bodies at T=%.9f", len(entries), c)
}

func (m *Manager) appendHistory(b wgccre.Body, lon float64) {
	if m.maxHistoryLen <= 0 {
		return
	}
	h := append(m.history[b], TimeSeries{Epoch: m.epoch, Value: lon})
	if len(h) > m.maxHistoryLen {
		h = h[len(h)-m.maxHistoryLen:]
	}
	m.history[b] = h
}

// Advance moves the clock forward by one step unless paused. It reports
// whether the clock moved.
func (m *Manager) Advance() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused {
		return false
	}
	m.epoch = m.epoch.Add(m.step)
	m.recomputeLocked()
	return true
}

// SetEpoch jumps the clock to t.
func (m *Manager) SetEpoch(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch = t.UTC()
	m.recomputeLocked()
}

// Epoch returns the current simulated epoch.
func (m *Manager) Epoch() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

// SetStep sets the simulated time added per Advance. Negative steps run
// the clock backwards.
func (m *Manager) SetStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = d
}

// Step returns the simulated time added per Advance.
func (m *Manager) Step() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.step
}

// TogglePause flips the paused flag and returns the new value.
func (m *Manager) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = !m.paused
	return m.paused
}

// Paused reports whether Advance is currently a no-op.
func (m *Manager) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// SetFocus selects the body whose rotation trace is computed.
func (m *Manager) SetFocus(b wgccre.Body) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !b.Valid() {
		err := &wgccre.UnknownBodyError{Name: b.String()}
		m.lastError = err
		m.metrics.IncUnknownBody()
		m.log.Error("set focus: %v", err)
		return err
	}
	m.focus = b
	m.lastError = nil
	m.recomputeLocked()
	return nil
}

// Focus returns the focused body.
func (m *Manager) Focus() wgccre.Body {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.focus
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Epoch         time.Time
	Centuries     float64
	Step          time.Duration
	Paused        bool
	Focus         wgccre.Body
	Bodies        []BodyState
	FocusHistory  []TimeSeries
	Trace         *RotationTrace
	MeanObliquity unit.Angle
	LastError     error
}

// Body returns the state of b, or nil if the snapshot has none.
func (s Snapshot) Body(b wgccre.Body) *BodyState {
	for i := range s.Bodies {
		if s.Bodies[i].Body == b {
			return &s.Bodies[i]
		}
	}
	return nil
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bodies := make([]BodyState, len(m.bodies))
	copy(bodies, m.bodies)

	hist := make([]TimeSeries, len(m.history[m.focus]))
	copy(hist, m.history[m.focus])

	c := astro.CenturiesSinceJ2000(m.epoch)
	return Snapshot{
		Epoch:         m.epoch,
		Centuries:     c,
		Step:          m.step,
		Paused:        m.paused,
		Focus:         m.focus,
		Bodies:        bodies,
		FocusHistory:  hist,
		Trace:         m.trace.clone(),
		MeanObliquity: astro.MeanObliquity(c),
		LastError:     m.lastError,
	}
}

// History returns a copy of the longitude history of b.
func (m *Manager) History(b wgccre.Body) []TimeSeries {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h := make([]TimeSeries, len(m.history[b]))
	copy(h, m.history[b])
	return h
}
