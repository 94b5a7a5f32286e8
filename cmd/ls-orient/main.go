// Command ls-orient shows the WGCCRE orientation of solar-system bodies in
// the frame used by VSOP87 orbital models.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/logging"
	"github.com/litescript/ls-orient/internal/observability"
	"github.com/litescript/ls-orient/internal/state"
	"github.com/litescript/ls-orient/internal/ui"
	"github.com/litescript/ls-orient/internal/wgccre"
)

// CLI flags for headless mode
var (
	bodyName      string
	jsonMode      bool
	summaryMode   bool
	epochMode     bool
	watchInterval time.Duration
)

const (
	minTick = 50 * time.Millisecond
	maxTick = 10 * time.Second
)

func main() {
	// Parse flags
	timeStr := flag.String("time", "", "Epoch as RFC3339 (default: now)")
	centuries := flag.Float64("t", math.NaN(), "Epoch as Julian centuries since J2000.0 (overrides -time)")
	step := flag.Duration("step", state.DefaultConfig().Step, "Simulated time per tick (e.g., 10m, -1h)")
	tick := flag.Duration("tick", state.DefaultConfig().TickInterval, "UI tick interval")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dumpMetrics := flag.Bool("metrics", false, "Write recomputation metrics to stderr on exit")
	flag.StringVar(&bodyName, "body", "", "Only show this body (e.g., Mars)")
	flag.BoolVar(&jsonMode, "json", false, "Print JSON snapshot to stdout")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&epochMode, "epoch", false, "Print the J2000.0 constant terms of every model")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat output at interval, advancing by -step (e.g., 1s)")
	flag.Parse()

	// Validate tick interval
	if *tick < minTick {
		*tick = minTick
	} else if *tick > maxTick {
		*tick = maxTick
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))
	log := logger.With("main")

	epoch, err := resolveEpoch(*timeStr, *centuries, time.Now())
	if err != nil {
		log.Error("%v", err)
		os.Exit(2)
	}

	// Create context with cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize components
	stateCfg := state.DefaultConfig()
	stateCfg.Step = *step
	stateCfg.TickInterval = *tick
	stateMgr := state.NewManager(stateCfg, epoch, logger)

	var collector *observability.Collector
	if *dumpMetrics {
		collector, err = observability.NewCollector(prometheus.NewRegistry())
		if err != nil {
			log.Error("metrics: %v", err)
			os.Exit(1)
		}
		stateMgr.SetMetrics(collector)
		defer writeMetrics(os.Stderr, collector, log)
	}

	// Headless mode: no TUI
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	headless := bodyName != "" || jsonMode || summaryMode || epochMode || watchInterval > 0 || !isTTY
	if headless {
		if err := runHeadless(ctx, os.Stdout, stateMgr, logger); err != nil {
			if errors.Is(err, wgccre.ErrUnknownBody) {
				collector.IncUnknownBody()
			}
			log.Error("%v", err)
			writeMetrics(os.Stderr, collector, log)
			os.Exit(1)
		}
		return
	}

	log.Debug("starting TUI at %s", epoch.Format(time.RFC3339))

	p := tea.NewProgram(ui.New(stateMgr, stateCfg.TickInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// writeMetrics dumps c to w, logging rather than failing on error.
func writeMetrics(w io.Writer, c *observability.Collector, log *logging.Logger) {
	if err := c.WriteText(w); err != nil {
		log.Warn("%v", err)
	}
}

// resolveEpoch picks the epoch from -t, then -time, then now.
func resolveEpoch(timeStr string, centuries float64, now time.Time) (time.Time, error) {
	switch {
	case !math.IsNaN(centuries):
		if math.IsInf(centuries, 0) {
			return time.Time{}, fmt.Errorf("invalid -t %v: must be finite", centuries)
		}
		return astro.TimeFromCenturies(centuries), nil
	case timeStr != "":
		t, err := time.Parse(time.RFC3339, timeStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid -time %q: %w", timeStr, err)
		}
		return t.UTC(), nil
	default:
		return now.UTC(), nil
	}
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, w io.Writer, stateMgr *state.Manager, logger *logging.Logger) error {
	var only []wgccre.Body
	if bodyName != "" {
		b, err := wgccre.ParseBody(bodyName)
		if err != nil {
			return fmt.Errorf("-body: %w", err)
		}
		only = append(only, b)
	}

	if epochMode {
		state.WriteEpochTable(w)
		if !jsonMode && !summaryMode && bodyName == "" {
			return nil
		}
		fmt.Fprintln(w)
	}

	outputOnce := func() error {
		snap := stateMgr.Snapshot()

		if jsonMode {
			if err := state.ExportSnapshot(snap, only...).WriteJSON(w); err != nil {
				return fmt.Errorf("write JSON: %w", err)
			}
		}

		// Summary is the default headless output
		if summaryMode || !jsonMode {
			state.WriteSummaryTable(w, snap, only...)
		}
		return nil
	}

	// Single run
	if watchInterval == 0 {
		return outputOnce()
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		return err
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch loop shutting down")
			return nil
		case <-ticker.C:
			stateMgr.Advance()
			fmt.Fprintln(w) // Blank line between outputs
			if err := outputOnce(); err != nil {
				return err
			}
		}
	}
}
