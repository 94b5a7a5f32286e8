package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/state"
	"github.com/litescript/ls-orient/internal/wgccre"
)

// DetailModel shows the focused body's orientation in depth.
type DetailModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewDetailModel creates a new detail model.
func NewDetailModel() DetailModel {
	return DetailModel{}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DetailModel) UpdateData(snapshot state.Snapshot) DetailModel {
	m.snapshot = snapshot
	return m
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(18)

// View renders the detail panel.
func (m DetailModel) View() string {
	bs := m.snapshot.Body(m.snapshot.Focus)
	if bs == nil {
		return "  " + mutedStyle.Render("No body selected")
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(bs.Body.String()) + mutedStyle.Render("  "+bs.Report.String()))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(label) + rowStyle.Render(value) + "\n")
	}

	row("Pole α", astro.FormatAngle(bs.Raw.Alpha))
	row("Pole δ", astro.FormatAngle(bs.Raw.Delta))
	row("Prime meridian W", astro.FormatAngle(astro.NormalizeAngle360(bs.Raw.W)))
	b.WriteString("\n")
	row("VSOP87 lat", astro.FormatDeg(bs.Frame.Lat, 6))
	row("VSOP87 lon", astro.FormatDeg(bs.Frame.Lon, 6))
	b.WriteString("\n")
	row("Ecliptic pole", fmt.Sprintf("%s, %s", astro.FormatDeg(bs.PoleLat, 3), astro.FormatDeg(bs.PoleLon, 3)))
	row("Tilt to ecliptic", astro.FormatDeg(bs.Tilt, 3))
	row("Frame obliquity", astro.FormatAngle(wgccre.EarthAxialTiltDeg))
	row("Mean obliquity", astro.FormatAngle(m.snapshot.MeanObliquity.Deg()))
	b.WriteString("\n")

	b.WriteString("  " + labelStyle.Render("Lon trace"))
	b.WriteString(renderRotationSparkline(m.snapshot.Trace, SparklineWidth))
	b.WriteString("\n")
	if marker := renderNowMarker(m.snapshot.Trace, m.snapshot.Epoch, SparklineWidth); marker != "" {
		b.WriteString("  " + labelStyle.Render("") + marker + "\n")
	}
	if now := m.snapshot.Trace.Closest(m.snapshot.Epoch); now != nil {
		row("Now", fmt.Sprintf("lon %s at %s", astro.FormatDeg(now.Lon, 3), now.Epoch.Format("2006-01-02 15:04")))
	}

	return b.String()
}

// SparklineWidth is the fixed width of the rotation sparkline.
const SparklineWidth = 48

// sparklineBlocks are the Unicode block characters for sparkline (0 = lowest, 7 = highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderRotationSparkline renders the frame longitude over the trace
// window, one block per cell, 0° lowest and 360° highest.
func renderRotationSparkline(trace *state.RotationTrace, width int) string {
	if trace == nil || len(trace.Samples) == 0 {
		return mutedStyle.Render("No trace available")
	}

	samples := resampleLon(trace.Samples, width)

	var sb strings.Builder
	for _, lon := range samples {
		idx := int(lon / 360 * float64(len(sparklineBlocks)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparklineBlocks) {
			idx = len(sparklineBlocks) - 1
		}
		sb.WriteRune(sparklineBlocks[idx])
	}
	return rowStyle.Render(sb.String())
}

// resampleLon picks width samples by nearest index.
func resampleLon(samples []state.RotationSample, width int) []float64 {
	if width <= 0 || len(samples) == 0 {
		return nil
	}
	out := make([]float64, width)
	for i := range out {
		j := 0
		if width > 1 {
			j = i * (len(samples) - 1) / (width - 1)
		}
		out[i] = samples[j].Lon
	}
	return out
}

// renderNowMarker places a caret under the sparkline column nearest to now.
func renderNowMarker(trace *state.RotationTrace, now time.Time, width int) string {
	if trace == nil || width <= 0 {
		return ""
	}
	span := trace.WindowEnd.Sub(trace.WindowStart)
	if span <= 0 || now.Before(trace.WindowStart) || now.After(trace.WindowEnd) {
		return ""
	}
	col := int(float64(now.Sub(trace.WindowStart)) / float64(span) * float64(width-1))
	return strings.Repeat(" ", col) + titleStyle.Render("^")
}
