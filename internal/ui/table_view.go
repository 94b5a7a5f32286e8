package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/state"
)

// Styles shared by the views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// TableModel lists the orientation of every body.
type TableModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewTableModel creates a new table model.
func NewTableModel() TableModel {
	return TableModel{}
}

// SetSize updates the viewport size.
func (m TableModel) SetSize(width, height int) TableModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m TableModel) UpdateData(snapshot state.Snapshot) TableModel {
	m.snapshot = snapshot
	return m
}

const tableRowFormat = "%-8s %-12s %11s %11s %11s %11s %11s"

// View renders the table.
func (m TableModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf(tableRowFormat, "Body", "Report", "α", "δ", "W", "Lat", "Lon")
	b.WriteString("  " + headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.snapshot.Bodies) == 0 {
		b.WriteString("  " + mutedStyle.Render("No bodies"))
		return b.String()
	}

	for _, bs := range m.snapshot.Bodies {
		line := fmt.Sprintf(tableRowFormat,
			bs.Body,
			bs.Report,
			astro.FormatDeg(bs.Raw.Alpha, 4),
			astro.FormatDeg(bs.Raw.Delta, 4),
			astro.FormatDeg(astro.NormalizeAngle360(bs.Raw.W), 4),
			astro.FormatDeg(bs.Frame.Lat, 4),
			astro.FormatDeg(bs.Frame.Lon, 4),
		)
		if bs.Body == m.snapshot.Focus {
			b.WriteString("▶ " + selectedRowStyle.Render(line))
		} else {
			b.WriteString("  " + rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
