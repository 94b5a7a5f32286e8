// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/state"
	"github.com/litescript/ls-orient/internal/version"
	"github.com/litescript/ls-orient/internal/wgccre"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewDetail
)

const viewCount = 2

// TickMsg advances the simulated clock.
type TickMsg time.Time

// stepPresets are the clock rates selectable with +/-.
var stepPresets = []time.Duration{
	time.Minute,
	10 * time.Minute,
	time.Hour,
	6 * time.Hour,
	24 * time.Hour,
	10 * 24 * time.Hour,
	100 * 24 * time.Hour,
}

// Model is the root Bubble Tea model.
type Model struct {
	state        *state.Manager
	tickInterval time.Duration
	now          func() time.Time

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	table  TableModel
	detail DetailModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, tickInterval time.Duration) Model {
	if tickInterval <= 0 {
		tickInterval = state.DefaultConfig().TickInterval
	}
	snap := stateMgr.Snapshot()
	return Model{
		state:        stateMgr,
		tickInterval: tickInterval,
		now:          time.Now,
		viewMode:     ViewTable,
		table:        NewTableModel().UpdateData(snap),
		detail:       NewDetailModel().UpdateData(snap),
		snapshot:     snap,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "t":
			m.viewMode = ViewTable
		case "2", "d":
			m.viewMode = ViewDetail
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		case "j", "down":
			m.moveFocus(1)
		case "k", "up":
			m.moveFocus(-1)

		case " ", "p":
			if m.state.TogglePause() {
				m.statusMsg = "Paused"
			} else {
				m.statusMsg = "Running"
			}
		case "+", "=":
			m.changeStep(1)
		case "-":
			m.changeStep(-1)
		case "r":
			m.state.SetStep(-m.state.Step())
			m.statusMsg = "Step " + formatStep(m.state.Step())
		case "n":
			m.state.SetEpoch(m.now())
			m.statusMsg = "Jumped to now"
		case "0":
			m.state.SetEpoch(astro.J2000)
			m.statusMsg = "Jumped to J2000.0"
		}
		m.refresh()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 6
		m.table = m.table.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, m.tickCmd())
		m.state.Advance()
		m.refresh()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.table = m.table.UpdateData(m.snapshot)
	m.detail = m.detail.UpdateData(m.snapshot)
}

func (m *Model) moveFocus(delta int) {
	bodies := wgccre.Bodies()
	idx := (int(m.state.Focus()) + delta + len(bodies)) % len(bodies)
	if err := m.state.SetFocus(bodies[idx]); err != nil {
		m.statusMsg = err.Error()
	}
}

func (m *Model) changeStep(delta int) {
	cur := m.state.Step()
	sign := time.Duration(1)
	if cur < 0 {
		sign = -1
		cur = -cur
	}

	idx := 0
	for i, p := range stepPresets {
		if p <= cur {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stepPresets) {
		idx = len(stepPresets) - 1
	}

	m.state.SetStep(sign * stepPresets[idx])
	m.statusMsg = "Step " + formatStep(m.state.Step())
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewTable:
		content = m.table.View()
	case ViewDetail:
		content = m.detail.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("  ls-orient v%s", version.Version)))
	b.WriteString(mutedStyle.Render("  · WGCCRE body orientation for VSOP87"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Table", "[2] Detail"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, mutedStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	snap := m.snapshot

	clock := fmt.Sprintf("%s  T=%+.9f  step %s",
		snap.Epoch.Format("2006-01-02 15:04:05 MST"), snap.Centuries, formatStep(snap.Step))
	if snap.Paused {
		clock += "  ⏸"
	}

	var status string
	switch {
	case snap.LastError != nil:
		status = errorStyle.Render("ERROR: " + snap.LastError.Error())
	case m.statusMsg != "":
		status = mutedStyle.Render(m.statusMsg)
	}

	help := mutedStyle.Render("tab view · j/k body · space pause · +/- step · r reverse · n now · 0 J2000 · q quit")
	return "  " + clock + "  " + status + "\n  " + help
}

// formatStep renders a clock step compactly, e.g. "+6h" or "-10d".
func formatStep(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	switch {
	case d >= 24*time.Hour && d%(24*time.Hour) == 0:
		return fmt.Sprintf("%s%dd", sign, d/(24*time.Hour))
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%s%dh", sign, d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%s%dm", sign, d/time.Minute)
	default:
		return sign + d.String()
	}
}
