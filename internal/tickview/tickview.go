// Package tickview is an interactive explorer for tick label generation:
// adjust the count and divisor live and watch the labels re-render.
package tickview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/charta/pkg/render"
	"github.com/dkoosis/charta/pkg/ticks"
)

// divisorPreset pairs a numeric divisor with its typeset symbol.
type divisorPreset struct {
	div    float64
	symbol string
	name   string
}

var presets = []divisorPreset{
	{1, "", "1"},
	{math.Pi, `\pi`, "pi"},
	{math.Pi / 2, `\pi/2`, "pi/2"},
	{math.E, `e`, "e"},
}

// Explore runs the interactive explorer over [start, stop] with the given
// initial tick count.
func Explore(start, stop float64, count int, theme render.Theme) error {
	m := newModel(start, stop, count, theme)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type model struct {
	start, stop float64
	count       int
	preset      int
	theme       render.Theme
	viewport    viewport.Model
	ready       bool
	err         error
}

func newModel(start, stop float64, count int, theme render.Theme) model {
	if count < 2 {
		count = 5
	}
	vp := viewport.New(0, 0)
	return model{start: start, stop: stop, count: count, theme: theme, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "+":
			m.count++
			m.refresh()
		case "down", "j", "-":
			if m.count > 2 {
				m.count--
				m.refresh()
			}
		case "d":
			m.preset = (m.preset + 1) % len(presets)
			m.refresh()
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4 // header + footer
		if !m.ready {
			m.ready = true
			m.refresh()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh regenerates the tick table into the viewport.
func (m *model) refresh() {
	p := presets[m.preset]
	opts := []ticks.Option{ticks.WithCount(m.count), ticks.WithDivisor(p.div)}
	if p.symbol != "" {
		opts = append(opts, ticks.WithSymbol(p.symbol))
	}

	positions, labels, err := ticks.Labels(m.start, m.stop, opts...)
	if err != nil {
		m.err = err
		m.viewport.SetContent(err.Error())
		return
	}
	m.err = nil

	rows := make([]render.Row, len(positions))
	for i := range positions {
		rows[i] = render.Row{
			Key:   fmt.Sprintf("%.6g", positions[i]),
			Value: labels[i],
		}
	}
	m.viewport.SetContent(render.Table(m.theme, "", rows))
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	p := presets[m.preset]
	header := m.theme.Title.Render(fmt.Sprintf("ticks [%g, %g]", m.start, m.stop)) +
		m.theme.Muted.Render(fmt.Sprintf("  count=%d  divisor=%s", m.count, p.name))
	footer := m.theme.Muted.Render("↑/↓ count · d divisor · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Repeat("─", max(m.viewport.Width, 1)),
		m.viewport.View(),
		footer,
	)
}
