package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mersenne/internal/config"
	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/report"
	"github.com/san-kum/mersenne/internal/units"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var fieldHints = map[string]string{
	"note":           "a, c#, bb...",
	"octave":         "integer",
	"base_frequency": "A4 tuning",
	"frequency":      "Hz, kHz",
	"tension":        "N, kgf, lbf",
	"length":         "m, mm, in",
	"linear_mass":    "kg/m, g/m",
	"diameter":       "m, mm",
	"radius":         "m, mm",
	"volumic_mass":   "kg/m3, g/cm3",
}

type model struct {
	fields []string
	inputs report.Raw
	cursor int

	editing bool
	editBuf string

	resolver *mersenne.Resolver
	units    map[string]string
	result   *mersenne.ParameterSet
	computed *mersenne.Primary
	status   string
	failed   bool

	width  int
	height int
}

// NewCalculator builds the interactive model, seeded with initial inputs.
func NewCalculator(cfg *config.Config, initial report.Raw) *model {
	m := &model{
		fields:   report.ParamNames,
		inputs:   report.Raw{},
		resolver: cfg.Resolver(),
		units:    cfg.DisplayUnits,
		width:    80,
		height:   24,
	}
	for k, v := range initial {
		m.inputs[k] = v
	}
	m.recompute()
	return m
}

// Run starts the calculator on the terminal.
func Run(cfg *config.Config, initial report.Raw) error {
	p := tea.NewProgram(NewCalculator(cfg, initial))
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.navKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) navKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter", "e":
		m.editing = true
		m.editBuf = m.inputs[m.fields[m.cursor]]
	case "x", "delete":
		m.inputs = m.inputsWith(m.fields[m.cursor], "")
		m.recompute()
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.inputs = m.inputsWith(m.fields[m.cursor], strings.TrimSpace(m.editBuf))
		m.editing = false
		m.editBuf = ""
		m.recompute()
	case tea.KeyEsc:
		m.editing = false
		m.editBuf = ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	}
	return m, nil
}

// inputsWith copies the inputs so value-receiver updates never share a map.
func (m model) inputsWith(name, value string) report.Raw {
	next := make(report.Raw, len(m.inputs))
	for k, v := range m.inputs {
		next[k] = v
	}
	if value == "" {
		delete(next, name)
	} else {
		next[name] = value
	}
	return next
}

func (m *model) recompute() {
	m.result, m.computed, m.failed = nil, nil, false

	ps, err := report.Decode(m.inputs)
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	computed, err := m.resolver.Resolve(ps)
	switch {
	case errors.Is(err, mersenne.ErrNothingToCompute):
		m.result = ps
		m.status = "all four primaries given, nothing to compute"
	case err != nil:
		m.status, m.failed = err.Error(), true
	default:
		m.result = ps
		m.computed = &computed
		m.status = "solved for " + computed.String()
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Bold(true).Render("mersenne") + dim.Render("  string calculator") + "\n\n")

	for i, name := range m.fields {
		cursor := "  "
		label := dim.Render(fmt.Sprintf("%-15s", name))
		if i == m.cursor {
			cursor = cyan.Render("▸ ")
			label = white.Render(fmt.Sprintf("%-15s", name))
		}

		input := m.inputs[name]
		if m.editing && i == m.cursor {
			input = yellow.Render(m.editBuf + "█")
		} else if input == "" {
			input = dimmer.Render(fieldHints[name])
		}

		b.WriteString(cursor + label + lipgloss.NewStyle().Width(22).Render(input) + m.resolved(name) + "\n")
	}

	b.WriteString("\n")
	if m.failed {
		b.WriteString(red.Render("✗ "+m.status) + "\n")
	} else if m.status != "" {
		b.WriteString(green.Render("✓ "+m.status) + "\n")
	} else {
		b.WriteString(dim.Render("leave exactly one of frequency, tension, length, linear_mass empty") + "\n")
	}
	b.WriteString(dimmer.Render("↑/↓ move  enter edit  x clear  q quit") + "\n")
	return b.String()
}

func (m model) resolved(name string) string {
	if m.result == nil {
		return ""
	}
	switch name {
	case "note", "octave":
		return ""
	}
	v, ok := report.FloatValue(m.result, name)
	if !ok {
		return ""
	}
	s, err := units.FormatParam(name, v, m.units[name])
	if err != nil {
		return red.Render(err.Error())
	}
	if m.computed != nil && m.computed.String() == name {
		return green.Bold(true).Render("= " + s)
	}
	return white.Render("= " + s)
}
