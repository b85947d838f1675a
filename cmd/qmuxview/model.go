package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/williambong/Quantum/pkg/circuit"
	"github.com/williambong/Quantum/pkg/quantum"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusQASM
	focusMenu
)

// Model represents the TUI application state. The viewer is read-only: it
// records a demo decomposition, renders the circuit, and shows the simulated
// state for a chosen input basis state.
type Model struct {
	demos      []demo
	demoIdx    int
	indexWidth int
	basisState int

	circ     *circuit.Circuit
	probs    []float64
	qasmView viewport.Model

	cursorStep int
	width      int
	height     int
	focus      focus
	menuItem   int
	statusMsg  string

	logger zerolog.Logger
}

func newModel(logger zerolog.Logger) Model {
	m := Model{
		demos:      demos,
		indexWidth: 2,
		qasmView:   viewport.New(40, 20),
		logger:     logger,
	}
	m.rebuild()
	return m
}

// selectDemo switches to the named demo; the name match is case-insensitive
// and accepts unique prefixes.
func (m *Model) selectDemo(name string) bool {
	lowered := strings.ToLower(name)
	for i, d := range m.demos {
		if strings.HasPrefix(strings.ToLower(d.name), lowered) {
			m.demoIdx = i
			m.basisState = 0
			m.cursorStep = 0
			m.rebuild()
			return true
		}
	}
	return false
}

func (m *Model) setIndexWidth(w int) {
	d := m.demos[m.demoIdx]
	m.indexWidth = min(max(w, d.minWidth), d.maxWidth)
	if m.basisState >= 1<<m.indexWidth {
		m.basisState = 0
	}
	m.rebuild()
}

// rebuild re-records the current demo, regenerates the QASM view and
// re-simulates the circuit for the selected basis state.
func (m *Model) rebuild() {
	d := m.demos[m.demoIdx]
	w := min(max(m.indexWidth, d.minWidth), d.maxWidth)
	m.indexWidth = w

	r := circuit.NewRecorder(d.wires(w))
	if err := d.build(r, w); err != nil {
		m.statusMsg = err.Error()
	}
	m.circ = r.Circuit()
	m.qasmView.SetContent(m.circ.ToQASM())

	sim := quantum.NewSimulator(m.circ.NumQubits)
	sim.PrepareBasis(d.index(w), m.basisState)
	m.circ.Replay(sim)
	m.probs = sim.Probabilities()

	m.logger.Debug().
		Str("demo", d.name).
		Int("index_width", w).
		Int("basis_state", m.basisState).
		Int("gates", len(m.circ.Gates)).
		Int("wires", m.circ.NumQubits).
		Msg("rebuilt demo")
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		sideW := max(msg.Width/3-6, 20)
		m.qasmView.Width = sideW
		stateH := len(m.probs) + 4
		m.qasmView.Height = max(msg.Height-stateH-12, 4)

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusQASM
			case "d", "enter":
				m.focus = focusMenu
				m.menuItem = m.demoIdx
			case "left", "h":
				if m.cursorStep > 0 {
					m.cursorStep--
				}
			case "right", "l":
				if m.cursorStep < m.circ.MaxSteps-1 {
					m.cursorStep++
				}
			case "up", "k":
				if m.basisState > 0 {
					m.basisState--
					m.rebuild()
				}
			case "down", "j":
				if m.basisState < 1<<m.indexWidth-1 {
					m.basisState++
					m.rebuild()
				}
			case "+", "=":
				m.setIndexWidth(m.indexWidth + 1)
			case "-":
				m.setIndexWidth(m.indexWidth - 1)
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(m.demos)-1 {
					m.menuItem++
				}
			case "enter":
				m.demoIdx = m.menuItem
				m.basisState = 0
				m.cursorStep = 0
				m.rebuild()
				m.focus = focusCircuit
			}

		case focusQASM:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusCircuit
			default:
				var cmd tea.Cmd
				m.qasmView, cmd = m.qasmView.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sideWidth := m.width / 3
	circuitWidth := m.width - sideWidth - 4
	controlsHeight := 6
	mainHeight := max(m.height-controlsHeight-2, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, mainHeight)
	stateH := len(m.probs) + 2
	qasmPanel := m.renderQASMPanel(sideWidth, max(mainHeight-stateH-2, 4))
	statePanel := m.renderStatePanel(sideWidth, stateH)
	sideColumn := lipgloss.JoinVertical(lipgloss.Left, qasmPanel, statePanel)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, sideColumn)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	if m.focus == focusMenu {
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	}

	return frame
}

// renderMenu renders the floating demo-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Demos"))
	sb.WriteString("\n\n")
	for i, d := range m.demos {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ " + d.name))
			sb.WriteString(dimStyle.Render("  " + d.desc))
		} else {
			sb.WriteString("   " + menuNormalStyle.Render(d.name))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
