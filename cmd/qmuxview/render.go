package main

import (
	"fmt"
	"strings"

	"github.com/williambong/Quantum/pkg/circuit"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// ──────────────────────────── Cell rendering ────────────────────────────

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW (11) visual characters wide.
func renderCell(info circuit.CellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	if info.IsPhase {
		// Global phase touches every wire equally; mark each one.
		top = emptyRow
		mid = strings.Repeat("─", dashL) + phaseStyle.Render("◈") + strings.Repeat("─", dashR)
		bot = emptyRow
		return
	}

	if info.Gate != nil {
		if info.IsControl {
			top = emptyRow
			if info.VertAbove {
				top = vertRow
			}
			mid = strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR)
			bot = emptyRow
			if info.VertBelow {
				bot = vertRow
			}

		} else if info.IsTarget {
			top = emptyRow
			if info.VertAbove {
				top = vertRow
			}
			if info.Gate.Type == circuit.GateCX {
				mid = strings.Repeat("─", dashL) + gateStyle.Render("⊕") + strings.Repeat("─", dashR)
			} else {
				// Controlled rotation: inline label instead of a symbol
				margin := (cellW - gateBoxW) / 2
				rightMargin := cellW - margin - gateBoxW
				name := padCenter(info.Gate.DisplayName(), gateNameW)
				mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
			}
			bot = emptyRow
			if info.VertBelow {
				bot = vertRow
			}

		} else {
			margin := (cellW - gateBoxW) / 2
			rightMargin := cellW - margin - gateBoxW
			name := padCenter(info.Gate.DisplayName(), gateNameW)

			top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
			mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
			bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		}

	} else if info.PassThrough {
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow

	} else {
		// Empty wire
		top = emptyRow
		if info.VertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		if info.VertBelow {
			bot = vertRow
		}
	}

	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the circuit grid panel.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	d := m.demos[m.demoIdx]
	sb.WriteString(titleStyle.Render(d.name))
	sb.WriteString(dimStyle.Render("  " + d.desc))
	sb.WriteString("\n\n")

	// How many steps fit
	availWidth := width - labelVisualW - 4
	maxSteps := max(availWidth/cellW, 1)

	startStep := 0
	if m.cursorStep >= maxSteps {
		startStep = m.cursorStep - maxSteps + 1
	}
	displaySteps := maxSteps

	if startStep > 0 {
		fmt.Fprintf(&sb, "  ◀ showing steps %d–%d of %d\n", startStep, startStep+displaySteps-1, m.circ.MaxSteps)
	}

	// Step number header
	header := strings.Repeat(" ", labelVisualW)
	for step := startStep; step < startStep+displaySteps; step++ {
		col := padCenter(fmt.Sprintf("%d", step), cellW)
		if step == m.cursorStep {
			header += activeStyle.Render(col)
		} else {
			header += dimStyle.Render(col)
		}
	}
	sb.WriteString(header + "\n")

	// Render each wire as 3 lines
	for wire := 0; wire < m.circ.NumQubits; wire++ {
		label := m.circ.WireLabel(wire)
		labelStyle := wireLabelStyle
		if wire >= m.circ.DataQubits {
			labelStyle = ancLabelStyle
		}

		topLine := strings.Repeat(" ", labelVisualW)
		midLine := labelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := startStep; step < startStep+displaySteps; step++ {
			top, mid, bot := renderCell(m.circ.GetCellInfo(step, wire))
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// Status line
	fmt.Fprintf(&sb, "\n  Input |%0*b⟩   index width %d   %d gates, %d steps",
		m.indexWidth, m.basisState, m.indexWidth, len(m.circ.Gates), m.circ.MaxSteps)
	if m.statusMsg != "" {
		fmt.Fprintf(&sb, "  │  %s", activeStyle.Render(m.statusMsg))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderQASMPanel renders the QASM viewport panel.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder

	title := "QASM"
	if m.focus == focusQASM {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.qasmView.View())

	return qasmStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel renders per-qubit |1⟩ probabilities after the circuit runs.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString("\n")

	const barW = 12
	for wire, p := range m.probs {
		filled := int(p*barW + 0.5)
		bar := probBarStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barW-filled))
		label := m.circ.WireLabel(wire)
		labelStyle := wireLabelStyle
		if wire >= m.circ.DataQubits {
			labelStyle = ancLabelStyle
		}
		fmt.Fprintf(&sb, "%s %s %5.1f%%\n", labelStyle.Render(fmt.Sprintf("%-5s", label)), bar, p*100)
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Basis state  ←→/hl Step  +/- Index width")
	sb.WriteString("    ")
	sb.WriteString(activeStyle.Render("d"))
	sb.WriteString(" Pick demo\n")

	sb.WriteString(activeStyle.Render("Actions:  "))
	sb.WriteString("Tab Switch focus  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at position (x, y).
// It handles ANSI escape sequences by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces visible columns starting at position x in bgLine with overlay content.
// It properly handles ANSI escape sequences in the background line.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix strings.Builder
	var suffix strings.Builder

	col := 0
	i := 0
	inEsc := false

	// Collect prefix: everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			inEsc = true
			for i < len(runes) {
				prefix.WriteRune(runes[i])
				if inEsc && runes[i] != '\x1b' && runes[i] != '[' && ((runes[i] >= 'A' && runes[i] <= 'Z') || (runes[i] >= 'a' && runes[i] <= 'z')) {
					inEsc = false
					i++
					break
				}
				i++
			}
		} else {
			prefix.WriteRune(runes[i])
			col++
			i++
		}
	}

	// Pad prefix if bg line is shorter than x
	for col < x {
		prefix.WriteRune(' ')
		col++
	}

	// Skip over ovWidth visible columns in the background
	skipped := 0
	for i < len(runes) && skipped < ovWidth {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				i++
				if i > 0 && runes[i-1] != '\x1b' && runes[i-1] != '[' && ((runes[i-1] >= 'A' && runes[i-1] <= 'Z') || (runes[i-1] >= 'a' && runes[i-1] <= 'z')) {
					break
				}
			}
		} else {
			skipped++
			i++
		}
	}

	// Collect suffix: rest of the background line
	for i < len(runes) {
		suffix.WriteRune(runes[i])
		i++
	}

	return prefix.String() + overlay + suffix.String()
}

// visibleLen returns the number of visible (non-ANSI-escape) characters in a string.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
