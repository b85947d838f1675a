// Package circuit captures the primitive gates emitted by the decomposition
// routines as a renderable, replayable timeline. Recorder implements
// quantum.Machine, so any routine that targets the simulator can be pointed at
// a Recorder instead to get a circuit diagram or QASM out of it.
package circuit

import (
	"fmt"

	"github.com/williambong/Quantum/pkg/quantum"
)

// Gate kinds recorded by the Recorder. CX covers any number of control
// qubits; EXPI is a global phase and spans all wires.
const (
	GateExp  = "EXP"
	GateExpI = "EXPI"
	GateH    = "H"
	GateX    = "X"
	GateS    = "S"
	GateSDG  = "SDG"
	GateCX   = "CX"
	GateCExp = "CEXP"
)

// Gate is one recorded primitive application.
type Gate struct {
	Type     string
	Axis     quantum.Axis // EXP/CEXP only
	Theta    float64      // EXP/CEXP/EXPI only
	Target   quantum.Qubit
	Controls []quantum.Qubit
	Step     int // position in circuit timeline
}

// Circuit holds the recorded gate timeline.
type Circuit struct {
	NumQubits  int // total wires, ancillas included
	DataQubits int // wires that existed before the first Alloc
	Gates      []Gate
	MaxSteps   int
}

// WireLabel names a wire for display: data wires are q[i], ancilla wires a[k].
func (c *Circuit) WireLabel(wire int) string {
	if wire < c.DataQubits {
		return fmt.Sprintf("q[%d]", wire)
	}
	return fmt.Sprintf("a[%d]", wire-c.DataQubits)
}

// Replay re-issues every recorded gate, in emission order, onto another
// Machine. The Machine must already hold NumQubits wires; Replay never
// allocates.
func (c *Circuit) Replay(m quantum.Machine) {
	for _, g := range c.Gates {
		switch g.Type {
		case GateExp:
			m.Exp(g.Axis, g.Theta, g.Target)
		case GateExpI:
			m.ExpI(g.Theta)
		case GateH:
			m.H(g.Target)
		case GateX:
			m.X(g.Target)
		case GateS:
			m.S(g.Target)
		case GateSDG:
			m.SAdj(g.Target)
		case GateCX:
			m.ControlledX(g.Controls, g.Target)
		case GateCExp:
			m.ControlledExp(g.Controls, g.Axis, g.Theta, g.Target)
		}
	}
}

// gateReferences reports whether the gate touches the given wire.
func (g Gate) gateReferences(wire int) bool {
	if g.Type == GateExpI {
		return true // global phase spans every wire
	}
	if int(g.Target) == wire {
		return true
	}
	for _, ctrl := range g.Controls {
		if int(ctrl) == wire {
			return true
		}
	}
	return false
}

// GetGateAt returns the gate at the given step and wire, or nil.
func (c *Circuit) GetGateAt(step, wire int) *Gate {
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Step == step && g.gateReferences(wire) {
			return g
		}
	}
	return nil
}

// CellInfo describes what occupies a single cell in the circuit grid.
type CellInfo struct {
	Gate        *Gate
	IsControl   bool
	IsTarget    bool
	VertAbove   bool
	VertBelow   bool
	PassThrough bool
	IsPhase     bool // global-phase marker spanning all wires
}

// GetCellInfo returns rendering information for the cell at (step, wire).
func (c *Circuit) GetCellInfo(step, wire int) CellInfo {
	var info CellInfo

	gate := c.GetGateAt(step, wire)
	if gate != nil {
		if gate.Type == GateExpI {
			info.IsPhase = true
		}
		info.Gate = gate
		for _, ctrl := range gate.Controls {
			if int(ctrl) == wire {
				info.IsControl = true
				break
			}
		}
		if !info.IsControl && int(gate.Target) == wire && len(gate.Controls) > 0 {
			info.IsTarget = true
		}
	}

	// Vertical connections for controlled gates
	for _, g := range c.Gates {
		if g.Step != step || len(g.Controls) == 0 {
			continue
		}
		minQ, maxQ := int(g.Target), int(g.Target)
		for _, ctrl := range g.Controls {
			minQ = min(minQ, int(ctrl))
			maxQ = max(maxQ, int(ctrl))
		}
		if wire >= minQ && wire <= maxQ {
			if wire > minQ {
				info.VertAbove = true
			}
			if wire < maxQ {
				info.VertBelow = true
			}
			if wire > minQ && wire < maxQ && (info.Gate == nil || !g.gateReferences(wire)) && !info.IsControl && !info.IsTarget {
				info.PassThrough = true
			}
		}
	}

	return info
}

// DisplayName returns a short box label for the gate.
func (g Gate) DisplayName() string {
	switch g.Type {
	case GateExp, GateCExp:
		switch g.Axis {
		case quantum.PauliX:
			return "RX"
		case quantum.PauliY:
			return "RY"
		case quantum.PauliZ:
			return "RZ"
		}
		return "PH"
	case GateExpI:
		return "PH"
	case GateSDG:
		return "S†"
	}
	return g.Type
}
