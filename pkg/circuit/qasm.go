package circuit

import (
	"fmt"
	"math"
	"strings"

	"github.com/williambong/Quantum/pkg/quantum"
)

// ToQASM generates QASM 2.0 output for the recorded circuit. Rotation angles
// are converted from the exp(i·θ·P) convention to the rz/rx/ry convention
// (λ = -2θ); global phases are unobservable in QASM and emitted as comments.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", max(c.NumQubits, 1))

	for step := 0; step < c.MaxSteps; step++ {
		for _, gate := range c.Gates {
			if gate.Step != step {
				continue
			}
			c.writeQASMGate(&sb, gate)
		}
	}

	return sb.String()
}

func (c *Circuit) writeQASMGate(sb *strings.Builder, gate Gate) {
	switch gate.Type {
	case GateExp:
		fmt.Fprintf(sb, "%s(%s) q[%d];\n", rotationName(gate.Axis), formatParam(-2*gate.Theta), gate.Target)
	case GateExpI:
		fmt.Fprintf(sb, "// global phase %s\n", formatParam(gate.Theta))
	case GateH:
		fmt.Fprintf(sb, "h q[%d];\n", gate.Target)
	case GateX:
		fmt.Fprintf(sb, "x q[%d];\n", gate.Target)
	case GateS:
		fmt.Fprintf(sb, "s q[%d];\n", gate.Target)
	case GateSDG:
		fmt.Fprintf(sb, "sdg q[%d];\n", gate.Target)
	case GateCX:
		switch len(gate.Controls) {
		case 1:
			fmt.Fprintf(sb, "cx q[%d], q[%d];\n", gate.Controls[0], gate.Target)
		case 2:
			fmt.Fprintf(sb, "ccx q[%d], q[%d], q[%d];\n", gate.Controls[0], gate.Controls[1], gate.Target)
		default:
			// No standard qelib1 gate beyond ccx; emit a generic mcx line.
			fmt.Fprintf(sb, "mcx %s, q[%d];\n", joinQubits(gate.Controls), gate.Target)
		}
	case GateCExp:
		name := "c" + rotationName(gate.Axis)
		if len(gate.Controls) == 1 {
			fmt.Fprintf(sb, "%s(%s) q[%d], q[%d];\n", name, formatParam(-2*gate.Theta), gate.Controls[0], gate.Target)
		} else {
			fmt.Fprintf(sb, "m%s(%s) %s, q[%d];\n", name, formatParam(-2*gate.Theta), joinQubits(gate.Controls), gate.Target)
		}
	}
}

func rotationName(axis quantum.Axis) string {
	switch axis {
	case quantum.PauliX:
		return "rx"
	case quantum.PauliY:
		return "ry"
	default:
		return "rz"
	}
}

func joinQubits(qs []quantum.Qubit) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ", ")
}

// formatParam formats an angle, using pi notation when possible.
func formatParam(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{math.Pi / 16, "pi/16"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", val)
}
