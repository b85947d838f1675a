package multiplex

import (
	"fmt"

	"github.com/williambong/Quantum/pkg/quantum"
)

// ApplyDiagonal applies the diagonal phase operator that multiplies basis
// state |j⟩ of the big-endian register qubits by exp(i·θⱼ), with θⱼ =
// coefficients[j] (zero past the end of the vector). No basis state is
// permuted, only phased.
//
// The operator is peeled one qubit at a time: a multiplexed Z rotation on the
// head qubit, selected by the tail register, carries the head-dependent part
// of the phase; the sum half recurses on the tail. The final two coefficients
// reduce to one Z rotation plus a global phase.
//
// Returns ErrInvalidArgument when the register is empty.
func ApplyDiagonal(m quantum.Machine, coefficients []float64, qubits []quantum.Qubit) error {
	if len(qubits) == 0 {
		return fmt.Errorf("%w: diagonal phase operator needs a register of at least one qubit", quantum.ErrInvalidArgument)
	}
	applyDiagonal(m, PadCoefficients(coefficients, len(qubits)), qubits)
	return nil
}

// ApplyDiagonalAdj applies the adjoint of ApplyDiagonal, which is the same
// cascade with negated phases.
func ApplyDiagonalAdj(m quantum.Machine, coefficients []float64, qubits []quantum.Qubit) error {
	return ApplyDiagonal(m, negated(coefficients), qubits)
}

// ApplyDiagonalControlled applies ApplyDiagonal only when every qubit of
// control is |1⟩. The control register is absorbed as extra leading selector
// qubits over a coefficient vector whose only non-zero block sits at the
// all-ones control prefix. Gate count doubles per control qubit; for long
// control registers prefer restructuring the caller.
func ApplyDiagonalControlled(m quantum.Machine, coefficients []float64, control, qubits []quantum.Qubit) error {
	if len(control) == 0 {
		return ApplyDiagonal(m, coefficients, qubits)
	}
	if len(qubits) == 0 {
		return fmt.Errorf("%w: diagonal phase operator needs a register of at least one qubit", quantum.ErrInvalidArgument)
	}
	padded := PadCoefficients(coefficients, len(qubits))
	full := make([]float64, 1<<(len(control)+len(qubits)))
	copy(full[len(full)-len(padded):], padded)
	joined := make([]quantum.Qubit, 0, len(control)+len(qubits))
	joined = append(joined, control...)
	joined = append(joined, qubits...)
	return ApplyDiagonal(m, full, joined)
}

// applyDiagonal expects coefficients already padded to 2^len(qubits).
func applyDiagonal(m quantum.Machine, coefficients []float64, qubits []quantum.Qubit) {
	c0, c1 := SplitCoefficients(coefficients)
	head, tail := qubits[0], qubits[1:]
	multiplexZ(m, c1, tail, head)
	if len(coefficients) == 2 {
		m.ExpI(c0[0])
		return
	}
	applyDiagonal(m, c0, tail)
}
