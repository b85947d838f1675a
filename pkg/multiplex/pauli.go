package multiplex

import (
	"fmt"

	"github.com/williambong/Quantum/pkg/quantum"
)

// MultiplexPauli applies exp(i·θⱼ·P) to target for the Pauli axis P, with j
// selected by the big-endian index register. Z delegates to MultiplexZ; X and
// Y conjugate the Z network by the usual basis changes (H, and S around that);
// PauliI applies only the index-dependent global phase, via the diagonal
// operator over the index register itself.
//
// An axis outside {PauliI, PauliX, PauliY, PauliZ} is an InvalidArgument.
func MultiplexPauli(m quantum.Machine, coefficients []float64, axis quantum.Axis, index []quantum.Qubit, target quantum.Qubit) error {
	switch axis {
	case quantum.PauliZ:
		MultiplexZ(m, coefficients, index, target)
	case quantum.PauliX:
		// H Z H = X
		m.H(target)
		MultiplexZ(m, coefficients, index, target)
		m.H(target)
	case quantum.PauliY:
		// S X S† = Y, so conjugate the X network by S around the outside.
		m.SAdj(target)
		m.H(target)
		MultiplexZ(m, coefficients, index, target)
		m.H(target)
		m.S(target)
	case quantum.PauliI:
		return ApplyDiagonal(m, coefficients, index)
	default:
		return fmt.Errorf("%w: unrecognized rotation axis %v", quantum.ErrInvalidArgument, axis)
	}
	return nil
}

// MultiplexPauliAdj applies the adjoint of MultiplexPauli. The basis-change
// wrappers are unchanged (they cancel pairwise); only the angles flip.
func MultiplexPauliAdj(m quantum.Machine, coefficients []float64, axis quantum.Axis, index []quantum.Qubit, target quantum.Qubit) error {
	return MultiplexPauli(m, negated(coefficients), axis, index, target)
}

// MultiplexPauliControlled applies MultiplexPauli only when every qubit of
// control is |1⟩, using the controlled forms of the delegated operations.
func MultiplexPauliControlled(m quantum.Machine, coefficients []float64, axis quantum.Axis, control, index []quantum.Qubit, target quantum.Qubit) error {
	switch axis {
	case quantum.PauliZ:
		MultiplexZControlled(m, coefficients, control, index, target)
	case quantum.PauliX:
		m.H(target)
		MultiplexZControlled(m, coefficients, control, index, target)
		m.H(target)
	case quantum.PauliY:
		m.SAdj(target)
		m.H(target)
		MultiplexZControlled(m, coefficients, control, index, target)
		m.H(target)
		m.S(target)
	case quantum.PauliI:
		return ApplyDiagonalControlled(m, coefficients, control, index)
	default:
		return fmt.Errorf("%w: unrecognized rotation axis %v", quantum.ErrInvalidArgument, axis)
	}
	return nil
}
