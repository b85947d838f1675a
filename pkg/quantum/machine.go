// Package quantum defines the execution substrate that the decomposition
// routines emit primitive gates into: opaque qubit handles, the Pauli axis
// enumeration, the Machine primitive-gate interface, and a dense statevector
// Simulator implementing it.
package quantum

import "errors"

// Qubit is an opaque handle to a single qubit owned by a Machine.
type Qubit int

// Axis names a Pauli rotation axis.
type Axis int

const (
	PauliI Axis = iota
	PauliX
	PauliY
	PauliZ
)

func (a Axis) String() string {
	switch a {
	case PauliI:
		return "PauliI"
	case PauliX:
		return "PauliX"
	case PauliY:
		return "PauliY"
	case PauliZ:
		return "PauliZ"
	}
	return "Axis(?)"
}

// ErrInvalidArgument is the root of the two failure classes this layer can
// raise: an empty index/control register where at least one qubit is required,
// and an unrecognized rotation axis. Wrap it with %w and a message naming the
// offending value.
var ErrInvalidArgument = errors.New("invalid argument")

// Machine is the set of primitives a quantum execution substrate supplies.
// All register arguments follow the big-endian convention: the qubit at
// position 0 of a register slice is the most significant bit.
//
// Gate applications are issued in strict program order; implementations are
// sequential and never block.
type Machine interface {
	// Exp applies exp(i·theta·P) to q, where P is the named Pauli axis.
	// PauliI turns this into a global phase regardless of q.
	Exp(axis Axis, theta float64, q Qubit)

	// ExpI applies the global phase exp(i·theta).
	ExpI(theta float64)

	// ControlledExp applies Exp(axis, theta, q) only on the subspace where
	// every control qubit is |1⟩.
	ControlledExp(controls []Qubit, axis Axis, theta float64, q Qubit)

	// H applies the Hadamard basis change to q.
	H(q Qubit)

	// X applies the Pauli-X (NOT) gate to q.
	X(q Qubit)

	// S applies the phase gate diag(1, i) to q.
	S(q Qubit)

	// SAdj applies the adjoint phase gate diag(1, -i) to q.
	SAdj(q Qubit)

	// ControlledX flips target on the subspace where every control qubit is
	// |1⟩. One control is a CNOT, two a Toffoli; an empty control set is a
	// plain X.
	ControlledX(controls []Qubit, target Qubit)

	// Alloc borrows a qubit in state |0⟩ from the substrate's pool.
	Alloc() Qubit

	// Free returns a borrowed qubit to the pool. The caller must have
	// restored it to |0⟩; releases are strictly LIFO with respect to the
	// owning call frame.
	Free(q Qubit)
}

// BasisIndex returns the statevector index addressed by writing value into
// the big-endian register reg, all other qubits being |0⟩.
func BasisIndex(reg []Qubit, value int) int {
	idx := 0
	n := len(reg)
	for i, q := range reg {
		if value&(1<<(n-1-i)) != 0 {
			idx |= 1 << int(q)
		}
	}
	return idx
}
