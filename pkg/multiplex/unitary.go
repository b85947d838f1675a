package multiplex

import "github.com/williambong/Quantum/pkg/quantum"

// PauliRotation is a single-qubit exp(i·θ·P) packaged as a Unitary over one
// target qubit, with all three application forms.
type PauliRotation struct {
	Axis  quantum.Axis
	Theta float64
}

func (r PauliRotation) Apply(m quantum.Machine, opts ApplyOptions, target quantum.Qubit) {
	theta := r.Theta
	if opts.Adjoint {
		theta = -theta
	}
	if len(opts.Controls) == 0 {
		m.Exp(r.Axis, theta, target)
		return
	}
	m.ControlledExp(opts.Controls, r.Axis, theta, target)
}

// NotGate is a Pauli-X packaged as a Unitary over one target qubit. It is its
// own adjoint.
type NotGate struct{}

func (NotGate) Apply(m quantum.Machine, opts ApplyOptions, target quantum.Qubit) {
	if len(opts.Controls) == 0 {
		m.X(target)
		return
	}
	m.ControlledX(opts.Controls, target)
}

// AdjointUnitary wraps a Unitary so it applies in the opposite direction.
func AdjointUnitary[T any](u Unitary[T]) Unitary[T] { return adjointUnitary[T]{u} }

type adjointUnitary[T any] struct{ u Unitary[T] }

func (a adjointUnitary[T]) Apply(m quantum.Machine, opts ApplyOptions, target T) {
	opts.Adjoint = !opts.Adjoint
	a.u.Apply(m, opts, target)
}
