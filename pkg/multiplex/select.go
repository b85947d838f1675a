package multiplex

import (
	"fmt"

	"github.com/williambong/Quantum/pkg/quantum"
)

// Unitary is the capability handed to the selection network: anything that
// can apply itself to a target of type T through a Machine. The three
// application forms of a gate (forward, adjoint, controlled) are folded into
// one call parameterized by ApplyOptions, so adjoint and controlled variants
// of a whole network derive mechanically by rewriting the options.
type Unitary[T any] interface {
	Apply(m quantum.Machine, opts ApplyOptions, target T)
}

// ApplyOptions selects the application form of a Unitary.
type ApplyOptions struct {
	// Adjoint requests the inverse of the operation.
	Adjoint bool
	// Controls restricts the operation to the subspace where every listed
	// qubit is |1⟩. Empty means unconditional.
	Controls []quantum.Qubit
}

// Select applies unitaries[j] to target, where j is the integer encoded by
// the big-endian index register. Indices at or past len(unitaries) act as
// identity: absent branches are simply skipped, never materialized.
//
// The network halves the unitary list per index qubit. The first level borrows
// the head index qubit itself as the selector; every deeper level borrows one
// scoped ancilla carrying "this branch is selected so far", computed with an
// AND bracket against the previous selector and released before the level
// returns. Total cost is O(2^n) primitive applications with at most n-1
// ancillas, reused strictly LIFO.
//
// An empty index register is an InvalidArgument; an empty unitary list is a
// no-op.
func Select[T any](m quantum.Machine, unitaries []Unitary[T], index []quantum.Qubit, target T) error {
	if len(index) == 0 {
		return fmt.Errorf("%w: selection needs an index register of at least one qubit", quantum.ErrInvalidArgument)
	}
	if len(unitaries) == 0 {
		return nil
	}
	selectStep(m, unitaries, nil, index, target, false)
	return nil
}

// SelectAdjoint applies the adjoint of Select. The selector brackets are
// self-inverse and restored by the forward network, so the adjoint is the same
// network applying each sub-unitary's adjoint form.
func SelectAdjoint[T any](m quantum.Machine, unitaries []Unitary[T], index []quantum.Qubit, target T) error {
	if len(index) == 0 {
		return fmt.Errorf("%w: selection needs an index register of at least one qubit", quantum.ErrInvalidArgument)
	}
	if len(unitaries) == 0 {
		return nil
	}
	selectStep(m, unitaries, nil, index, target, true)
	return nil
}

// SelectControlled applies Select only when every qubit of control is |1⟩.
// The control register simply plays the role of the first-level selector: the
// recursion is re-entered with it preset instead of special-casing every
// primitive.
func SelectControlled[T any](m quantum.Machine, unitaries []Unitary[T], control, index []quantum.Qubit, target T) error {
	if len(index) == 0 {
		return fmt.Errorf("%w: selection needs an index register of at least one qubit", quantum.ErrInvalidArgument)
	}
	if len(unitaries) == 0 {
		return nil
	}
	selectStep(m, unitaries, control, index, target, false)
	return nil
}

// selectStep is the divide-and-conquer core. selector holds the qubits whose
// conjunction means "this branch is selected so far" (empty only at the top
// level), index the remaining selector bits, adj whether sub-unitaries apply
// in adjoint form.
func selectStep[T any](m quantum.Machine, unitaries []Unitary[T], selector, index []quantum.Qubit, target T, adj bool) {
	if len(selector) > 0 && len(index) == 0 {
		unitaries[0].Apply(m, ApplyOptions{Adjoint: adj, Controls: selector}, target)
		return
	}

	full := 1 << len(index)
	rightCount := min(len(unitaries), full/2)
	leftCount := min(len(unitaries), full) - rightCount
	right := unitaries[:rightCount]
	left := unitaries[rightCount : rightCount+leftCount]
	head, tail := index[0], index[1:]

	if len(selector) == 0 {
		// Top level: the head index qubit itself is the selector, flipped
		// around the low half so no ancilla is consumed here.
		if leftCount > 0 {
			selectStep(m, left, []quantum.Qubit{head}, tail, target, adj)
		}
		m.X(head)
		selectStep(m, right, []quantum.Qubit{head}, tail, target, adj)
		m.X(head)
		return
	}

	// Deeper levels: one scoped ancilla per level, AND-ed with the head bit,
	// toggled to the complement branch, then uncomputed before release.
	anc := m.Alloc()
	defer m.Free(anc)

	and := make([]quantum.Qubit, 0, len(selector)+1)
	and = append(and, selector...)
	and = append(and, head)

	m.ControlledX(and, anc)
	if leftCount > 0 {
		selectStep(m, left, []quantum.Qubit{anc}, tail, target, adj)
	}
	m.ControlledX(selector, anc)
	selectStep(m, right, []quantum.Qubit{anc}, tail, target, adj)
	m.ControlledX(selector, anc)
	m.ControlledX(and, anc)
}
