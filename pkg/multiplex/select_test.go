package multiplex

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/williambong/Quantum/pkg/quantum"
)

func rotations(thetas ...float64) []Unitary[quantum.Qubit] {
	us := make([]Unitary[quantum.Qubit], len(thetas))
	for i, th := range thetas {
		us[i] = PauliRotation{Axis: quantum.PauliZ, Theta: th}
	}
	return us
}

func TestSelectAppliesIndexedUnitary(t *testing.T) {
	thetas := []float64{0.3, -0.7, 1.1, 0.45}
	unitaries := rotations(thetas...)
	index := []quantum.Qubit{0, 1}
	target := quantum.Qubit(2)

	for j, theta := range thetas {
		s := quantum.NewSimulator(3)
		s.PrepareBasis(index, j)
		if err := Select(s, unitaries, index, target); err != nil {
			t.Fatalf("Select: %v", err)
		}

		want := quantum.NewSimulator(3)
		want.PrepareBasis(index, j)
		want.Exp(quantum.PauliZ, theta, target)

		if !amplitudesMatch(s, want, 3) {
			t.Errorf("index %d should apply only rotation %d", j, j)
		}
	}
}

func TestSelectPicksExactlyOneBranch(t *testing.T) {
	// |2⟩ on a two-qubit index must trigger the third unitary and nothing else.
	unitaries := []Unitary[quantum.Qubit]{
		PauliRotation{Axis: quantum.PauliZ, Theta: 0.4},
		PauliRotation{Axis: quantum.PauliZ, Theta: -0.9},
		NotGate{},
		PauliRotation{Axis: quantum.PauliZ, Theta: 1.3},
	}
	index := []quantum.Qubit{0, 1}
	target := quantum.Qubit(2)

	s := quantum.NewSimulator(3)
	s.PrepareBasis(index, 2)
	if err := Select(s, unitaries, index, target); err != nil {
		t.Fatalf("Select: %v", err)
	}

	idx := quantum.BasisIndex(index, 2) | 1<<int(target)
	if got := s.Amplitude(idx); cmplx.Abs(got-1) > tol {
		t.Errorf("|2⟩ should flip the target via NotGate, amplitude %v at flipped state", got)
	}
}

func TestSelectNestedLevels(t *testing.T) {
	// Three index qubits force the scoped-ancilla path two levels deep.
	thetas := []float64{0.1, -0.2, 0.3, -0.4, 0.5, -0.6, 0.7, -0.8}
	unitaries := rotations(thetas...)
	index := []quantum.Qubit{0, 1, 2}
	target := quantum.Qubit(3)

	for j, theta := range thetas {
		s := quantum.NewSimulator(4)
		s.PrepareBasis(index, j)
		if err := Select(s, unitaries, index, target); err != nil {
			t.Fatalf("Select: %v", err)
		}

		want := quantum.NewSimulator(4)
		want.PrepareBasis(index, j)
		want.Exp(quantum.PauliZ, theta, target)

		if !amplitudesMatch(s, want, 4) {
			t.Errorf("index %d: nested selection applied the wrong rotation", j)
		}
	}
}

func TestSelectMissingBranchesAreIdentity(t *testing.T) {
	unitaries := rotations(0.4, -0.9, 1.3) // index 3 has no unitary
	index := []quantum.Qubit{0, 1}
	target := quantum.Qubit(2)

	s := quantum.NewSimulator(3)
	s.PrepareBasis(index, 3)
	before := s.Clone()
	if err := Select(s, unitaries, index, target); err != nil {
		t.Fatalf("Select: %v", err)
	}

	if !amplitudesMatch(s, before, 3) {
		t.Errorf("index past the unitary list should act as identity")
	}
}

func TestSelectEmptyListIsNoOp(t *testing.T) {
	index := []quantum.Qubit{0}
	s := quantum.NewSimulator(2)
	s.H(0)
	before := s.Clone()
	if err := Select(s, nil, index, quantum.Qubit(1)); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !amplitudesMatch(s, before, 2) {
		t.Errorf("empty unitary list should leave the state untouched")
	}
}

func TestSelectEmptyIndexFails(t *testing.T) {
	s := quantum.NewSimulator(1)
	unitaries := rotations(0.5)
	if err := Select(s, unitaries, nil, quantum.Qubit(0)); !errors.Is(err, quantum.ErrInvalidArgument) {
		t.Errorf("Select: got %v, want ErrInvalidArgument", err)
	}
	if err := SelectAdjoint(s, unitaries, nil, quantum.Qubit(0)); !errors.Is(err, quantum.ErrInvalidArgument) {
		t.Errorf("SelectAdjoint: got %v, want ErrInvalidArgument", err)
	}
	if err := SelectControlled(s, unitaries, []quantum.Qubit{0}, nil, quantum.Qubit(0)); !errors.Is(err, quantum.ErrInvalidArgument) {
		t.Errorf("SelectControlled: got %v, want ErrInvalidArgument", err)
	}
}

func TestSelectAdjointRoundTrip(t *testing.T) {
	unitaries := []Unitary[quantum.Qubit]{
		PauliRotation{Axis: quantum.PauliX, Theta: 0.6},
		PauliRotation{Axis: quantum.PauliY, Theta: -1.2},
		NotGate{},
		PauliRotation{Axis: quantum.PauliZ, Theta: 0.8},
	}
	index := []quantum.Qubit{0, 1}
	target := quantum.Qubit(2)

	s := quantum.NewSimulator(3)
	for q := 0; q < 3; q++ {
		s.H(quantum.Qubit(q))
	}
	before := s.Clone()

	if err := Select(s, unitaries, index, target); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := SelectAdjoint(s, unitaries, index, target); err != nil {
		t.Fatalf("SelectAdjoint: %v", err)
	}

	if !amplitudesMatch(s, before, 3) {
		t.Errorf("select then adjoint select should restore the state")
	}
}

func TestSelectControlled(t *testing.T) {
	unitaries := rotations(0.7, -0.3)
	control := []quantum.Qubit{0}
	index := []quantum.Qubit{1}
	target := quantum.Qubit(2)

	for j := 0; j < 2; j++ {
		// control |1⟩: matches the plain network
		s := quantum.NewSimulator(3)
		s.X(control[0])
		s.PrepareBasis(index, j)
		if err := SelectControlled(s, unitaries, control, index, target); err != nil {
			t.Fatalf("SelectControlled: %v", err)
		}

		want := quantum.NewSimulator(3)
		want.X(control[0])
		want.PrepareBasis(index, j)
		if err := Select(want, unitaries, index, target); err != nil {
			t.Fatalf("Select: %v", err)
		}

		if !amplitudesMatch(s, want, 3) {
			t.Errorf("j=%d: controlled form with control |1⟩ should match plain form", j)
		}

		// control |0⟩: identity
		s = quantum.NewSimulator(3)
		s.PrepareBasis(index, j)
		before := s.Clone()
		if err := SelectControlled(s, unitaries, control, index, target); err != nil {
			t.Fatalf("SelectControlled: %v", err)
		}
		if !amplitudesMatch(s, before, 3) {
			t.Errorf("j=%d: controlled form with control |0⟩ should be identity", j)
		}
	}
}

func TestSelectReleasesAllAncillas(t *testing.T) {
	thetas := make([]float64, 8)
	for i := range thetas {
		thetas[i] = float64(i) * 0.2
	}
	unitaries := rotations(thetas...)
	index := []quantum.Qubit{0, 1, 2}
	target := quantum.Qubit(3)

	s := quantum.NewSimulator(4)
	// warm the pool so the network reuses wires instead of growing new ones
	a := s.Alloc()
	b := s.Alloc()
	s.Free(b)
	s.Free(a)
	poolBefore := append([]quantum.Qubit(nil), s.FreeQubits()...)
	qubitsBefore := s.NumQubits()

	s.H(0)
	s.H(1)
	s.H(2)
	if err := Select(s, unitaries, index, target); err != nil {
		t.Fatalf("Select: %v", err)
	}

	if got := s.NumQubits(); got != qubitsBefore {
		t.Errorf("selection grew the register: %d qubits, want %d", got, qubitsBefore)
	}
	poolAfter := s.FreeQubits()
	if len(poolAfter) != len(poolBefore) {
		t.Fatalf("ancilla pool changed size: %v, want %v", poolAfter, poolBefore)
	}
	for i := range poolBefore {
		if poolAfter[i] != poolBefore[i] {
			t.Errorf("ancilla pool reordered: %v, want %v", poolAfter, poolBefore)
		}
	}
}

func TestAdjointUnitaryWrapper(t *testing.T) {
	s := quantum.NewSimulator(1)
	r := PauliRotation{Axis: quantum.PauliZ, Theta: 0.9}
	r.Apply(s, ApplyOptions{}, 0)
	AdjointUnitary[quantum.Qubit](r).Apply(s, ApplyOptions{}, 0)

	if got := s.Amplitude(0); cmplx.Abs(got-1) > tol {
		t.Errorf("rotation then wrapped adjoint should be identity, got %v", got)
	}
}
