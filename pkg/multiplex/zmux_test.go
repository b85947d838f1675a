package multiplex

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/williambong/Quantum/pkg/quantum"
)

const tol = 1e-9

// amplitudesMatch compares the first 2^n amplitudes of two simulators. This
// deliberately ignores extra ancilla wires one side may have grown: a released
// ancilla is |0⟩ on the highest bits, so all its weight sits in that prefix.
func amplitudesMatch(a, b *quantum.Simulator, n int) bool {
	for i := 0; i < 1<<n; i++ {
		if cmplx.Abs(a.Amplitude(i)-b.Amplitude(i)) > tol {
			return false
		}
	}
	return true
}

func TestMultiplexZSelectsAngleByIndex(t *testing.T) {
	coeffs := []float64{0.3, -0.7, 1.1, 0.45}
	index := []quantum.Qubit{0, 1}
	target := quantum.Qubit(2)

	for j, theta := range coeffs {
		// target |0⟩ picks up exp(+iθⱼ)
		s := quantum.NewSimulator(3)
		s.PrepareBasis(index, j)
		MultiplexZ(s, coeffs, index, target)
		idx := quantum.BasisIndex(index, j)
		want := cmplx.Exp(complex(0, theta))
		if got := s.Amplitude(idx); cmplx.Abs(got-want) > tol {
			t.Errorf("j=%d target |0⟩: got %v, want %v", j, got, want)
		}

		// target |1⟩ picks up exp(-iθⱼ)
		s = quantum.NewSimulator(3)
		s.PrepareBasis(index, j)
		s.X(target)
		MultiplexZ(s, coeffs, index, target)
		idx = quantum.BasisIndex(index, j) | 1<<int(target)
		want = cmplx.Exp(complex(0, -theta))
		if got := s.Amplitude(idx); cmplx.Abs(got-want) > tol {
			t.Errorf("j=%d target |1⟩: got %v, want %v", j, got, want)
		}
	}
}

func TestMultiplexZEmptyIndexIsPlainRotation(t *testing.T) {
	s := quantum.NewSimulator(1)
	MultiplexZ(s, []float64{0.9}, nil, 0)

	want := quantum.NewSimulator(1)
	want.Exp(quantum.PauliZ, 0.9, 0)

	if !amplitudesMatch(s, want, 1) {
		t.Errorf("zero-qubit index register should reduce to a single Z rotation")
	}
}

func TestMultiplexZPadsMissingCoefficientsWithZero(t *testing.T) {
	coeffs := []float64{0.2, 0.4, 0.6} // index 3 is implicitly zero
	index := []quantum.Qubit{0, 1}
	s := quantum.NewSimulator(3)
	s.PrepareBasis(index, 3)
	MultiplexZ(s, coeffs, index, 2)

	idx := quantum.BasisIndex(index, 3)
	if got := s.Amplitude(idx); cmplx.Abs(got-1) > tol {
		t.Errorf("padded branch should be identity, got %v", got)
	}
}

func TestMultiplexZAdjointRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	index := []quantum.Qubit{0, 1}
	target := quantum.Qubit(2)

	properties.Property("apply then adjoint restores the state", prop.ForAll(
		func(a, b, c, d float64) bool {
			coeffs := []float64{a, b, c, d}
			s := quantum.NewSimulator(3)
			for q := 0; q < 3; q++ {
				s.H(quantum.Qubit(q))
			}
			before := s.Clone()
			MultiplexZ(s, coeffs, index, target)
			MultiplexZAdj(s, coeffs, index, target)
			return amplitudesMatch(s, before, 3)
		},
		gen.Float64Range(-math.Pi, math.Pi),
		gen.Float64Range(-math.Pi, math.Pi),
		gen.Float64Range(-math.Pi, math.Pi),
		gen.Float64Range(-math.Pi, math.Pi),
	))

	properties.TestingRun(t)
}

func TestMultiplexZControlledActsOnlyWhenControlSet(t *testing.T) {
	coeffs := []float64{0.3, -0.7, 1.1, 0.45}
	control := []quantum.Qubit{0}
	index := []quantum.Qubit{1, 2}
	target := quantum.Qubit(3)

	for j := 0; j < 4; j++ {
		// control |1⟩: same as the plain multiplexor
		s := quantum.NewSimulator(4)
		s.X(control[0])
		s.PrepareBasis(index, j)
		MultiplexZControlled(s, coeffs, control, index, target)

		want := quantum.NewSimulator(4)
		want.X(control[0])
		want.PrepareBasis(index, j)
		MultiplexZ(want, coeffs, index, target)

		if !amplitudesMatch(s, want, 4) {
			t.Errorf("j=%d: controlled form with control |1⟩ should match plain form", j)
		}

		// control |0⟩: identity
		s = quantum.NewSimulator(4)
		s.PrepareBasis(index, j)
		MultiplexZControlled(s, coeffs, control, index, target)

		want = quantum.NewSimulator(4)
		want.PrepareBasis(index, j)

		if !amplitudesMatch(s, want, 4) {
			t.Errorf("j=%d: controlled form with control |0⟩ should be identity", j)
		}
	}
}

func TestMultiplexZControlledMultiQubitControl(t *testing.T) {
	coeffs := []float64{0.5, -0.5}
	control := []quantum.Qubit{0, 1}
	index := []quantum.Qubit{2}
	target := quantum.Qubit(3)

	// only the all-ones control assignment activates the rotation
	for ctrlVal := 0; ctrlVal < 4; ctrlVal++ {
		s := quantum.NewSimulator(4)
		s.PrepareBasis(control, ctrlVal)
		s.PrepareBasis(index, 1)
		MultiplexZControlled(s, coeffs, control, index, target)

		want := quantum.NewSimulator(4)
		want.PrepareBasis(control, ctrlVal)
		want.PrepareBasis(index, 1)
		if ctrlVal == 3 {
			MultiplexZ(want, coeffs, index, target)
		}

		if !amplitudesMatch(s, want, 4) {
			t.Errorf("control value %02b: unexpected result", ctrlVal)
		}
	}
}

func TestMultiplexZControlledAdjointRoundTrip(t *testing.T) {
	coeffs := []float64{1.2, -0.8, 0.1, 2.2}
	control := []quantum.Qubit{0}
	index := []quantum.Qubit{1, 2}
	target := quantum.Qubit(3)

	s := quantum.NewSimulator(4)
	for q := 0; q < 4; q++ {
		s.H(quantum.Qubit(q))
	}
	before := s.Clone()
	MultiplexZControlled(s, coeffs, control, index, target)
	MultiplexZControlledAdj(s, coeffs, control, index, target)

	if !amplitudesMatch(s, before, 4) {
		t.Errorf("controlled apply then controlled adjoint should restore the state")
	}
}
