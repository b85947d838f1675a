package multiplex

import "github.com/williambong/Quantum/pkg/quantum"

// MultiplexZ applies exp(i·θⱼ·Z) to target, where j is the integer encoded by
// the big-endian index register and θⱼ = coefficients[j] (zero past the end of
// the vector).
//
// The decomposition recursively halves the coefficient vector: the sum half
// recurses on the index tail, then a CNOT from the dropped head qubit onto
// target, the difference half, and the CNOT again. The sandwich flips the sign
// of the difference contribution exactly when the head qubit is |1⟩, so the
// whole tree costs O(2^n) one- and two-qubit gates.
//
// An empty index register is legal and terminal: it applies the single
// rotation exp(i·coefficients[0]·Z).
func MultiplexZ(m quantum.Machine, coefficients []float64, index []quantum.Qubit, target quantum.Qubit) {
	multiplexZ(m, PadCoefficients(coefficients, len(index)), index, target)
}

// MultiplexZAdj applies the adjoint of MultiplexZ. The circuit is a palindrome
// of self-inverse CNOTs around Z rotations, so the adjoint is the same network
// with every angle negated.
func MultiplexZAdj(m quantum.Machine, coefficients []float64, index []quantum.Qubit, target quantum.Qubit) {
	MultiplexZ(m, negated(coefficients), index, target)
}

// MultiplexZControlled applies MultiplexZ only when every qubit of control is
// |1⟩. Instead of threading the control register through every recursive call,
// the coefficient vector is virtually doubled with a leading all-zero block
// (the "control off" branch) and split once; the CNOT that would belong to the
// virtual head qubit becomes a multi-controlled X gated by the control
// register. When the controls are not all ones the two halves cancel exactly,
// because the sum and difference of a zero block are negatives of each other.
func MultiplexZControlled(m quantum.Machine, coefficients []float64, control, index []quantum.Qubit, target quantum.Qubit) {
	padded := PadCoefficients(coefficients, len(index))
	doubled := make([]float64, 2*len(padded))
	copy(doubled[len(padded):], padded)
	c0, c1 := SplitCoefficients(doubled)
	multiplexZ(m, c0, index, target)
	m.ControlledX(control, target)
	multiplexZ(m, c1, index, target)
	m.ControlledX(control, target)
}

// MultiplexZControlledAdj applies the adjoint of MultiplexZControlled.
func MultiplexZControlledAdj(m quantum.Machine, coefficients []float64, control, index []quantum.Qubit, target quantum.Qubit) {
	MultiplexZControlled(m, negated(coefficients), control, index, target)
}

// multiplexZ expects coefficients already padded to 2^len(index).
func multiplexZ(m quantum.Machine, coefficients []float64, index []quantum.Qubit, target quantum.Qubit) {
	if len(index) == 0 {
		m.Exp(quantum.PauliZ, coefficients[0], target)
		return
	}
	c0, c1 := SplitCoefficients(coefficients)
	head, tail := index[0], index[1:]
	multiplexZ(m, c0, tail, target)
	m.ControlledX([]quantum.Qubit{head}, target)
	multiplexZ(m, c1, tail, target)
	m.ControlledX([]quantum.Qubit{head}, target)
}
