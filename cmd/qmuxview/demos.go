package main

import (
	"math"

	"github.com/williambong/Quantum/pkg/multiplex"
	"github.com/williambong/Quantum/pkg/quantum"
)

// demo is one decomposition the viewer can record, render and simulate. The
// index register width is adjustable between minWidth and maxWidth; wires
// reports the data register size for a width, index the register whose basis
// state the user selects.
type demo struct {
	name     string
	desc     string
	minWidth int
	maxWidth int
	wires    func(width int) int
	index    func(width int) []quantum.Qubit
	build    func(m quantum.Machine, width int) error
}

// demoCoeffs produces one distinct angle per index value, alternating sign so
// the circuit and the state panel show visibly different branches.
func demoCoeffs(width int) []float64 {
	coeffs := make([]float64, 1<<width)
	for j := range coeffs {
		coeffs[j] = float64(j+1) * math.Pi / float64(len(coeffs)*2)
		if j%2 == 1 {
			coeffs[j] = -coeffs[j]
		}
	}
	return coeffs
}

func indexRegister(first, width int) []quantum.Qubit {
	reg := make([]quantum.Qubit, width)
	for i := range reg {
		reg[i] = quantum.Qubit(first + i)
	}
	return reg
}

var demos = []demo{
	{
		name:     "Multiplexed RZ",
		desc:     "Z rotation by a different angle per index value",
		minWidth: 1, maxWidth: 4,
		wires: func(w int) int { return w + 1 },
		index: func(w int) []quantum.Qubit { return indexRegister(0, w) },
		build: func(m quantum.Machine, w int) error {
			multiplex.MultiplexZ(m, demoCoeffs(w), indexRegister(0, w), quantum.Qubit(w))
			return nil
		},
	},
	{
		name:     "Multiplexed RX",
		desc:     "X-axis multiplexor via Hadamard conjugation",
		minWidth: 1, maxWidth: 4,
		wires: func(w int) int { return w + 1 },
		index: func(w int) []quantum.Qubit { return indexRegister(0, w) },
		build: func(m quantum.Machine, w int) error {
			return multiplex.MultiplexPauli(m, demoCoeffs(w), quantum.PauliX, indexRegister(0, w), quantum.Qubit(w))
		},
	},
	{
		name:     "Multiplexed RY",
		desc:     "Y-axis multiplexor via S/H basis change",
		minWidth: 1, maxWidth: 4,
		wires: func(w int) int { return w + 1 },
		index: func(w int) []quantum.Qubit { return indexRegister(0, w) },
		build: func(m quantum.Machine, w int) error {
			return multiplex.MultiplexPauli(m, demoCoeffs(w), quantum.PauliY, indexRegister(0, w), quantum.Qubit(w))
		},
	},
	{
		name:     "Diagonal phase",
		desc:     "exp(i·θⱼ) on each basis state of the register",
		minWidth: 1, maxWidth: 4,
		wires: func(w int) int { return w },
		index: func(w int) []quantum.Qubit { return indexRegister(0, w) },
		build: func(m quantum.Machine, w int) error {
			return multiplex.ApplyDiagonal(m, demoCoeffs(w), indexRegister(0, w))
		},
	},
	{
		name:     "Controlled multiplexed RZ",
		desc:     "multiplexed Z rotation gated on a control qubit",
		minWidth: 1, maxWidth: 3,
		wires: func(w int) int { return w + 2 },
		index: func(w int) []quantum.Qubit { return indexRegister(1, w) },
		build: func(m quantum.Machine, w int) error {
			multiplex.MultiplexZControlled(m, demoCoeffs(w), []quantum.Qubit{0}, indexRegister(1, w), quantum.Qubit(w+1))
			return nil
		},
	},
	{
		name:     "Selection network",
		desc:     "applies the j-th unitary for index value j, with scoped ancillas",
		minWidth: 1, maxWidth: 3,
		wires: func(w int) int { return w + 1 },
		index: func(w int) []quantum.Qubit { return indexRegister(0, w) },
		build: func(m quantum.Machine, w int) error {
			coeffs := demoCoeffs(w)
			unitaries := make([]multiplex.Unitary[quantum.Qubit], len(coeffs))
			for j, theta := range coeffs {
				if j%3 == 2 {
					unitaries[j] = multiplex.NotGate{}
					continue
				}
				axis := quantum.PauliZ
				if j%2 == 1 {
					axis = quantum.PauliX
				}
				unitaries[j] = multiplex.PauliRotation{Axis: axis, Theta: theta}
			}
			return multiplex.Select(m, unitaries, indexRegister(0, w), quantum.Qubit(w))
		},
	},
}
