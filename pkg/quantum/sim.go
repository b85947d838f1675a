package quantum

import (
	"math"
	"math/cmplx"
)

type Complex = complex128

// Simulator is a dense statevector Machine. Qubit handles are bit positions
// into the amplitude index, so the state over n qubits has 2^n amplitudes.
//
// Qubits created by NewSimulator belong to the caller; Alloc/Free manage a
// LIFO pool of ancilla qubits on top of them, growing the state on demand.
type Simulator struct {
	amps      []Complex
	numQubits int
	pool      []Qubit
}

// NewSimulator returns a simulator holding n caller-owned qubits in |0…0⟩.
func NewSimulator(n int) *Simulator {
	amps := make([]Complex, 1<<n)
	amps[0] = 1
	return &Simulator{amps: amps, numQubits: n}
}

// NumQubits returns the total number of qubits currently in the state,
// including pooled ancillas.
func (s *Simulator) NumQubits() int { return s.numQubits }

// Clone returns an independent copy of the state and pool.
func (s *Simulator) Clone() *Simulator {
	amps := make([]Complex, len(s.amps))
	copy(amps, s.amps)
	pool := make([]Qubit, len(s.pool))
	copy(pool, s.pool)
	return &Simulator{amps: amps, numQubits: s.numQubits, pool: pool}
}

// Amplitude returns the amplitude of the given basis index.
func (s *Simulator) Amplitude(basis int) Complex { return s.amps[basis] }

// PrepareBasis flips qubits of the big-endian register reg so that it encodes
// value. The register must currently be |0…0⟩.
func (s *Simulator) PrepareBasis(reg []Qubit, value int) {
	n := len(reg)
	for i, q := range reg {
		if value&(1<<(n-1-i)) != 0 {
			s.X(q)
		}
	}
}

// Exp applies exp(i·theta·P) to q.
func (s *Simulator) Exp(axis Axis, theta float64, q Qubit) {
	switch axis {
	case PauliI:
		s.ExpI(theta)
	case PauliZ:
		phase := cmplx.Exp(complex(0, theta))
		bit := 1 << int(q)
		for i := range s.amps {
			if i&bit == 0 {
				s.amps[i] *= phase
			} else {
				s.amps[i] *= cmplx.Conj(phase)
			}
		}
	case PauliX:
		c := complex(math.Cos(theta), 0)
		is := complex(0, math.Sin(theta))
		bit := 1 << int(q)
		for i := range s.amps {
			if i&bit == 0 {
				j := i | bit
				a0, a1 := s.amps[i], s.amps[j]
				s.amps[i] = c*a0 + is*a1
				s.amps[j] = is*a0 + c*a1
			}
		}
	case PauliY:
		c := complex(math.Cos(theta), 0)
		sn := complex(math.Sin(theta), 0)
		bit := 1 << int(q)
		for i := range s.amps {
			if i&bit == 0 {
				j := i | bit
				a0, a1 := s.amps[i], s.amps[j]
				s.amps[i] = c*a0 + sn*a1
				s.amps[j] = -sn*a0 + c*a1
			}
		}
	}
}

// ExpI applies the global phase exp(i·theta).
func (s *Simulator) ExpI(theta float64) {
	phase := cmplx.Exp(complex(0, theta))
	for i := range s.amps {
		s.amps[i] *= phase
	}
}

// ControlledExp applies Exp(axis, theta, q) where all controls are |1⟩.
func (s *Simulator) ControlledExp(controls []Qubit, axis Axis, theta float64, q Qubit) {
	cMask := controlMask(controls)
	switch axis {
	case PauliI:
		phase := cmplx.Exp(complex(0, theta))
		for i := range s.amps {
			if i&cMask == cMask {
				s.amps[i] *= phase
			}
		}
	case PauliZ:
		phase := cmplx.Exp(complex(0, theta))
		bit := 1 << int(q)
		for i := range s.amps {
			if i&cMask != cMask {
				continue
			}
			if i&bit == 0 {
				s.amps[i] *= phase
			} else {
				s.amps[i] *= cmplx.Conj(phase)
			}
		}
	case PauliX:
		c := complex(math.Cos(theta), 0)
		is := complex(0, math.Sin(theta))
		bit := 1 << int(q)
		for i := range s.amps {
			if i&cMask == cMask && i&bit == 0 {
				j := i | bit
				if j&cMask != cMask {
					continue
				}
				a0, a1 := s.amps[i], s.amps[j]
				s.amps[i] = c*a0 + is*a1
				s.amps[j] = is*a0 + c*a1
			}
		}
	case PauliY:
		c := complex(math.Cos(theta), 0)
		sn := complex(math.Sin(theta), 0)
		bit := 1 << int(q)
		for i := range s.amps {
			if i&cMask == cMask && i&bit == 0 {
				j := i | bit
				if j&cMask != cMask {
					continue
				}
				a0, a1 := s.amps[i], s.amps[j]
				s.amps[i] = c*a0 + sn*a1
				s.amps[j] = -sn*a0 + c*a1
			}
		}
	}
}

// H applies the Hadamard gate to q.
func (s *Simulator) H(q Qubit) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	bit := 1 << int(q)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = hFactor * (a0 + a1)
			s.amps[j] = hFactor * (a0 - a1)
		}
	}
}

// X applies the Pauli-X gate to q.
func (s *Simulator) X(q Qubit) {
	bit := 1 << int(q)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// S applies diag(1, i) to q.
func (s *Simulator) S(q Qubit) { s.phaseOnOne(q, 1i) }

// SAdj applies diag(1, -i) to q.
func (s *Simulator) SAdj(q Qubit) { s.phaseOnOne(q, -1i) }

func (s *Simulator) phaseOnOne(q Qubit, factor Complex) {
	bit := 1 << int(q)
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

// ControlledX flips target where all controls are |1⟩.
func (s *Simulator) ControlledX(controls []Qubit, target Qubit) {
	cMask := controlMask(controls)
	tBit := 1 << int(target)
	for i := range s.amps {
		if i&cMask == cMask && i&tBit == 0 {
			j := i | tBit
			if j&cMask == cMask {
				s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
			}
		}
	}
}

// Alloc borrows a |0⟩ qubit, growing the state when the pool is empty.
func (s *Simulator) Alloc() Qubit {
	if n := len(s.pool); n > 0 {
		q := s.pool[n-1]
		s.pool = s.pool[:n-1]
		return q
	}
	q := Qubit(s.numQubits)
	s.numQubits++
	grown := make([]Complex, 1<<s.numQubits)
	copy(grown, s.amps) // new qubit is the highest bit, so |0⟩ keeps indices
	s.amps = grown
	return q
}

// Free returns a borrowed qubit to the pool. The qubit is projected back to
// |0⟩ first, in case numerical residue is left on it.
func (s *Simulator) Free(q Qubit) {
	s.reset(q)
	s.pool = append(s.pool, q)
}

// FreeQubits returns a snapshot of the ancilla pool, bottom of stack first.
func (s *Simulator) FreeQubits() []Qubit {
	out := make([]Qubit, len(s.pool))
	copy(out, s.pool)
	return out
}

// Probabilities returns per-qubit |1⟩ probabilities for all current qubits.
func (s *Simulator) Probabilities() []float64 {
	probs := make([]float64, s.numQubits)
	for i, amp := range s.amps {
		p := real(amp * cmplx.Conj(amp))
		for q := 0; q < s.numQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q] += p
			}
		}
	}
	return probs
}

func (s *Simulator) reset(q Qubit) {
	bit := 1 << int(q)
	prob0 := 0.0
	for i, amp := range s.amps {
		if i&bit == 0 {
			prob0 += real(amp * cmplx.Conj(amp))
		}
	}
	norm := 1.0
	if prob0 > 0 {
		norm = math.Sqrt(prob0)
	}
	for i := range s.amps {
		if i&bit == 0 {
			s.amps[i] /= complex(norm, 0)
		} else {
			s.amps[i] = 0
		}
	}
}

func controlMask(controls []Qubit) int {
	mask := 0
	for _, c := range controls {
		mask |= 1 << int(c)
	}
	return mask
}
