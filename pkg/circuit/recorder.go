package circuit

import "github.com/williambong/Quantum/pkg/quantum"

// Recorder is a quantum.Machine that records gates instead of executing them.
// Gates touching disjoint wires are packed into the same timeline step, the
// way the interactive editor's DAG packs parallel gates, so deep decomposition
// output stays readable.
type Recorder struct {
	circ     Circuit
	frontier []int // per wire, the first step still free
	pool     []quantum.Qubit
}

// NewRecorder returns a recorder over numQubits caller-owned wires.
func NewRecorder(numQubits int) *Recorder {
	return &Recorder{
		circ:     Circuit{NumQubits: numQubits, DataQubits: numQubits},
		frontier: make([]int, numQubits),
	}
}

// Circuit returns the recorded circuit. The recorder keeps ownership; record
// further gates and the same Circuit grows.
func (r *Recorder) Circuit() *Circuit { return &r.circ }

func (r *Recorder) record(g Gate, wires ...quantum.Qubit) {
	step := 0
	for _, w := range wires {
		if r.frontier[w] > step {
			step = r.frontier[w]
		}
	}
	g.Step = step
	for _, w := range wires {
		r.frontier[w] = step + 1
	}
	if step >= r.circ.MaxSteps {
		r.circ.MaxSteps = step + 1
	}
	r.circ.Gates = append(r.circ.Gates, g)
}

// recordSpanning places a gate that occupies every wire (global phase).
func (r *Recorder) recordSpanning(g Gate) {
	step := 0
	for _, f := range r.frontier {
		if f > step {
			step = f
		}
	}
	g.Step = step
	for w := range r.frontier {
		r.frontier[w] = step + 1
	}
	if step >= r.circ.MaxSteps {
		r.circ.MaxSteps = step + 1
	}
	r.circ.Gates = append(r.circ.Gates, g)
}

func (r *Recorder) Exp(axis quantum.Axis, theta float64, q quantum.Qubit) {
	if axis == quantum.PauliI {
		r.ExpI(theta)
		return
	}
	r.record(Gate{Type: GateExp, Axis: axis, Theta: theta, Target: q}, q)
}

func (r *Recorder) ExpI(theta float64) {
	r.recordSpanning(Gate{Type: GateExpI, Theta: theta, Target: -1})
}

func (r *Recorder) ControlledExp(controls []quantum.Qubit, axis quantum.Axis, theta float64, q quantum.Qubit) {
	g := Gate{Type: GateCExp, Axis: axis, Theta: theta, Target: q, Controls: cloneQubits(controls)}
	r.record(g, append(cloneQubits(controls), q)...)
}

func (r *Recorder) H(q quantum.Qubit) { r.record(Gate{Type: GateH, Target: q}, q) }

func (r *Recorder) X(q quantum.Qubit) { r.record(Gate{Type: GateX, Target: q}, q) }

func (r *Recorder) S(q quantum.Qubit) { r.record(Gate{Type: GateS, Target: q}, q) }

func (r *Recorder) SAdj(q quantum.Qubit) { r.record(Gate{Type: GateSDG, Target: q}, q) }

func (r *Recorder) ControlledX(controls []quantum.Qubit, target quantum.Qubit) {
	if len(controls) == 0 {
		r.X(target)
		return
	}
	g := Gate{Type: GateCX, Target: target, Controls: cloneQubits(controls)}
	r.record(g, append(cloneQubits(controls), target)...)
}

// Alloc mints an ancilla wire, reusing freed ones LIFO.
func (r *Recorder) Alloc() quantum.Qubit {
	if n := len(r.pool); n > 0 {
		q := r.pool[n-1]
		r.pool = r.pool[:n-1]
		return q
	}
	q := quantum.Qubit(r.circ.NumQubits)
	r.circ.NumQubits++
	r.frontier = append(r.frontier, 0)
	return q
}

// Free returns an ancilla wire to the pool.
func (r *Recorder) Free(q quantum.Qubit) {
	r.pool = append(r.pool, q)
}

func cloneQubits(qs []quantum.Qubit) []quantum.Qubit {
	out := make([]quantum.Qubit, len(qs))
	copy(out, qs)
	return out
}
