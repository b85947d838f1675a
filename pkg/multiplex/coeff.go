// Package multiplex decomposes multiplexed (index-selected) operations into
// elementary gates on a quantum.Machine: rotations about a Pauli axis selected
// by an index register, diagonal phase operators, and a gate-selection network
// that applies one of a list of arbitrary sub-unitaries.
//
// Index registers are big-endian: the qubit at position 0 is the most
// significant bit of the selector value.
package multiplex

// SplitCoefficients folds a coefficient vector of even length 2m into two
// half-length vectors:
//
//	sum[k]  = (c[k] + c[k+m]) / 2
//	diff[k] = (c[k] - c[k+m]) / 2
//
// so that sum[k]+diff[k] == c[k] and sum[k]-diff[k] == c[k+m] exactly. This is
// the angle-halving identity that turns one multiplexed rotation into two
// half-size multiplexed rotations around a CNOT sandwich.
func SplitCoefficients(c []float64) (sum, diff []float64) {
	m := len(c) / 2
	sum = make([]float64, m)
	diff = make([]float64, m)
	for k := 0; k < m; k++ {
		sum[k] = 0.5 * (c[k] + c[k+m])
		diff[k] = 0.5 * (c[k] - c[k+m])
	}
	return sum, diff
}

// PadCoefficients returns a fresh copy of c right-padded with zeros to length
// 2^n. Entries beyond 2^n are ignored; the input is never mutated.
func PadCoefficients(c []float64, n int) []float64 {
	padded := make([]float64, 1<<n)
	copy(padded, c)
	return padded
}

func negated(c []float64) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = -v
	}
	return out
}
