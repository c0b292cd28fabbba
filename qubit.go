package qsim

/*
Composable is anything that can contribute amplitudes to a joint state:
a raw amplitude slice, a single qubit, or a whole QuantumState. It is
the discriminated form of the "vector or state" arguments accepted by
composition.
*/
type Composable interface {
	Amplitudes() []complex128
}

// RawAmplitudes adapts a plain amplitude slice for composition.
type RawAmplitudes []complex128

func (r RawAmplitudes) Amplitudes() []complex128 {
	out := make([]complex128, len(r))
	copy(out, r)
	return out
}

// Qubit is a single two-level system described by its |0⟩ and |1⟩
// amplitudes.
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{
		alpha: alpha,
		beta:  beta,
	}
}

// Zero returns a qubit in the |0⟩ basis state.
func Zero() *Qubit {
	return NewQubit(1, 0)
}

// One returns a qubit in the |1⟩ basis state.
func One() *Qubit {
	return NewQubit(0, 1)
}

func (q *Qubit) Amplitudes() []complex128 {
	return []complex128{q.alpha, q.beta}
}
