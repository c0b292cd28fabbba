// qstate.go
package qsim

import (
	"math"
	"math/cmplx"

	"github.com/theapemachine/errnie"
)

/*
QuantumState is the full joint state of N qubits, held as a vector of
2^N complex amplitudes. Basis index i, read as an N-bit number, encodes
one joint outcome; public qubit index q addresses bit 1<<q of that
number, so qubit 0 is the least significant bit and the last factor of
a composition.

The vector is mutated in place by gates and measurement and satisfies
the normalization invariant (sum of squared magnitudes within tolerance
of 1) after every successful call. A QuantumState is not safe for
concurrent use; run independent instances instead.
*/
type QuantumState struct {
	Vector []complex128

	nQubits int
	config  *Config
	metrics *Metrics
}

// NewQuantumState copies statevector into a new state. It returns a
// ValidationError when the length is not a power of two or the sum of
// squared magnitudes is not within tolerance of 1. A nil config selects
// NewConfig().
func NewQuantumState(statevector []complex128, config *Config) (*QuantumState, error) {
	if config == nil {
		config = NewConfig()
	}
	if !isPowerOfTwo(len(statevector)) {
		return nil, newValidationError("the length of the statevector must be a power of 2")
	}
	if diff := 1 - normSquared(statevector); diff > config.Tolerance || diff < -config.Tolerance {
		return nil, newValidationError("the euclidean norm of the state must be 1")
	}

	vector := make([]complex128, len(statevector))
	copy(vector, statevector)

	qs := &QuantumState{
		Vector:  vector,
		nQubits: log2(len(vector)),
		config:  config,
		metrics: newMetrics(),
	}
	qs.metrics.recordQubits(qs.nQubits)

	errnie.Info("NewQuantumState - %d qubits, %d amplitudes", qs.nQubits, len(qs.Vector))
	return qs, nil
}

// FromQubits builds a joint state as the left-to-right Kronecker
// product of its parts, so the first part occupies the highest-order
// bits. A nil config selects NewConfig().
func FromQubits(config *Config, parts ...Composable) (*QuantumState, error) {
	statevector := []complex128{1}
	for _, part := range parts {
		statevector = kronVec(statevector, part.Amplitudes())
	}
	return NewQuantumState(statevector, config)
}

// AddQubit appends part as the new lowest-order factor via the tensor
// product. Existing qubit indices all shift up by the width of part.
// The appended factor's normalization is not checked; composing
// normalized parts keeps the invariant.
func (qs *QuantumState) AddQubit(part Composable) error {
	amps := part.Amplitudes()
	if !isPowerOfTwo(len(amps)) {
		return newValidationError("the length of the added qubit must be a power of 2")
	}

	qs.Vector = kronVec(qs.Vector, amps)
	qs.nQubits += log2(len(amps))
	qs.metrics.recordQubits(qs.nQubits)

	errnie.Info("AddQubit - state now %d qubits", qs.nQubits)
	return nil
}

// Apply applies a validated single-qubit operator to the qubit at
// index, leaving all other qubits unchanged. It returns a RangeError
// for an index outside [0, NumQubits) and a ShapeError for an operator
// that is not 2x2. The update walks the amplitude pairs that differ
// only in bit index, which matches the explicit identity-Kronecker
// expansion of the operator (see expandSingleQubit) at O(2^N) instead
// of O(4^N).
func (qs *QuantumState) Apply(index int, op *Operator) error {
	if err := qs.checkIndex(index); err != nil {
		return err
	}
	if op.Dim() != 2 {
		return &ShapeError{Rows: op.Matrix().Rows(), Cols: op.Matrix().Cols(), WantDim: 2}
	}

	m := op.Matrix()
	m00, m01 := m.At(0, 0), m.At(0, 1)
	m10, m11 := m.At(1, 0), m.At(1, 1)

	bit := 1 << index
	for i := range qs.Vector {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := qs.Vector[i], qs.Vector[j]
			qs.Vector[i] = m00*a0 + m01*a1
			qs.Vector[j] = m10*a0 + m11*a1
		}
	}

	qs.metrics.recordGate()
	return nil
}

// X performs a bit flip on the qubit at index.
func (qs *QuantumState) X(index int) error {
	return qs.Apply(index, PauliX())
}

// Z performs a phase flip on the qubit at index.
func (qs *QuantumState) Z(index int) error {
	return qs.Apply(index, PauliZ())
}

// H performs a Hadamard gate on the qubit at index.
func (qs *QuantumState) H(index int) error {
	return qs.Apply(index, Hadamard())
}

// CNOT routes every amplitude whose control bit is 1 to the basis index
// with the target bit flipped, leaving control-0 amplitudes unchanged.
// It is a permutation over all basis indices rather than a Kronecker
// expansion, so control and target may sit at arbitrary, non-adjacent
// positions.
func (qs *QuantumState) CNOT(control, target int) error {
	if err := qs.checkIndex(control); err != nil {
		return err
	}
	if err := qs.checkIndex(target); err != nil {
		return err
	}
	if control == target {
		return newValidationError("control and target must be distinct qubits")
	}

	controlBit := 1 << control
	targetBit := 1 << target

	newVector := make([]complex128, len(qs.Vector))
	for i, amp := range qs.Vector {
		if i&controlBit != 0 {
			newVector[i^targetBit] = amp
		} else {
			newVector[i] = amp
		}
	}
	qs.Vector = newVector

	qs.metrics.recordGate()
	return nil
}

// Measure performs a partial measurement of the qubit at index,
// collapsing the state to the observed outcome and renormalizing the
// survivors. The outcome is 0 exactly when the uniform draw r
// satisfies r < prob0; this direct comparison (rather than sampling a
// cumulative distribution) is the authoritative two-outcome policy and
// must not be generalized to multi-valued measurements as-is.
//
// Measuring the same qubit again always repeats the outcome; the qubit
// stays in the index space after collapse.
func (qs *QuantumState) Measure(index int) (int, error) {
	if err := qs.checkIndex(index); err != nil {
		return 0, err
	}

	bit := 1 << index
	prob0 := 0.0
	for i, amp := range qs.Vector {
		if i&bit == 0 {
			prob0 += absSquared(amp)
		}
	}

	outcome := 1
	if qs.config.Rand.Float64() < prob0 {
		outcome = 0
	}

	want := 0
	if outcome == 1 {
		want = bit
	}

	surviving := 0.0
	for i, amp := range qs.Vector {
		if i&bit == want {
			surviving += absSquared(amp)
		}
	}

	scale := complex(1/math.Sqrt(surviving), 0)
	for i := range qs.Vector {
		if i&bit == want {
			qs.Vector[i] *= scale
		} else {
			qs.Vector[i] = 0
		}
	}

	qs.metrics.recordMeasurement()
	return outcome, nil
}

// expandSingleQubit builds the full 2^N x 2^N operator that applies op
// to the qubit at index and the identity everywhere else, as the
// N-fold Kronecker product with op at the matching slot. The chain
// runs from the highest-order factor down, so the public (bit-value)
// index maps to slot nQubits-index-1. Reference algorithm only;
// Apply produces identical amplitudes without materializing it.
func (qs *QuantumState) expandSingleQubit(index int, op *Operator) *Matrix {
	slot := qs.nQubits - index - 1
	i2 := Identity(2)

	var expanded *Matrix
	if slot == 0 {
		expanded = op.Matrix()
	} else {
		expanded = i2
	}
	for i := 1; i < qs.nQubits; i++ {
		if i == slot {
			expanded = expanded.Kron(op.Matrix())
		} else {
			expanded = expanded.Kron(i2)
		}
	}
	return expanded
}

// Amplitudes returns a copy of the statevector. It also makes a
// QuantumState Composable, covering the composed-state case.
func (qs *QuantumState) Amplitudes() []complex128 {
	out := make([]complex128, len(qs.Vector))
	copy(out, qs.Vector)
	return out
}

// NumQubits returns N.
func (qs *QuantumState) NumQubits() int {
	return qs.nQubits
}

// Len returns the number of amplitudes, 2^N.
func (qs *QuantumState) Len() int {
	return len(qs.Vector)
}

// At returns the amplitude of basis index i.
func (qs *QuantumState) At(i int) complex128 {
	return qs.Vector[i]
}

// Probability returns the squared magnitude of basis index i.
func (qs *QuantumState) Probability(i int) float64 {
	return absSquared(qs.Vector[i])
}

// Norm returns the sum of squared magnitudes over all amplitudes.
func (qs *QuantumState) Norm() float64 {
	return normSquared(qs.Vector)
}

// Metrics returns the state's operation counters.
func (qs *QuantumState) Metrics() *Metrics {
	return qs.metrics
}

func (qs *QuantumState) checkIndex(index int) error {
	if index < 0 || index >= qs.nQubits {
		return &RangeError{Index: index, Qubits: qs.nQubits}
	}
	return nil
}

func absSquared(c complex128) float64 {
	a := cmplx.Abs(c)
	return a * a
}

func normSquared(v []complex128) float64 {
	total := 0.0
	for _, amp := range v {
		total += absSquared(amp)
	}
	return total
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2(n int) int {
	count := 0
	for n > 1 {
		n >>= 1
		count++
	}
	return count
}
