// operator.go
package qsim

import (
	"math"
)

/*
Operator wraps a square complex matrix that has been verified unitary,
so gate application can trust its input. The matrix is validated once at
construction and never mutated afterwards: the check multiplies the
matrix by its conjugate transpose and compares against the identity
within the unitarity tolerance.
*/
type Operator struct {
	matrix *Matrix
}

// NewOperator validates m and wraps it. It returns a ValidationError
// when m is not square or not unitary within tolerance.
func NewOperator(m *Matrix) (*Operator, error) {
	if !m.IsSquare() {
		return nil, newValidationError("the operation must be a square matrix")
	}
	if !m.Mul(m.ConjugateTranspose()).ApproxEqual(Identity(m.Rows()), DefaultTolerance) {
		return nil, newValidationError("the operation must be a unitary matrix")
	}
	return &Operator{matrix: m.Clone()}, nil
}

// Matrix returns the validated matrix. Callers must not mutate it.
func (op *Operator) Matrix() *Matrix {
	return op.matrix
}

// Dim returns the matrix dimension (2^k for a k-qubit operator).
func (op *Operator) Dim() int {
	return op.matrix.Rows()
}

// Qubits returns the number of qubits the operator acts on.
func (op *Operator) Qubits() int {
	return log2(op.Dim())
}

// mustOperator backs the built-in gates, which are unitary by
// construction.
func mustOperator(rows [][]complex128) *Operator {
	op, err := NewOperator(NewMatrixFromRows(rows))
	if err != nil {
		panic(err)
	}
	return op
}

// PauliX returns the bit-flip gate [[0,1],[1,0]].
func PauliX() *Operator {
	return mustOperator([][]complex128{
		{0, 1},
		{1, 0},
	})
}

// PauliZ returns the phase-flip gate [[1,0],[0,-1]].
func PauliZ() *Operator {
	return mustOperator([][]complex128{
		{1, 0},
		{0, -1},
	})
}

// Hadamard returns the gate [[1,1],[1,-1]]/sqrt(2).
func Hadamard() *Operator {
	h := complex(1/math.Sqrt2, 0)
	return mustOperator([][]complex128{
		{h, h},
		{h, -h},
	})
}
