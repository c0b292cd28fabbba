package qsim

import "fmt"

/*
ValidationError reports input rejected before any mutation took place:
statevectors whose length is not a power of two or whose norm is not 1,
and operator matrices that are not square or not unitary.
*/
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// RangeError reports a qubit index outside [0, NumQubits).
type RangeError struct {
	Index  int
	Qubits int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("qubit index %d is out of range for %d qubits", e.Index, e.Qubits)
}

// ShapeError reports an operator whose dimensions do not match the
// number of qubits the call applies it to.
type ShapeError struct {
	Rows, Cols int
	WantDim    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("operator is %dx%d, want %dx%d", e.Rows, e.Cols, e.WantDim, e.WantDim)
}
