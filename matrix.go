// matrix.go
package qsim

import (
	"math/cmplx"
)

// Matrix is a dense complex matrix stored in row-major order. It backs
// operator validation and the reference operator-expansion path; gates on
// realistic qubit counts go through the bit-pair fast path instead.
type Matrix struct {
	rows, cols int
	data       []complex128
}

// NewMatrix creates a zeroed matrix of the given size.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]complex128, rows*cols),
	}
}

// NewMatrixFromRows creates a matrix from a slice of equal-length rows.
func NewMatrixFromRows(rows [][]complex128) *Matrix {
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// At returns the value at a specific row and column.
func (m *Matrix) At(r, c int) complex128 {
	return m.data[r*m.cols+c]
}

// Set sets the value at a specific row and column.
func (m *Matrix) Set(r, c int, val complex128) {
	m.data[r*m.cols+c] = val
}

func (m *Matrix) Rows() int { return m.rows }

func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Mul returns the matrix product m * other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	out := NewMatrix(m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for k := 0; k < m.cols; k++ {
			a := m.At(r, k)
			if a == 0 {
				continue
			}
			for c := 0; c < other.cols; c++ {
				out.data[r*out.cols+c] += a * other.At(k, c)
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v []complex128) []complex128 {
	out := make([]complex128, m.rows)
	for r := 0; r < m.rows; r++ {
		var sum complex128
		for c := 0; c < m.cols; c++ {
			sum += m.At(r, c) * v[c]
		}
		out[r] = sum
	}
	return out
}

// Kron returns the Kronecker product m ⊗ other.
func (m *Matrix) Kron(other *Matrix) *Matrix {
	out := NewMatrix(m.rows*other.rows, m.cols*other.cols)
	for r := 0; r < out.rows; r++ {
		for c := 0; c < out.cols; c++ {
			out.Set(r, c, m.At(r/other.rows, c/other.cols)*other.At(r%other.rows, c%other.cols))
		}
	}
	return out
}

// ConjugateTranspose returns the adjoint m†.
func (m *Matrix) ConjugateTranspose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(c, r, cmplx.Conj(m.At(r, c)))
		}
	}
	return out
}

// ApproxEqual reports whether every entry of m and other is within tol.
func (m *Matrix) ApproxEqual(other *Matrix, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// kronVec returns the Kronecker product of two amplitude vectors.
func kronVec(a, b []complex128) []complex128 {
	out := make([]complex128, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, x*y)
		}
	}
	return out
}
