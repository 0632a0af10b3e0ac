package matrix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadShape          = errors.New("matrix: rows and cols must be positive")
	ErrRowRange          = errors.New("matrix: row index out of range")
	ErrColRange          = errors.New("matrix: column index out of range")
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Matrix is a dense row-major float32 matrix. Indices are zero-based.
type Matrix struct {
	rows, cols int
	data       []float32
}

// New returns a rows x cols matrix of zeros; a square matrix starts as the
// identity.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{rows: rows, cols: cols, data: make([]float32, rows*cols)}
	if rows == cols {
		for i := 0; i < rows; i++ {
			m.data[i*cols+i] = 1
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Init fills the matrix from vals in row-major order. len(vals) must be
// exactly rows*cols.
func (m *Matrix) Init(vals []float32) error {
	if len(vals) != m.rows*m.cols {
		return ErrDimensionMismatch
	}
	copy(m.data, vals)
	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	dup := &Matrix{rows: m.rows, cols: m.cols, data: make([]float32, len(m.data))}
	copy(dup.data, m.data)
	return dup
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// Scale multiplies every element by f in place.
func (m *Matrix) Scale(f float32) {
	for i := range m.data {
		m.data[i] *= f
	}
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float32, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrRowRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrColRange
	}
	return m.data[row*m.cols+col], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float32) error {
	if row < 0 || row >= m.rows {
		return ErrRowRange
	}
	if col < 0 || col >= m.cols {
		return ErrColRange
	}
	m.data[row*m.cols+col] = v
	return nil
}

// Row returns a copy of the given row.
func (m *Matrix) Row(row int) ([]float32, error) {
	if row < 0 || row >= m.rows {
		return nil, ErrRowRange
	}
	out := make([]float32, m.cols)
	copy(out, m.data[row*m.cols:(row+1)*m.cols])
	return out, nil
}

// SetRow replaces the given row. len(vals) must equal Cols.
func (m *Matrix) SetRow(row int, vals []float32) error {
	if row < 0 || row >= m.rows {
		return ErrRowRange
	}
	if len(vals) != m.cols {
		return ErrDimensionMismatch
	}
	copy(m.data[row*m.cols:(row+1)*m.cols], vals)
	return nil
}

// Mul returns the matrix product a*b. a.Cols must equal b.Rows.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}
	out := &Matrix{rows: a.rows, cols: b.cols, data: make([]float32, a.rows*b.cols)}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var sum float32
			for k := 0; k < a.cols; k++ {
				sum += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			out.data[i*out.cols+j] = sum
		}
	}
	return out, nil
}

// Transpose returns a new matrix with rows and columns exchanged.
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows, data: make([]float32, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// String renders the matrix with a shape header and 8-wide elements.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d rows, %d columns:\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%8.3f", m.data[i*m.cols+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
