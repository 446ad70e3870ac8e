// Package matrix implements the dense two-dimensional float64 container used by the
// juggernaut engine.
//
// A Matrix is immutable: every transform (Transpose, Dot, Map, MapRow, Add, ...)
// allocates and returns a new Matrix. Storage is row-major, so row i occupies
// data[i*cols : (i+1)*cols].
//
// Example:
//
//	a := matrix.Generate(2, 3, func(r, c int) float64 { return float64(r*3 + c) })
//	b := a.Transpose()        // 3×2
//	p, err := a.Dot(b)        // 2×2
package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")
	ErrOutOfBounds       = errors.New("matrix index out of bounds")
	ErrInvalidShape      = errors.New("invalid matrix shape")
)

// Matrix is a dense rows×cols matrix of float64 values.
type Matrix struct {
	rows int
	cols int
	data []float64 // row-major, len == rows*cols
}

// Zero returns a rows×cols matrix filled with zeros.
func Zero(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative shape %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Generate returns a rows×cols matrix where cell (r, c) holds f(r, c).
// Cells are visited in row-major order.
func Generate(rows, cols int, f func(row, col int) float64) *Matrix {
	m := Zero(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.data[r*cols+c] = f(r, c)
		}
	}
	return m
}

// New builds a matrix from a row-major slice. The slice is copied.
func New(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrDimensionMismatch, len(data), rows, cols)
	}
	m := Zero(rows, cols)
	copy(m.data, data)
	return m, nil
}

// FromRows builds a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return Zero(0, 0), nil
	}
	cols := len(rows[0])
	m := Zero(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), cols)
		}
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// RowVector returns a 1×len(values) matrix holding a copy of values.
func RowVector(values []float64) *Matrix {
	m := Zero(1, len(values))
	copy(m.data, values)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// At returns the value at (row, col). It panics if the index is out of range;
// use Get for a checked lookup.
func (m *Matrix) At(row, col int) float64 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d", row, col, m.rows, m.cols))
	}
	return m.data[row*m.cols+col]
}

// Get returns the value at (row, col), or ErrOutOfBounds.
func (m *Matrix) Get(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%w: (%d, %d) for %dx%d", ErrOutOfBounds, row, col, m.rows, m.cols)
	}
	return m.data[row*m.cols+col], nil
}

// Row returns a copy of row i (columns 0..cols-1).
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d", i, m.rows, m.cols))
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Data returns a copy of the row-major backing store.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: m.Data()}
}

// Transpose returns a new cols×rows matrix.
func (m *Matrix) Transpose() *Matrix {
	out := Zero(m.cols, m.rows)
	if len(m.data) == 0 {
		return out
	}
	out.dense().Copy(m.dense().T())
	return out
}

// Dot returns the matrix product m·other.
//
// Fails with ErrDimensionMismatch when m.Cols() != other.Rows().
func (m *Matrix) Dot(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := Zero(m.rows, other.cols)
	// gonum rejects zero-length dimensions; the product is all zeros anyway.
	if len(out.data) == 0 || m.cols == 0 {
		return out, nil
	}
	out.dense().Mul(m.dense(), other.dense())
	return out, nil
}

// Map returns a new matrix with f applied to every cell.
func (m *Matrix) Map(f func(value float64, row, col int) float64) *Matrix {
	out := Zero(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			i := r*m.cols + c
			out.data[i] = f(m.data[i], r, c)
		}
	}
	return out
}

// MapRow returns a new matrix with f applied independently to each full row.
// f receives a copy of the row and must return a row of the same length.
func (m *Matrix) MapRow(f func(row []float64) []float64) (*Matrix, error) {
	out := Zero(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		row := f(m.Row(r))
		if len(row) != m.cols {
			return nil, fmt.Errorf("%w: row function returned %d values, want %d",
				ErrDimensionMismatch, len(row), m.cols)
		}
		copy(out.data[r*m.cols:], row)
	}
	return out, nil
}

// Add returns the elementwise sum m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.sameShape(other); err != nil {
		return nil, err
	}
	out := m.Clone()
	floats.Add(out.data, other.data)
	return out, nil
}

// Sub returns the elementwise difference m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := m.sameShape(other); err != nil {
		return nil, err
	}
	out := m.Clone()
	floats.Sub(out.data, other.data)
	return out, nil
}

// Hadamard returns the elementwise product m ⊙ other.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := m.sameShape(other); err != nil {
		return nil, err
	}
	out := m.Clone()
	floats.Mul(out.data, other.data)
	return out, nil
}

// Scale returns k·m.
func (m *Matrix) Scale(k float64) *Matrix {
	out := m.Clone()
	floats.Scale(k, out.data)
	return out
}

// Equal reports whether both matrices have the same shape and identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols && floats.Equal(m.data, other.data)
}

// ApproxEqual reports whether both matrices have the same shape and every pair of
// cells differs by at most tol.
func (m *Matrix) ApproxEqual(other *Matrix, tol float64) bool {
	return m.rows == other.rows && m.cols == other.cols && floats.EqualApprox(m.data, other.data, tol)
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	if len(m.data) == 0 {
		return fmt.Sprintf("Matrix(%dx%d)[]", m.rows, m.cols)
	}
	return fmt.Sprintf("Matrix(%dx%d)%v", m.rows, m.cols, mat.Formatted(m.dense(), mat.Squeeze()))
}

func (m *Matrix) sameShape(other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	return nil
}

// dense wraps the backing store without copying. Callers must ensure the
// matrix is non-empty.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}
