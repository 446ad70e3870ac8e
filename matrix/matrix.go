// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense row-major float64 matrix used by nn.
//
// Example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := a.Transpose()
//	c, err := a.Dot(b) // 2x2
package matrix

import (
	"github.com/born-ml/juggernaut/internal/matrix"
)

// Matrix is an immutable dense matrix.
type Matrix = matrix.Matrix

// Errors
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrOutOfBounds       = matrix.ErrOutOfBounds
	ErrInvalidShape      = matrix.ErrInvalidShape
)

// Zero returns a rows×cols matrix of zeros.
func Zero(rows, cols int) *Matrix {
	return matrix.Zero(rows, cols)
}

// Generate returns a rows×cols matrix with f evaluated at every cell in row-major order.
func Generate(rows, cols int, f func(row, col int) float64) *Matrix {
	return matrix.Generate(rows, cols, f)
}

// New wraps a copy of data, which must hold rows×cols values in row-major order.
func New(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.New(rows, cols, data)
}

// FromRows builds a matrix from equally long rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// RowVector returns a 1×len(values) matrix.
func RowVector(values []float64) *Matrix {
	return matrix.RowVector(values)
}
