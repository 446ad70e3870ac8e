// Package cost provides the scalar loss functions used to report training error.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/juggernaut/internal/matrix"
)

// ErrUnknownCost is returned by Parse for names outside the registry.
var ErrUnknownCost = errors.New("unknown cost function")

// Function identifies a cost function. The zero value is SquaredError.
type Function uint8

// Supported cost functions.
const (
	SquaredError Function = iota
	CrossEntropy
)

var names = [...]string{
	SquaredError: "SquaredError",
	CrossEntropy: "CrossEntropy",
}

// Functions returns every supported cost function.
func Functions() []Function {
	return []Function{SquaredError, CrossEntropy}
}

// Parse resolves a serialization name.
func Parse(name string) (Function, error) {
	for i, n := range names {
		if n == name {
			return Function(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCost, name)
}

// Name returns the stable serialization name.
func (f Function) Name() string {
	if int(f) < len(names) {
		return names[f]
	}
	return fmt.Sprintf("Function(%d)", uint8(f))
}

// String implements fmt.Stringer.
func (f Function) String() string { return f.Name() }

// Valid reports whether f is part of the registry.
func (f Function) Valid() bool { return int(f) < len(names) }

// Calc returns the loss of the first row of prediction against the first row of target.
//
//	SquaredError: Σ (tᵢ − pᵢ)² / 2
//	CrossEntropy: −Σ tᵢ·ln(pᵢ), skipping tᵢ == 0
func (f Function) Calc(prediction, target *matrix.Matrix) (float64, error) {
	if prediction.Rows() != 1 || target.Rows() != 1 || prediction.Cols() != target.Cols() {
		pr, pc := prediction.Shape()
		tr, tc := target.Shape()
		return 0, fmt.Errorf("%w: prediction %dx%d, target %dx%d", matrix.ErrDimensionMismatch, pr, pc, tr, tc)
	}
	return f.CalcRow(prediction.Row(0), target.Row(0))
}

// CalcRow is Calc over plain slices.
func (f Function) CalcRow(prediction, target []float64) (float64, error) {
	if len(prediction) != len(target) {
		return 0, fmt.Errorf("%w: prediction has %d values, target %d",
			matrix.ErrDimensionMismatch, len(prediction), len(target))
	}

	var sum float64
	switch f {
	case SquaredError:
		for i, p := range prediction {
			d := target[i] - p
			sum += d * d / 2
		}
	case CrossEntropy:
		for i, p := range prediction {
			if target[i] == 0 {
				continue
			}
			sum -= target[i] * math.Log(p)
		}
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownCost, f)
	}
	return sum, nil
}
