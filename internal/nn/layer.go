package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/matrix"
)

// Layer is a fully connected layer.
//
// Performs the transformation: y = f(x @ W.T + b)
// where:
//   - x is the input row with shape [1, inputs]
//   - W is the weight matrix with shape [neurons, inputs]
//   - b is the bias row with shape [1, neurons]
//   - f is the layer's activation, applied row-wise
type Layer struct {
	weights    *matrix.Matrix // [neurons, inputs]
	biases     *matrix.Matrix // [1, neurons]
	activation activation.Activation
}

// NewLayer creates a layer with the given neuron and input counts.
//
// Weights are initialized using Xavier/Glorot uniform distribution drawn from
// rng (nil means a freshly seeded generator). Biases are initialized to zeros.
// It panics if either count is not positive or the activation is unknown.
func NewLayer(neurons, inputs int, act activation.Activation, rng *rand.Rand) *Layer {
	if neurons <= 0 || inputs <= 0 {
		panic(fmt.Sprintf("nn: layer needs positive neurons and inputs, got %d and %d", neurons, inputs))
	}
	if !act.Valid() {
		panic(fmt.Sprintf("nn: unknown activation %v", act.Kind))
	}
	return &Layer{
		weights:    Xavier(inputs, neurons, rng),
		biases:     Zeros(1, neurons),
		activation: act,
	}
}

// NewLayerFromMatrices rebuilds a layer from stored parameters.
// The matrices are copied.
func NewLayerFromMatrices(weights, biases *matrix.Matrix, act activation.Activation) (*Layer, error) {
	if !act.Valid() {
		return nil, fmt.Errorf("%w: unknown activation %v", ErrInvalidArgument, act.Kind)
	}
	if biases.Rows() != 1 || biases.Cols() != weights.Rows() {
		return nil, fmt.Errorf("%w: biases are %dx%d, want 1x%d",
			ErrShapeMismatch, biases.Rows(), biases.Cols(), weights.Rows())
	}
	return &Layer{
		weights:    weights.Clone(),
		biases:     biases.Clone(),
		activation: act,
	}, nil
}

// Inputs returns the number of inputs the layer expects.
func (l *Layer) Inputs() int { return l.weights.Cols() }

// Neurons returns the number of neurons (outputs) of the layer.
func (l *Layer) Neurons() int { return l.weights.Rows() }

// Weights returns the [neurons, inputs] weight matrix.
func (l *Layer) Weights() *matrix.Matrix { return l.weights }

// Biases returns the [1, neurons] bias row.
func (l *Layer) Biases() *matrix.Matrix { return l.biases }

// Activation returns the layer's activation.
func (l *Layer) Activation() activation.Activation { return l.activation }

// SetWeights replaces the weight matrix. The shape must not change.
func (l *Layer) SetWeights(w *matrix.Matrix) error {
	if w.Rows() != l.weights.Rows() || w.Cols() != l.weights.Cols() {
		return fmt.Errorf("%w: weights are %dx%d, got %dx%d",
			ErrShapeMismatch, l.weights.Rows(), l.weights.Cols(), w.Rows(), w.Cols())
	}
	l.weights = w
	return nil
}

// SetBiases replaces the bias row. The shape must not change.
func (l *Layer) SetBiases(b *matrix.Matrix) error {
	if b.Rows() != l.biases.Rows() || b.Cols() != l.biases.Cols() {
		return fmt.Errorf("%w: biases are %dx%d, got %dx%d",
			ErrShapeMismatch, l.biases.Rows(), l.biases.Cols(), b.Rows(), b.Cols())
	}
	l.biases = b
	return nil
}

// Forward computes the activated output row for an input row.
func (l *Layer) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	pre, err := input.Dot(l.weights.Transpose())
	if err != nil {
		return nil, err
	}

	// Broadcast the bias row over every result row.
	biased := pre.Map(func(v float64, _, col int) float64 {
		return v + l.biases.At(0, col)
	})

	return biased.MapRow(l.activation.Calc)
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		weights:    l.weights.Clone(),
		biases:     l.biases.Clone(),
		activation: l.activation,
	}
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	return fmt.Sprintf("Layer(%d -> %d, %v)", l.Inputs(), l.Neurons(), l.activation)
}
