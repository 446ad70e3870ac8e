package nn

import (
	"fmt"

	"github.com/born-ml/juggernaut/internal/matrix"
)

// Forward runs the sample through every layer and returns each layer's
// activated output in forward order. The last entry is the prediction.
//
// Each output is 1×neurons. Forward fails with ErrInvalidState on a network
// without layers and with ErrDimensionMismatch when the sample width does not
// match the first layer.
func (n *Network) Forward(sample Sample) ([]*matrix.Matrix, error) {
	if len(n.layers) == 0 {
		return nil, fmt.Errorf("%w: network has no layers", ErrInvalidState)
	}

	outputs := make([]*matrix.Matrix, 0, len(n.layers))
	input := sample.inputMatrix()
	for i, layer := range n.layers {
		out, err := layer.Forward(input)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		outputs = append(outputs, out)
		input = out
	}
	return outputs, nil
}

// Evaluate returns the final layer's output for the sample, a 1×OutputSize() row.
func (n *Network) Evaluate(sample Sample) (*matrix.Matrix, error) {
	outputs, err := n.Forward(sample)
	if err != nil {
		return nil, err
	}
	return outputs[len(outputs)-1], nil
}

// Error returns the cost of a prediction against a target row.
func (n *Network) Error(prediction, target *matrix.Matrix) (float64, error) {
	return n.costFunction.Calc(prediction, target)
}
