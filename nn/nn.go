// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/cost"
	"github.com/born-ml/juggernaut/internal/matrix"
	"github.com/born-ml/juggernaut/internal/nn"
	"github.com/born-ml/juggernaut/internal/serialization"
)

// Network is an ordered stack of layers trained with per-sample backpropagation.
type Network = nn.Network

// Layer is one fully connected layer.
type Layer = nn.Layer

// Sample is an input row with an optional target row.
type Sample = nn.Sample

// Observer receives training progress at the end of every epoch.
type Observer = nn.Observer

// TrainConfig holds configuration for Network.Train.
type TrainConfig = nn.TrainConfig

// TrainReport summarizes a Network.Train call.
type TrainReport = nn.TrainReport

// New creates an empty network using SquaredError and per-epoch shuffling.
func New() *Network {
	return nn.New()
}

// FromText rebuilds a network from a document produced by Network.ToText.
func FromText(text string) (*Network, error) {
	return nn.FromText(text)
}

// LoadOptions relaxes document validation in FromTextWithOptions.
type LoadOptions = serialization.ReaderOptions

// Document validation levels for LoadOptions.
const (
	ValidationStrict = serialization.ValidationStrict
	ValidationNormal = serialization.ValidationNormal
	ValidationNone   = serialization.ValidationNone
)

// FromTextWithOptions is FromText with custom document validation.
//
// Example:
//
//	net, err := nn.FromTextWithOptions(text, nn.LoadOptions{SkipChecksumValidation: true})
func FromTextWithOptions(text string, opts LoadOptions) (*Network, error) {
	return nn.FromTextWithOptions(text, opts)
}

// NewLayer creates a layer with Xavier-initialized weights and zero biases.
// A nil rng uses a time-seeded generator.
//
// Example:
//
//	layer := nn.NewLayer(16, 4, nn.NewLeakyRectifiedLinearUnit(0.01), rng)
func NewLayer(neurons, inputs int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(neurons, inputs, act, rng)
}

// NewLayerFromMatrices creates a layer from existing weights (neurons × inputs)
// and biases (1 × neurons).
func NewLayerFromMatrices(weights, biases *matrix.Matrix, act Activation) (*Layer, error) {
	return nn.NewLayerFromMatrices(weights, biases, act)
}

// NewSample creates a training sample.
func NewSample(inputs, outputs []float64) Sample {
	return nn.NewSample(inputs, outputs)
}

// NewPredictSample creates a sample without a target.
func NewPredictSample(inputs []float64) Sample {
	return nn.NewPredictSample(inputs)
}

// SampleFromText parses a document produced by Sample.ToText.
func SampleFromText(text string) (Sample, error) {
	return nn.SampleFromText(text)
}

// Activations

// Activation is one of the closed set of activation functions.
type Activation = activation.Activation

// ParseActivation resolves an activation by name with default parameters.
func ParseActivation(name string) (Activation, error) {
	return activation.Parse(name)
}

// NewIdentity returns the identity activation.
func NewIdentity() Activation { return activation.NewIdentity() }

// NewSigmoid returns the logistic activation.
func NewSigmoid() Activation { return activation.NewSigmoid() }

// NewHyperbolicTangent returns the tanh activation.
func NewHyperbolicTangent() Activation { return activation.NewHyperbolicTangent() }

// NewSoftMax returns the row-wise softmax activation.
func NewSoftMax() Activation { return activation.NewSoftMax() }

// NewSoftPlus returns the softplus activation.
func NewSoftPlus() Activation { return activation.NewSoftPlus() }

// NewRectifiedLinearUnit returns the ReLU activation.
func NewRectifiedLinearUnit() Activation { return activation.NewRectifiedLinearUnit() }

// NewLeakyRectifiedLinearUnit returns a leaky ReLU with the given negative slope.
func NewLeakyRectifiedLinearUnit(alpha float64) Activation {
	return activation.NewLeakyRectifiedLinearUnit(alpha)
}

// Costs

// CostFunction is one of the closed set of cost functions.
type CostFunction = cost.Function

// Cost function constants.
const (
	SquaredError CostFunction = cost.SquaredError
	CrossEntropy CostFunction = cost.CrossEntropy
)

// ParseCostFunction resolves a cost function by name.
func ParseCostFunction(name string) (CostFunction, error) {
	return cost.Parse(name)
}

// Errors
var (
	ErrShapeMismatch     = nn.ErrShapeMismatch
	ErrInvalidState      = nn.ErrInvalidState
	ErrMissingTarget     = nn.ErrMissingTarget
	ErrInvalidArgument   = nn.ErrInvalidArgument
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrParse             = nn.ErrParse
)
