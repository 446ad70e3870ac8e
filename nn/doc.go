// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward neural networks trained with online
// backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: ordered layers, a cost function and a shuffle flag
//   - Layer: weights (neurons × inputs), a bias row and an activation
//   - Sample: an input row with an optional target row
//   - Activations: Identity, Sigmoid, HyperbolicTangent, SoftMax, SoftPlus,
//     RectifiedLinearUnit, LeakyRectifiedLinearUnit
//   - Costs: SquaredError, CrossEntropy
//   - Text round-trip: Network.ToText / FromText, Sample.ToText / SampleFromText
//
// # Basic Usage
//
//	import "github.com/born-ml/juggernaut/nn"
//
//	func main() {
//	    net := nn.New()
//	    _ = net.AddLayer(nn.NewLayer(3, 2, nn.NewSigmoid(), nil))
//	    _ = net.AddLayer(nn.NewLayer(1, 3, nn.NewSigmoid(), nil))
//
//	    samples := []nn.Sample{
//	        nn.NewSample([]float64{0, 1}, []float64{1}),
//	        nn.NewSample([]float64{1, 1}, []float64{0}),
//	    }
//	    report, err := net.Train(samples, nn.TrainConfig{Epochs: 1000, LearningRate: 0.5})
//
//	    pred, err := net.Evaluate(nn.NewPredictSample([]float64{0, 1}))
//	}
//
// # Errors
//
// Errors returned by this package match one of ErrShapeMismatch,
// ErrInvalidState, ErrMissingTarget, ErrInvalidArgument, ErrDimensionMismatch
// or ErrParse with errors.Is.
//
// # Concurrency
//
// Train mutates the network and must not run concurrently with any other call.
// Evaluate, EvaluateAll, Loss and Accuracy only read it.
package nn
