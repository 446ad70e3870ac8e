// Package nn implements a small feed-forward neural network with online
// (per-sample) backpropagation.
//
// A Network is an ordered list of dense layers, a cost function used to report
// training error, and a flag that shuffles samples before every epoch:
//
//	rng := rand.New(rand.NewSource(1))
//	net := nn.New()
//	_ = net.AddLayer(nn.NewLayer(2, 3, activation.NewSigmoid(), rng)) // 2 neurons, 3 inputs
//	_ = net.AddLayer(nn.NewLayer(1, 2, activation.NewSigmoid(), rng))
//
//	report, err := net.Train(samples, nn.TrainConfig{
//	    Epochs:       100,
//	    LearningRate: 0.1,
//	    Rand:         rng,
//	})
//
//	out, err := net.Evaluate(nn.NewPredictSample([]float64{1, 0, 1}))
//
// The network's only persistent form is its text document (see ToText and
// FromText). A Network is not safe for concurrent use: Train mutates layer
// parameters and must not overlap with any other call.
package nn
