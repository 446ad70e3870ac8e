package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/juggernaut/internal/matrix"
)

// Observer receives training progress at the end of every epoch.
// Both callbacks are optional and run synchronously on the training goroutine.
type Observer struct {
	// OnError receives the epoch's mean sample loss.
	OnError func(meanLoss float64)
	// OnEpoch receives a deep copy of the network after the epoch.
	OnEpoch func(net *Network)
}

// TrainConfig holds configuration for Train.
type TrainConfig struct {
	Epochs       int        // Number of passes over the samples
	LearningRate float64    // Step size of every update
	Observer     *Observer  // Optional epoch callbacks
	Rand         *rand.Rand // Shuffle source; nil uses a freshly seeded generator
}

// TrainReport summarizes a Train call.
type TrainReport struct {
	Epochs int       // Epochs run
	Losses []float64 // Mean sample loss per epoch
}

// FinalLoss returns the last epoch's mean loss, or NaN if no epoch ran.
func (r *TrainReport) FinalLoss() float64 {
	if len(r.Losses) == 0 {
		return math.NaN()
	}
	return r.Losses[len(r.Losses)-1]
}

// Train runs online stochastic gradient descent for cfg.Epochs epochs.
//
// Every epoch optionally shuffles the samples, then updates all layers after
// each sample:
//
//	error_out   = target - prediction
//	error_i     = delta_{i+1} · W_{i+1}
//	delta_i     = error_i ⊙ f_i'(output_i)
//	b_i        += lr · delta_i
//	W_i        += (lr · delta_i)ᵀ · output_{i-1}
//
// where output_{-1} is the sample input. Layers are updated from the output
// backwards, so W_{i+1} is the matrix already updated for this sample. All
// arguments are validated before the first update; the caller's samples slice
// is never reordered.
func (n *Network) Train(samples []Sample, cfg TrainConfig) (*TrainReport, error) {
	if err := n.validateTraining(samples, cfg); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = newRand()
	}

	order := make([]Sample, len(samples))
	copy(order, samples)

	report := &TrainReport{Losses: make([]float64, 0, cfg.Epochs)}
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if n.shuffleData {
			rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}

		var total float64
		for _, sample := range order {
			loss, err := n.step(sample, cfg.LearningRate)
			if err != nil {
				return report, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			total += loss
		}

		mean := 0.0
		if len(order) > 0 {
			mean = total / float64(len(order))
		}
		report.Losses = append(report.Losses, mean)
		report.Epochs++

		if obs := cfg.Observer; obs != nil {
			if obs.OnError != nil {
				obs.OnError(mean)
			}
			if obs.OnEpoch != nil {
				obs.OnEpoch(n.Clone())
			}
		}
	}
	return report, nil
}

// validateTraining rejects anything that would otherwise fail mid-epoch.
func (n *Network) validateTraining(samples []Sample, cfg TrainConfig) error {
	if len(n.layers) == 0 {
		return fmt.Errorf("%w: network has no layers", ErrInvalidState)
	}
	if cfg.Epochs < 0 {
		return fmt.Errorf("%w: epochs must be >= 0, got %d", ErrInvalidArgument, cfg.Epochs)
	}
	if math.IsNaN(cfg.LearningRate) || math.IsInf(cfg.LearningRate, 0) {
		return fmt.Errorf("%w: learning rate must be finite, got %v", ErrInvalidArgument, cfg.LearningRate)
	}

	in, out := n.InputSize(), n.OutputSize()
	for i, s := range samples {
		if !s.HasTarget() {
			return fmt.Errorf("sample %d: %w", i, ErrMissingTarget)
		}
		if s.InputsCount() != in {
			return fmt.Errorf("sample %d: %w: %d inputs, network expects %d",
				i, ErrDimensionMismatch, s.InputsCount(), in)
		}
		if s.OutputsCount() != out {
			return fmt.Errorf("sample %d: %w: %d outputs, network produces %d",
				i, ErrDimensionMismatch, s.OutputsCount(), out)
		}
	}
	return nil
}

// step runs one forward/backward pass for a single sample and returns its loss.
func (n *Network) step(sample Sample, lr float64) (float64, error) {
	outputs, err := n.Forward(sample)
	if err != nil {
		return 0, err
	}
	target, err := sample.targetMatrix()
	if err != nil {
		return 0, err
	}

	var (
		loss  float64
		delta *matrix.Matrix
	)

	last := len(n.layers) - 1
	for pos := 0; pos <= last; pos++ {
		index := last - pos
		layer := n.layers[index]
		output := outputs[index]

		var errRow *matrix.Matrix
		if pos == 0 {
			if errRow, err = target.Sub(output); err != nil {
				return 0, err
			}
			if loss, err = n.costFunction.Calc(output, target); err != nil {
				return 0, err
			}
		} else {
			// Layer index+1 was replaced in the previous iteration.
			if errRow, err = delta.Dot(n.layers[index+1].weights); err != nil {
				return 0, fmt.Errorf("layer %d: %w", index, err)
			}
		}

		derivative := matrix.RowVector(layer.activation.Derivative(output.Row(0)))
		if delta, err = errRow.Hadamard(derivative); err != nil {
			return 0, fmt.Errorf("layer %d: %w", index, err)
		}
		scaled := delta.Scale(lr)

		biases, err := layer.biases.Add(scaled)
		if err != nil {
			return 0, fmt.Errorf("layer %d: %w", index, err)
		}

		previous := sample.inputMatrix()
		if index > 0 {
			previous = outputs[index-1]
		}
		grad, err := scaled.Transpose().Dot(previous)
		if err != nil {
			return 0, fmt.Errorf("layer %d: %w", index, err)
		}
		weights, err := layer.weights.Add(grad)
		if err != nil {
			return 0, fmt.Errorf("layer %d: %w", index, err)
		}

		layer.weights, layer.biases = weights, biases
	}
	return loss, nil
}
