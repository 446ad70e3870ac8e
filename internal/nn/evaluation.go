package nn

import (
	"fmt"

	"github.com/born-ml/juggernaut/internal/matrix"
	"github.com/born-ml/juggernaut/internal/parallel"
)

// EvaluateAll evaluates every sample and returns the predictions in sample order.
//
// Samples are evaluated concurrently according to SetParallelism. The network is
// only read, so this is safe as long as no Train call runs at the same time.
func (n *Network) EvaluateAll(samples []Sample) ([]*matrix.Matrix, error) {
	if len(n.layers) == 0 {
		return nil, fmt.Errorf("%w: network has no layers", ErrInvalidState)
	}
	out := make([]*matrix.Matrix, len(samples))
	err := parallel.ForErr(len(samples), func(i int) error {
		pred, err := n.Evaluate(samples[i])
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = pred
		return nil
	}, n.parallel)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Loss returns the mean cost over samples, which must all carry targets.
// An empty set has zero loss.
func (n *Network) Loss(samples []Sample) (float64, error) {
	for i, s := range samples {
		if !s.HasTarget() {
			return 0, fmt.Errorf("sample %d: %w", i, ErrMissingTarget)
		}
	}
	preds, err := n.EvaluateAll(samples)
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, nil
	}

	var total float64
	for i, pred := range preds {
		target, _ := samples[i].targetMatrix()
		loss, err := n.costFunction.Calc(pred, target)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		total += loss
	}
	return total / float64(len(samples)), nil
}

// Accuracy returns the fraction of samples whose prediction matches the target.
//
// With several outputs the arg-max positions are compared; with a single output
// both values are thresholded at 0.5.
func (n *Network) Accuracy(samples []Sample) (float64, error) {
	for i, s := range samples {
		if !s.HasTarget() {
			return 0, fmt.Errorf("sample %d: %w", i, ErrMissingTarget)
		}
		if s.OutputsCount() != n.OutputSize() {
			return 0, fmt.Errorf("sample %d: %w: %d outputs, network produces %d",
				i, ErrDimensionMismatch, s.OutputsCount(), n.OutputSize())
		}
	}
	preds, err := n.EvaluateAll(samples)
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, nil
	}

	correct := 0
	for i, pred := range preds {
		p, t := pred.Row(0), samples[i].outputs
		if len(p) == 1 {
			if (p[0] >= 0.5) == (t[0] >= 0.5) {
				correct++
			}
			continue
		}
		if argmax(p) == argmax(t) {
			correct++
		}
	}
	return float64(correct) / float64(len(samples)), nil
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
