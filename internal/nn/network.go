package nn

import (
	"fmt"

	"github.com/born-ml/juggernaut/internal/cost"
	"github.com/born-ml/juggernaut/internal/parallel"
)

// Network is an ordered stack of layers trained with per-sample backpropagation.
//
// A new network has no layers, uses SquaredError to report training error and
// shuffles its samples before every epoch.
type Network struct {
	layers       []*Layer
	costFunction cost.Function
	shuffleData  bool
	parallel     parallel.Config // dataset evaluation only, never training
}

// New creates an empty network.
func New() *Network {
	return &Network{
		costFunction: cost.SquaredError,
		shuffleData:  true,
		parallel:     parallel.DefaultConfig(),
	}
}

// AddLayer appends a layer.
//
// The layer's input count must equal the previous layer's neuron count;
// otherwise ErrShapeMismatch is returned and the network is left unchanged.
func (n *Network) AddLayer(layer *Layer) error {
	if layer == nil {
		return fmt.Errorf("%w: nil layer", ErrInvalidArgument)
	}
	if len(n.layers) > 0 {
		prev := n.layers[len(n.layers)-1].Neurons()
		if prev != layer.Inputs() {
			return fmt.Errorf("%w: new layer should have %d inputs, got %d",
				ErrShapeMismatch, prev, layer.Inputs())
		}
	}
	n.layers = append(n.layers, layer)
	return nil
}

// Layers returns the layers in forward order. The returned slice is a copy;
// the layers themselves are shared.
func (n *Network) Layers() []*Layer {
	out := make([]*Layer, len(n.layers))
	copy(out, n.layers)
	return out
}

// Len returns the number of layers.
func (n *Network) Len() int { return len(n.layers) }

// InputSize returns the first layer's input count, or 0 without layers.
func (n *Network) InputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].Inputs()
}

// OutputSize returns the last layer's neuron count, or 0 without layers.
func (n *Network) OutputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[len(n.layers)-1].Neurons()
}

// SetCostFunction sets the cost function used to report training error.
func (n *Network) SetCostFunction(f cost.Function) error {
	if !f.Valid() {
		return fmt.Errorf("%w: unknown cost function %v", ErrInvalidArgument, f)
	}
	n.costFunction = f
	return nil
}

// CostFunction returns the cost function.
func (n *Network) CostFunction() cost.Function { return n.costFunction }

// SetShuffleData enables or disables shuffling samples before every epoch.
func (n *Network) SetShuffleData(enable bool) { n.shuffleData = enable }

// ShuffleData reports whether samples are shuffled before every epoch.
func (n *Network) ShuffleData() bool { return n.shuffleData }

// SetParallelism sets how many goroutines EvaluateAll and Loss may use.
// Values below 2 run sequentially; 0 restores the CPU-count default.
func (n *Network) SetParallelism(workers int) {
	switch {
	case workers == 0:
		n.parallel = parallel.DefaultConfig()
	case workers < 2:
		n.parallel = parallel.Sequential()
	default:
		n.parallel = parallel.Config{Enabled: true, NumWorkers: workers, MinChunkSize: parallel.DefaultConfig().MinChunkSize}
	}
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	out := &Network{
		layers:       make([]*Layer, len(n.layers)),
		costFunction: n.costFunction,
		shuffleData:  n.shuffleData,
		parallel:     n.parallel,
	}
	for i, l := range n.layers {
		out.layers[i] = l.Clone()
	}
	return out
}

// String implements fmt.Stringer.
func (n *Network) String() string {
	return fmt.Sprintf("Network(layers=%v, cost=%v, shuffle=%t)", n.layers, n.costFunction, n.shuffleData)
}
