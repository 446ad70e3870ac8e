package nn

import (
	"fmt"

	"github.com/born-ml/juggernaut/internal/cost"
	"github.com/born-ml/juggernaut/internal/matrix"
	"github.com/born-ml/juggernaut/internal/serialization"
)

// ToText returns the network's text document.
//
// It fails only if a parameter is NaN or infinite, which happens when training
// diverged.
func (n *Network) ToText() (string, error) {
	data, err := n.MarshalText()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromText rebuilds a network from a document produced by ToText.
//
// Every failure matches ErrParse; no partially built network is returned.
func FromText(text string) (*Network, error) {
	return FromTextWithOptions(text, serialization.ReaderOptions{ValidationLevel: serialization.ValidationStrict})
}

// FromTextWithOptions is FromText with custom document validation, e.g. to load
// a hand-edited network whose checksum no longer matches.
//
// Relaxed levels only skip document-level checks. Layer shapes, activation and
// cost names are still enforced while the network is rebuilt.
func FromTextWithOptions(text string, opts serialization.ReaderOptions) (*Network, error) {
	doc, err := serialization.DecodeWithOptions([]byte(text), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load network: %w", err)
	}
	net, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to load network: %w: %w", ErrParse, err)
	}
	return net, nil
}

// MarshalText implements encoding.TextMarshaler.
func (n *Network) MarshalText() ([]byte, error) {
	return serialization.Encode(n.document())
}

// UnmarshalText implements encoding.TextUnmarshaler. n is left untouched on error.
func (n *Network) UnmarshalText(text []byte) error {
	loaded, err := FromText(string(text))
	if err != nil {
		return err
	}
	*n = *loaded
	return nil
}

func (n *Network) document() *serialization.Document {
	layers := make([]serialization.LayerSpec, len(n.layers))
	for i, l := range n.layers {
		layers[i] = serialization.LayerSpec{
			Weights:    matrixSpec(l.weights),
			Biases:     matrixSpec(l.biases),
			Activation: serialization.DescribeActivation(l.activation),
		}
	}
	return serialization.NewDocument(n.costFunction.Name(), n.shuffleData, layers)
}

func fromDocument(doc *serialization.Document) (*Network, error) {
	costFn, err := cost.Parse(doc.CostFunction)
	if err != nil {
		return nil, err
	}

	net := New()
	net.costFunction = costFn
	net.shuffleData = doc.ShuffleData

	for i, spec := range doc.Layers {
		weights, err := matrix.New(spec.Weights.Rows, spec.Weights.Cols, spec.Weights.Data)
		if err != nil {
			return nil, fmt.Errorf("layer %d weights: %w", i, err)
		}
		biases, err := matrix.New(spec.Biases.Rows, spec.Biases.Cols, spec.Biases.Data)
		if err != nil {
			return nil, fmt.Errorf("layer %d biases: %w", i, err)
		}
		act, err := serialization.ResolveActivation(spec.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d activation: %w", i, err)
		}
		layer, err := NewLayerFromMatrices(weights, biases, act)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if err := net.AddLayer(layer); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return net, nil
}

func matrixSpec(m *matrix.Matrix) serialization.MatrixSpec {
	return serialization.MatrixSpec{Rows: m.Rows(), Cols: m.Cols(), Data: m.Data()}
}
