package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/nn"
)

func TestSummarize(t *testing.T) {
	rng := rand.New(rand.NewSource(9)) //nolint:gosec // Test determinism
	net := nn.New()
	require.NoError(t, net.AddLayer(nn.NewLayer(1, 2, activation.NewSigmoid(), rng)))

	data := []nn.Sample{nn.NewSample([]float64{1, 0}, []float64{1})}
	report, err := net.Train(data, nn.TrainConfig{Epochs: 3, LearningRate: 0.1, Rand: rng})
	require.NoError(t, err)

	line := summarize(net, data, report)
	assert.Contains(t, line, "done epochs=3 loss=")
	assert.Contains(t, line, "accuracy=")
	assert.NotContains(t, line, "unavailable")

	// Accuracy needs targets; the loss is still reported.
	line = summarize(net, []nn.Sample{nn.NewPredictSample([]float64{1, 0})}, report)
	assert.Contains(t, line, "done epochs=3 loss=")
	assert.Contains(t, line, "accuracy=unavailable")
	assert.Contains(t, line, "no target outputs")
}
