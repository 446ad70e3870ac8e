package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/cost"
)

const xorConfig = `
layers:
  - neurons: 3
    inputs: 2
    activation: LeakyRectifiedLinearUnit
    alpha: 0.2
  - neurons: 1
    activation: Sigmoid
cost: CrossEntropy
shuffle: false
epochs: 500
learning_rate: 0.3
seed: 7
samples: xor.jsonl
output: xor.json
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, xorConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Layers, 2)
	assert.Equal(t, 3, cfg.Layers[0].Neurons)
	require.NotNil(t, cfg.Layers[0].Alpha)
	assert.Equal(t, 0.2, *cfg.Layers[0].Alpha)
	assert.Equal(t, "CrossEntropy", cfg.Cost)
	assert.False(t, cfg.ShuffleData())
	assert.Equal(t, 500, cfg.Epochs)
	assert.Equal(t, 0.3, cfg.LearningRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, DefaultLogEvery, cfg.LogEvery)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open config")

	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "empty config")

	_, err = Load(writeConfig(t, xorConfig+"momentum: 0.9\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"no layers", func(string) string { return "epochs: 1\nlearning_rate: 0.1\nsamples: x\n" }, "at least one layer"},
		{"bad activation", func(s string) string { return strings.Replace(s, "Sigmoid", "Swish", 1) }, "layers[1]"},
		{"bad cost", func(s string) string { return strings.Replace(s, "CrossEntropy", "Hinge", 1) }, "unknown cost function"},
		{"zero epochs", func(s string) string { return strings.Replace(s, "epochs: 500", "epochs: 0", 1) }, "epochs"},
		{"zero learning rate", func(s string) string { return strings.Replace(s, "learning_rate: 0.3", "learning_rate: 0", 1) }, "learning_rate"},
		{"no samples", func(s string) string { return strings.Replace(s, "samples: xor.jsonl", "", 1) }, "samples"},
		{"first layer inputs", func(s string) string { return strings.Replace(s, "inputs: 2", "inputs: 0", 1) }, "layers[0]: inputs"},
		{"chain mismatch", func(s string) string {
			return strings.Replace(s, "activation: Sigmoid", "activation: Sigmoid\n    inputs: 4", 1)
		}, "must match previous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(strings.NewReader(tt.mutate(xorConfig)))
			require.NoError(t, err)
			err = cfg.Validate()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_AlphaOnlyForLeaky(t *testing.T) {
	body := strings.Replace(xorConfig, "activation: Sigmoid", "activation: Sigmoid\n    alpha: 0.1", 1)
	cfg, err := Parse(strings.NewReader(body))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "takes no alpha")
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := Parse(strings.NewReader(xorConfig))
	require.NoError(t, err)

	cfg.ApplyOverrides(Overrides{Epochs: 10, Output: "other.json"})
	assert.Equal(t, 10, cfg.Epochs)
	assert.Equal(t, 0.3, cfg.LearningRate)
	assert.Equal(t, "other.json", cfg.Output)
	assert.Equal(t, "xor.jsonl", cfg.Samples)
}

func TestNewNetwork(t *testing.T) {
	cfg, err := Parse(strings.NewReader(xorConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	net, err := cfg.NewNetwork(rand.New(rand.NewSource(1))) //nolint:gosec // Test determinism
	require.NoError(t, err)

	assert.Equal(t, 2, net.Len())
	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 1, net.OutputSize())
	assert.Equal(t, cost.CrossEntropy, net.CostFunction())
	assert.False(t, net.ShuffleData())
	assert.Equal(t, activation.NewLeakyRectifiedLinearUnit(0.2), net.Layers()[0].Activation())
	assert.Equal(t, activation.NewSigmoid(), net.Layers()[1].Activation())
}
