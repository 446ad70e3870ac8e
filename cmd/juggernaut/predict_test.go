package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/nn"
)

func TestLoadNetwork_SkipChecksum(t *testing.T) {
	rng := rand.New(rand.NewSource(5)) //nolint:gosec // Test determinism
	net := nn.New()
	require.NoError(t, net.AddLayer(nn.NewLayer(2, 3, activation.NewSigmoid(), rng)))

	text, err := net.ToText()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "model.json")
	tampered := strings.Replace(text, `"checksum":"`, `"checksum":"ff`, 1)
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o600))

	_, err = loadNetwork(path, false)
	require.ErrorIs(t, err, nn.ErrParse)

	got, err := loadNetwork(path, true)
	require.NoError(t, err)
	assert.Equal(t, 3, got.InputSize())
	assert.True(t, net.Layers()[0].Weights().Equal(got.Layers()[0].Weights()))

	_, err = loadNetwork(filepath.Join(t.TempDir(), "missing.json"), true)
	assert.ErrorContains(t, err, "failed to read model")
}
