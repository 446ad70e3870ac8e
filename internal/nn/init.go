package nn

import (
	"math"
	"math/rand"
	"time"

	"github.com/born-ml/juggernaut/internal/matrix"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes a rows×cols matrix with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers.
//
// Parameters:
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - rng: Random source; nil uses a freshly seeded generator
func Xavier(fanIn, fanOut int, rng *rand.Rand) *matrix.Matrix {
	if rng == nil {
		rng = newRand()
	}

	// Xavier/Glorot bound: sqrt(6 / (fan_in + fan_out))
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	// Weights are stored neurons × inputs, i.e. fanOut × fanIn.
	return matrix.Generate(fanOut, fanIn, func(_, _ int) float64 {
		return (rng.Float64()*2.0 - 1.0) * bound
	})
}

// Zeros creates a rows×cols matrix filled with zeros.
//
// This is used for bias initialization.
func Zeros(rows, cols int) *matrix.Matrix {
	return matrix.Zero(rows, cols)
}

// newRand returns a generator seeded from the clock.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // Weight init and shuffling are not security-critical
}
