package nn

import (
	"errors"

	"github.com/born-ml/juggernaut/internal/matrix"
	"github.com/born-ml/juggernaut/internal/serialization"
)

// Common errors.
var (
	// ErrShapeMismatch is the configuration error returned when a layer's input
	// count does not match the previous layer's neuron count.
	ErrShapeMismatch = errors.New("layer shape mismatch")
	// ErrInvalidState is returned when forward, evaluate or train run on a
	// network without layers.
	ErrInvalidState = errors.New("invalid network state")
	// ErrMissingTarget is returned when a prediction-only sample reaches a path
	// that needs target outputs.
	ErrMissingTarget = errors.New("sample has no target outputs")
	// ErrInvalidArgument reports bad training parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	// ErrParse is serialization.ErrParse.
	ErrParse = serialization.ErrParse
)
