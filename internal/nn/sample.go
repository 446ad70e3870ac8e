package nn

import (
	"fmt"

	"github.com/born-ml/juggernaut/internal/matrix"
	"github.com/born-ml/juggernaut/internal/serialization"
)

// Sample is one input vector with an optional target vector.
//
// Training samples are built with NewSample, prediction-only samples with
// NewPredictSample. Samples are immutable; accessors return copies.
type Sample struct {
	inputs  []float64
	outputs []float64 // nil for prediction samples
}

// NewSample creates a training sample. Both slices are copied.
func NewSample(inputs, outputs []float64) Sample {
	return Sample{
		inputs:  append(make([]float64, 0, len(inputs)), inputs...),
		outputs: append(make([]float64, 0, len(outputs)), outputs...),
	}
}

// NewPredictSample creates a sample without targets, for inference only.
func NewPredictSample(inputs []float64) Sample {
	return Sample{inputs: append(make([]float64, 0, len(inputs)), inputs...)}
}

// Inputs returns a copy of the input vector.
func (s Sample) Inputs() []float64 {
	return append(make([]float64, 0, len(s.inputs)), s.inputs...)
}

// Outputs returns a copy of the target vector, or nil for prediction samples.
func (s Sample) Outputs() []float64 {
	if s.outputs == nil {
		return nil
	}
	return append(make([]float64, 0, len(s.outputs)), s.outputs...)
}

// HasTarget reports whether the sample carries target outputs.
func (s Sample) HasTarget() bool { return s.outputs != nil }

// InputsCount returns the number of inputs.
func (s Sample) InputsCount() int { return len(s.inputs) }

// OutputsCount returns the number of target outputs (0 for prediction samples).
func (s Sample) OutputsCount() int { return len(s.outputs) }

// inputMatrix returns the inputs as a 1×n row.
func (s Sample) inputMatrix() *matrix.Matrix {
	return matrix.RowVector(s.inputs)
}

// targetMatrix returns the targets as a 1×n row.
func (s Sample) targetMatrix() (*matrix.Matrix, error) {
	if s.outputs == nil {
		return nil, ErrMissingTarget
	}
	return matrix.RowVector(s.outputs), nil
}

// ToText returns the sample's text document.
func (s Sample) ToText() (string, error) {
	data, err := s.MarshalText()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SampleFromText parses a document produced by ToText.
func SampleFromText(text string) (Sample, error) {
	var s Sample
	if err := s.UnmarshalText([]byte(text)); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Sample) MarshalText() ([]byte, error) {
	return serialization.EncodeSample(&serialization.SampleDocument{
		Inputs:  s.Inputs(),
		Outputs: s.Outputs(),
	})
}

// UnmarshalText implements encoding.TextUnmarshaler. s is left untouched on error.
func (s *Sample) UnmarshalText(text []byte) error {
	doc, err := serialization.DecodeSample(text)
	if err != nil {
		return fmt.Errorf("failed to parse sample: %w", err)
	}
	if doc.Outputs == nil {
		*s = NewPredictSample(doc.Inputs)
	} else {
		*s = NewSample(doc.Inputs, doc.Outputs)
	}
	return nil
}
