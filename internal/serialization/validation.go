package serialization

import (
	"fmt"
	"math"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/cost"
)

// Validation limits for resource protection.
const (
	MaxDocumentSize = 256 * 1024 * 1024 // 256MB - maximum document size
	MaxLayers       = 1024              // Maximum number of layers in a document
	MaxMatrixValues = 64 * 1024 * 1024  // Maximum number of values in a single matrix
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default, recommended).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks document structure and matrix sizes only.
	ValidationNormal
	// ValidationNone skips validation (dangerous! Use only with trusted input).
	ValidationNone
)

// ValidateDocument performs document validation at the given level.
func ValidateDocument(doc *Document, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if doc.Format != FormatMarker {
		return fmt.Errorf("%w: got %q", ErrInvalidMagic, doc.Format)
	}
	if doc.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.FormatVersion)
	}
	if len(doc.Layers) > MaxLayers {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyLayers, len(doc.Layers), MaxLayers)
	}

	for i := range doc.Layers {
		l := &doc.Layers[i]
		if err := ValidateMatrix(l.Weights, fmt.Sprintf("layers[%d].weights", i)); err != nil {
			return err
		}
		if err := ValidateMatrix(l.Biases, fmt.Sprintf("layers[%d].biases", i)); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if _, err := cost.Parse(doc.CostFunction); err != nil {
			return &ValidationError{Type: "unknown_cost", Field: "cost_function", Details: err.Error()}
		}
		if err := ValidateLayerShapes(doc.Layers); err != nil {
			return err
		}
		for i, l := range doc.Layers {
			if _, err := ResolveActivation(l.Activation); err != nil {
				return &ValidationError{
					Type:    "invalid_activation",
					Field:   fmt.Sprintf("layers[%d].activation", i),
					Details: err.Error(),
				}
			}
		}
	}

	return nil
}

// ValidateMatrix checks that a matrix spec is self-consistent.
func ValidateMatrix(m MatrixSpec, field string) error {
	if m.Rows < 0 || m.Cols < 0 {
		return &ValidationError{
			Type:    "invalid_shape",
			Field:   field,
			Details: fmt.Sprintf("rows=%d, cols=%d (negative values not allowed)", m.Rows, m.Cols),
		}
	}
	// Guard the product against overflow before comparing lengths.
	if m.Cols > 0 && m.Rows > MaxMatrixValues/m.Cols {
		return &ValidationError{
			Type:    "matrix_too_large",
			Field:   field,
			Details: fmt.Sprintf("%dx%d exceeds %d values", m.Rows, m.Cols, MaxMatrixValues),
		}
	}
	if len(m.Data) != m.Rows*m.Cols {
		return &ValidationError{
			Type:    "data_length",
			Field:   field,
			Details: fmt.Sprintf("%d values for a %dx%d matrix", len(m.Data), m.Rows, m.Cols),
		}
	}
	return nil
}

// ValidateLayerShapes checks bias shapes and that every layer's input count
// equals the previous layer's neuron count.
func ValidateLayerShapes(layers []LayerSpec) error {
	for i, l := range layers {
		if l.Biases.Rows != 1 || l.Biases.Cols != l.Weights.Rows {
			return &ValidationError{
				Type:  "shape_mismatch",
				Field: fmt.Sprintf("layers[%d].biases", i),
				Details: fmt.Sprintf("biases are %dx%d, want 1x%d",
					l.Biases.Rows, l.Biases.Cols, l.Weights.Rows),
			}
		}
		if i > 0 && l.Weights.Cols != layers[i-1].Weights.Rows {
			return &ValidationError{
				Type:  "shape_mismatch",
				Field: fmt.Sprintf("layers[%d].weights", i),
				Details: fmt.Sprintf("layer expects %d inputs, previous layer has %d neurons",
					l.Weights.Cols, layers[i-1].Weights.Rows),
			}
		}
	}
	return nil
}

// ResolveActivation maps a spec onto the activation registry. Parameters are
// only accepted for kinds that take them.
func ResolveActivation(spec ActivationSpec) (activation.Activation, error) {
	a, err := activation.Parse(spec.Name)
	if err != nil {
		return activation.Activation{}, err
	}
	if spec.Alpha == nil {
		return a, nil
	}
	if !a.HasParams() {
		return activation.Activation{}, fmt.Errorf("%s takes no parameters", spec.Name)
	}
	if math.IsNaN(*spec.Alpha) || math.IsInf(*spec.Alpha, 0) {
		return activation.Activation{}, fmt.Errorf("%s slope must be finite", spec.Name)
	}
	a.Alpha = *spec.Alpha
	return a, nil
}

// DescribeActivation is the inverse of ResolveActivation.
func DescribeActivation(a activation.Activation) ActivationSpec {
	spec := ActivationSpec{Name: a.Name()}
	if a.HasParams() {
		alpha := a.Alpha
		spec.Alpha = &alpha
	}
	return spec
}
