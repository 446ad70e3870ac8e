package serialization

import (
	"errors"
	"testing"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLayer builds a neurons×inputs layer spec with deterministic values.
func testLayer(neurons, inputs int, act string) LayerSpec {
	w := make([]float64, neurons*inputs)
	for i := range w {
		w[i] = float64(i)*0.1 - 0.3
	}
	return LayerSpec{
		Weights:    MatrixSpec{Rows: neurons, Cols: inputs, Data: w},
		Biases:     MatrixSpec{Rows: 1, Cols: neurons, Data: make([]float64, neurons)},
		Activation: ActivationSpec{Name: act},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	doc := NewDocument("CrossEntropy", false, []LayerSpec{
		testLayer(3, 2, "Sigmoid"),
		testLayer(2, 3, "SoftMax"),
	})
	require.NoError(t, ValidateDocument(doc, ValidationStrict))

	empty := NewDocument("SquaredError", true, nil)
	require.NoError(t, ValidateDocument(empty, ValidationStrict))
}

func TestValidateDocument_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Document)
		target error
		typ    string
	}{
		{
			name:   "wrong marker",
			mutate: func(d *Document) { d.Format = "onnx" },
			target: ErrInvalidMagic,
		},
		{
			name:   "future version",
			mutate: func(d *Document) { d.FormatVersion = 99 },
			target: ErrUnsupportedVersion,
		},
		{
			name:   "unknown cost",
			mutate: func(d *Document) { d.CostFunction = "Hinge" },
			typ:    "unknown_cost",
		},
		{
			name:   "unknown activation",
			mutate: func(d *Document) { d.Layers[1].Activation.Name = "Swish" },
			typ:    "invalid_activation",
		},
		{
			name: "alpha on sigmoid",
			mutate: func(d *Document) {
				a := 0.5
				d.Layers[0].Activation.Alpha = &a
			},
			typ: "invalid_activation",
		},
		{
			name:   "short weights",
			mutate: func(d *Document) { d.Layers[0].Weights.Data = d.Layers[0].Weights.Data[:2] },
			typ:    "data_length",
		},
		{
			name:   "negative rows",
			mutate: func(d *Document) { d.Layers[0].Biases.Rows = -1 },
			typ:    "invalid_shape",
		},
		{
			name: "bias width",
			mutate: func(d *Document) {
				d.Layers[1].Biases = MatrixSpec{Rows: 1, Cols: 1, Data: []float64{0}}
			},
			typ: "shape_mismatch",
		},
		{
			name:   "broken chain",
			mutate: func(d *Document) { d.Layers[1] = testLayer(2, 4, "Sigmoid") },
			typ:    "shape_mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("SquaredError", true, []LayerSpec{
				testLayer(3, 2, "Sigmoid"),
				testLayer(2, 3, "Sigmoid"),
			})
			tt.mutate(doc)

			err := ValidateDocument(doc, ValidationStrict)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.typ != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
				assert.Equal(t, tt.typ, verr.Type)
			}
		})
	}
}

func TestValidateDocument_Levels(t *testing.T) {
	doc := NewDocument("Hinge", true, []LayerSpec{testLayer(3, 2, "Swish")})

	require.Error(t, ValidateDocument(doc, ValidationStrict))
	require.NoError(t, ValidateDocument(doc, ValidationNormal))

	doc.Format = "garbage"
	require.NoError(t, ValidateDocument(doc, ValidationNone))
}

func TestValidateMatrix_Overflow(t *testing.T) {
	err := ValidateMatrix(MatrixSpec{Rows: MaxMatrixValues, Cols: 2}, "w")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "matrix_too_large", verr.Type)
}

func TestResolveActivation(t *testing.T) {
	alpha := 0.2
	a, err := ResolveActivation(ActivationSpec{Name: "LeakyRectifiedLinearUnit", Alpha: &alpha})
	require.NoError(t, err)
	assert.Equal(t, 0.2, a.Alpha)

	spec := DescribeActivation(a)
	require.NotNil(t, spec.Alpha)
	assert.Equal(t, 0.2, *spec.Alpha)

	assert.Nil(t, DescribeActivation(mustResolve(t, "Sigmoid")).Alpha)
}

func mustResolve(t *testing.T, name string) activation.Activation {
	t.Helper()
	a, err := ResolveActivation(ActivationSpec{Name: name})
	require.NoError(t, err)
	return a
}
