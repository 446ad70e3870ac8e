package serialization

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	alpha := 0.05
	leaky := testLayer(2, 3, "LeakyRectifiedLinearUnit")
	leaky.Activation.Alpha = &alpha
	doc := NewDocument("CrossEntropy", false, []LayerSpec{testLayer(3, 4, "HyperbolicTangent"), leaky})
	doc.Layers[0].Weights.Data[0] = 1.0 / 3.0 // needs all 17 significant digits

	data, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestEncode_NonFinite(t *testing.T) {
	doc := NewDocument("SquaredError", true, []LayerSpec{testLayer(1, 1, "Sigmoid")})
	doc.Layers[0].Weights.Data[0] = math.NaN()

	_, err := Encode(doc)
	require.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	valid, err := Encode(NewDocument("SquaredError", true, []LayerSpec{testLayer(1, 2, "Sigmoid")}))
	require.NoError(t, err)

	inputs := map[string]string{
		"empty":          "",
		"not json":       "layers: []",
		"truncated":      string(valid[:len(valid)/2]),
		"trailing":       string(valid) + "{}",
		"unknown field":  strings.Replace(string(valid), `"shuffle_data"`, `"shuffle":true,"shuffle_data"`, 1),
		"wrong type":     strings.Replace(string(valid), `"format_version":1`, `"format_version":"1"`, 1),
		"tampered value": strings.Replace(string(valid), `"data":[0]`, `"data":[1]`, 1),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode([]byte(in))
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestDecode_SkipChecksum(t *testing.T) {
	doc := NewDocument("SquaredError", true, []LayerSpec{testLayer(1, 2, "Sigmoid")})
	doc.Checksum = "stale"
	data, err := Encode(doc)
	require.NoError(t, err)

	_, err = Decode(data)
	require.ErrorIs(t, err, ErrChecksumMismatch)

	got, err := DecodeWithOptions(data, ReaderOptions{SkipChecksumValidation: true})
	require.NoError(t, err)
	assert.Equal(t, "stale", got.Checksum)
}

func TestSampleDocument(t *testing.T) {
	train := &SampleDocument{Inputs: []float64{1, 0}, Outputs: []float64{1}}
	data, err := EncodeSample(train)
	require.NoError(t, err)
	got, err := DecodeSample(data)
	require.NoError(t, err)
	assert.Equal(t, train, got)

	predict := &SampleDocument{Inputs: []float64{1, 0}}
	data, err = EncodeSample(predict)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"outputs":null`)
	got, err = DecodeSample(data)
	require.NoError(t, err)
	assert.Nil(t, got.Outputs)

	_, err = DecodeSample([]byte(`{"outputs":[1]}`))
	require.ErrorIs(t, err, ErrParse)

	_, err = DecodeSample([]byte(`{"inputs":[1],"extra":2}`))
	require.ErrorIs(t, err, ErrParse)
}
