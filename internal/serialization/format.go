package serialization

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Format constants.
const (
	FormatMarker  = "juggernaut"
	FormatVersion = 1 // v1: layers + cost + shuffle flag, SHA-256 checksum
)

// Document is the persisted form of a network.
type Document struct {
	Format        string      `json:"format"`         // Always FormatMarker
	FormatVersion int         `json:"format_version"` // Version of the document schema
	CostFunction  string      `json:"cost_function"`  // Cost registry name
	ShuffleData   bool        `json:"shuffle_data"`   // Shuffle samples every epoch
	Layers        []LayerSpec `json:"layers"`         // Layers in forward order
	Checksum      string      `json:"checksum"`       // Hex SHA-256, see LayersChecksum
}

// LayerSpec describes one layer.
type LayerSpec struct {
	Weights    MatrixSpec     `json:"weights"`    // neurons × inputs
	Biases     MatrixSpec     `json:"biases"`     // 1 × neurons
	Activation ActivationSpec `json:"activation"` // Registry name plus parameters
}

// MatrixSpec is a row-major matrix.
type MatrixSpec struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// ActivationSpec names an activation and carries its parameters.
type ActivationSpec struct {
	Name  string   `json:"name"`
	Alpha *float64 `json:"alpha,omitempty"` // LeakyRectifiedLinearUnit slope
}

// SampleDocument is the persisted form of a sample. Outputs is null for
// prediction-only samples and an array (possibly empty) otherwise.
type SampleDocument struct {
	Inputs  []float64 `json:"inputs"`
	Outputs []float64 `json:"outputs"`
}

// ReaderOptions configures Decode.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// NewDocument fills in the format marker, version and checksum.
func NewDocument(costFunction string, shuffle bool, layers []LayerSpec) *Document {
	return &Document{
		Format:        FormatMarker,
		FormatVersion: FormatVersion,
		CostFunction:  costFunction,
		ShuffleData:   shuffle,
		Layers:        layers,
		Checksum:      LayersChecksum(layers),
	}
}

// Encode marshals a document. It fails if any value is NaN or infinite.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode parses and strictly validates a document.
func Decode(data []byte) (*Document, error) {
	return DecodeWithOptions(data, ReaderOptions{ValidationLevel: ValidationStrict})
}

// DecodeWithOptions parses a document with custom validation options.
func DecodeWithOptions(data []byte, opts ReaderOptions) (*Document, error) {
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes > %d", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}

	var doc Document
	if err := strictUnmarshal(data, &doc); err != nil {
		return nil, err
	}

	if err := ValidateDocument(&doc, opts.ValidationLevel); err != nil {
		return nil, err
	}
	if !opts.SkipChecksumValidation && opts.ValidationLevel != ValidationNone {
		if err := ValidateChecksum(&doc); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

// EncodeSample marshals a sample document.
func EncodeSample(doc *SampleDocument) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sample: %w", err)
	}
	return data, nil
}

// DecodeSample parses a sample document.
func DecodeSample(data []byte) (*SampleDocument, error) {
	var doc SampleDocument
	if err := strictUnmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Inputs == nil {
		return nil, &ValidationError{
			Type:    "invalid_sample",
			Field:   "inputs",
			Details: "missing inputs",
		}
	}
	return &doc, nil
}

// strictUnmarshal rejects unknown fields and trailing data.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return nil
}
