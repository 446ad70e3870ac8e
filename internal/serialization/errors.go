package serialization

import (
	"errors"
	"fmt"
)

// Common errors. All of them wrap ErrParse.
var (
	ErrParse              = errors.New("parse error")
	ErrChecksumMismatch   = fmt.Errorf("%w: checksum mismatch: document may be corrupted", ErrParse)
	ErrInvalidMagic       = fmt.Errorf("%w: invalid format marker", ErrParse)
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported format version", ErrParse)
	ErrTooManyLayers      = fmt.Errorf("%w: too many layers in document", ErrParse)
	ErrDocumentTooLarge   = fmt.Errorf("%w: document exceeds maximum size", ErrParse)
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "shape_mismatch", "unknown_activation")
	Field   string // Document path involved (e.g., "layers[1].biases")
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap makes every ValidationError match ErrParse.
func (e *ValidationError) Unwrap() error {
	return ErrParse
}
