package serialization

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
)

// LayersChecksum returns the hex SHA-256 over every weight then bias value of
// each layer, in order, as little-endian IEEE-754 bits.
func LayersChecksum(layers []LayerSpec) string {
	h := sha256.New()
	for _, l := range layers {
		writeFloats(h, l.Weights.Data)
		writeFloats(h, l.Biases.Data)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateChecksum compares the document checksum with the one recomputed from
// its layers. Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(doc *Document) error {
	if doc.Checksum != LayersChecksum(doc.Layers) {
		return ErrChecksumMismatch
	}
	return nil
}

func writeFloats(h hash.Hash, values []float64) {
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:]) // hash.Hash never returns an error
	}
}
