// Package serialization defines the persisted text form of a juggernaut network.
//
// The text form is a single JSON document:
//
//	{
//	  "format": "juggernaut",
//	  "format_version": 1,
//	  "cost_function": "SquaredError",
//	  "shuffle_data": true,
//	  "layers": [
//	    {
//	      "weights":    {"rows": 3, "cols": 2, "data": [...]},
//	      "biases":     {"rows": 1, "cols": 3, "data": [...]},
//	      "activation": {"name": "LeakyRectifiedLinearUnit", "alpha": 0.01}
//	    }
//	  ],
//	  "checksum": "<hex SHA-256>"
//	}
//
// The checksum covers the little-endian IEEE-754 bits of every weight then every
// bias, layer by layer. Activation and cost names are resolved through the fixed
// registries of the activation and cost packages; nothing else is ever loaded.
//
// Every decoding failure matches ErrParse with errors.Is, and no partially decoded
// document is returned.
//
// Example usage:
//
//	text, err := serialization.Encode(doc)
//	...
//	doc, err := serialization.Decode(text)
//	if errors.Is(err, serialization.ErrParse) {
//	    // malformed or tampered input
//	}
package serialization
