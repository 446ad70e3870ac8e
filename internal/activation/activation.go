// Package activation provides the closed set of elementwise activation functions
// supported by the engine.
//
// An Activation is a small value type: a Kind plus the parameters that kind needs
// (currently only the LeakyRectifiedLinearUnit slope). The set of kinds is fixed,
// which lets a stored network name its activations and have them resolved again
// through Parse without loading arbitrary code.
package activation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrUnknownActivation is returned by Parse for names outside the registry.
var ErrUnknownActivation = errors.New("unknown activation")

// DefaultLeakySlope is the negative-side slope of a default-constructed
// LeakyRectifiedLinearUnit.
const DefaultLeakySlope = 0.01

// Kind identifies an activation variant.
type Kind uint8

// Supported activation kinds.
const (
	Identity Kind = iota
	Sigmoid
	HyperbolicTangent
	SoftMax
	SoftPlus
	RectifiedLinearUnit
	LeakyRectifiedLinearUnit
)

var kindNames = [...]string{
	Identity:                 "Identity",
	Sigmoid:                  "Sigmoid",
	HyperbolicTangent:        "HyperbolicTangent",
	SoftMax:                  "SoftMax",
	SoftPlus:                 "SoftPlus",
	RectifiedLinearUnit:      "RectifiedLinearUnit",
	LeakyRectifiedLinearUnit: "LeakyRectifiedLinearUnit",
}

// String returns the stable serialization name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// Activation is an elementwise transform with a matching derivative.
// The zero value is Identity.
type Activation struct {
	Kind  Kind
	Alpha float64 // negative slope, LeakyRectifiedLinearUnit only
}

// NewIdentity returns f(x) = x.
func NewIdentity() Activation { return Activation{Kind: Identity} }

// NewSigmoid returns f(x) = 1 / (1 + e^-x).
func NewSigmoid() Activation { return Activation{Kind: Sigmoid} }

// NewHyperbolicTangent returns f(x) = tanh(x).
func NewHyperbolicTangent() Activation { return Activation{Kind: HyperbolicTangent} }

// NewSoftMax returns f(x)_i = e^x_i / Σ_j e^x_j.
func NewSoftMax() Activation { return Activation{Kind: SoftMax} }

// NewSoftPlus returns f(x) = ln(1 + e^x).
func NewSoftPlus() Activation { return Activation{Kind: SoftPlus} }

// NewRectifiedLinearUnit returns f(x) = max(0, x).
func NewRectifiedLinearUnit() Activation { return Activation{Kind: RectifiedLinearUnit} }

// NewLeakyRectifiedLinearUnit returns f(x) = x for x > 0 and alpha·x otherwise.
func NewLeakyRectifiedLinearUnit(alpha float64) Activation {
	return Activation{Kind: LeakyRectifiedLinearUnit, Alpha: alpha}
}

// Default returns the default-constructed activation for kind.
func Default(kind Kind) Activation {
	if kind == LeakyRectifiedLinearUnit {
		return NewLeakyRectifiedLinearUnit(DefaultLeakySlope)
	}
	return Activation{Kind: kind}
}

// Parse resolves a serialization name to its default-constructed activation.
func Parse(name string) (Activation, error) {
	for i, n := range kindNames {
		if n == name {
			return Default(Kind(i)), nil
		}
	}
	return Activation{}, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
}

// Name returns the stable serialization name.
func (a Activation) Name() string { return a.Kind.String() }

// HasParams reports whether the activation carries parameters that must be
// persisted alongside its name.
func (a Activation) HasParams() bool { return a.Kind == LeakyRectifiedLinearUnit }

// Valid reports whether the kind is part of the registry.
func (a Activation) Valid() bool { return int(a.Kind) < len(kindNames) }

// String implements fmt.Stringer.
func (a Activation) String() string {
	if a.HasParams() {
		return fmt.Sprintf("%s(%g)", a.Name(), a.Alpha)
	}
	return a.Name()
}

// Calc applies the forward transform to x and returns a new slice.
func (a Activation) Calc(x []float64) []float64 {
	out := make([]float64, len(x))
	switch a.Kind {
	case Identity:
		copy(out, x)
	case Sigmoid:
		for i, v := range x {
			out[i] = sigmoid(v)
		}
	case HyperbolicTangent:
		for i, v := range x {
			out[i] = math.Tanh(v)
		}
	case SoftMax:
		for i, v := range x {
			out[i] = math.Exp(v)
		}
		if sum := floats.Sum(out); len(out) > 0 {
			floats.Scale(1/sum, out)
		}
	case SoftPlus:
		for i, v := range x {
			out[i] = math.Log(1 + math.Exp(v))
		}
	case RectifiedLinearUnit:
		for i, v := range x {
			if v > 0 {
				out[i] = v
			}
		}
	case LeakyRectifiedLinearUnit:
		for i, v := range x {
			if v > 0 {
				out[i] = v
			} else {
				out[i] = a.Alpha * v
			}
		}
	default:
		panic(fmt.Sprintf("activation: unsupported kind %v", a.Kind))
	}
	return out
}

// Derivative returns the local gradient for each element of x.
//
// For Sigmoid, HyperbolicTangent and SoftMax, x is the activated output a and the
// derivative is expressed in terms of it (a·(1−a), 1−a², a·(1−a)). SoftMax uses the
// diagonal of its Jacobian. SoftPlus returns sigmoid(x) of whatever it is given;
// the trainer passes the activated output, so during training the value is
// sigmoid(softplus(z)) rather than sigmoid(z). The rectifiers test the sign of
// x, which is the same for pre-activation and activated values.
func (a Activation) Derivative(x []float64) []float64 {
	out := make([]float64, len(x))
	switch a.Kind {
	case Identity:
		for i := range out {
			out[i] = 1
		}
	case Sigmoid, SoftMax:
		for i, v := range x {
			out[i] = v * (1 - v)
		}
	case HyperbolicTangent:
		for i, v := range x {
			out[i] = 1 - v*v
		}
	case SoftPlus:
		for i, v := range x {
			out[i] = sigmoid(v)
		}
	case RectifiedLinearUnit:
		for i, v := range x {
			if v > 0 {
				out[i] = 1
			}
		}
	case LeakyRectifiedLinearUnit:
		for i, v := range x {
			if v > 0 {
				out[i] = 1
			} else {
				out[i] = a.Alpha
			}
		}
	default:
		panic(fmt.Sprintf("activation: unsupported kind %v", a.Kind))
	}
	return out
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
