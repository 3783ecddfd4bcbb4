package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation is an element-wise nonlinearity applied after a layer's
// affine transform.
//
// Implementations must be stateless: a single value is shared by every
// layer that uses it and may be called from many goroutines.
type Activation interface {
	// Name returns the lookup name of the activation (e.g., "relu").
	Name() string

	// Apply returns the activation of a single pre-activation value.
	Apply(x float64) float64
}

// ReLU is the Rectified Linear Unit activation.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// ReLU is the default activation for every dense layer.
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Apply returns max(0, x).
func (ReLU) Apply(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// Identity passes values through unchanged.
//
// Use it for a linear output layer.
type Identity struct{}

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Apply returns x.
func (Identity) Apply(x float64) float64 { return x }

// Sigmoid is the logistic activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Apply returns 1 / (1 + exp(-x)).
func (Sigmoid) Apply(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Tanh is the hyperbolic tangent activation.
//
// Squashes values to the range (-1, 1).
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Apply returns tanh(x).
func (Tanh) Apply(x float64) float64 { return math.Tanh(x) }

var activationLookup = map[string]Activation{
	"relu":     ReLU{},
	"identity": Identity{},
	"linear":   Identity{},
	"none":     Identity{},
	"sigmoid":  Sigmoid{},
	"tanh":     Tanh{},
}

// ActivationByName returns the activation registered under name.
//
// Lookup is case-insensitive. "linear" and "none" are aliases for
// "identity".
func ActivationByName(name string) (Activation, error) {
	act, ok := activationLookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown activation %q: %w", name, ErrInvalidSpec)
	}
	return act, nil
}
