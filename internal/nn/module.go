// Package nn implements feed-forward network evaluation for ffnet.
//
// This package provides the building blocks for inference-only networks:
//   - Layer interface: Common contract of the input placeholder and dense layers
//   - Input: Parameterless placeholder carrying the network's input size
//   - Dense: Fully connected layer, activation(W·x + b)
//   - Activations: ReLU, Identity, Sigmoid, Tanh
//   - Initializers: Uniform, Xavier
//   - Network: Flat ordered collection of layers with Predict
//
// Parameters are gonum matrices and vectors. Networks and layers are
// immutable once built, so a single network may serve Predict calls from
// any number of goroutines.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is the common interface of every network stage.
//
// There are two implementations:
//   - *Input: the leading placeholder, returns its input unchanged
//   - *Dense: an affine transform followed by an activation
//
// Code that needs parameters should type-switch on *Dense rather than
// probe for absent weights.
type Layer interface {
	// InputSize returns the length of the vector Forward accepts.
	InputSize() int

	// OutputSize returns the length of the vector Forward produces.
	OutputSize() int

	// Forward computes the layer output for a single input vector.
	//
	// Panics if x.Len() != InputSize(). Network.Predict checks the input
	// before delegating, so callers going through a Network never panic.
	Forward(x mat.Vector) *mat.VecDense
}

var (
	_ Layer = (*Input)(nil)
	_ Layer = (*Dense)(nil)
)
