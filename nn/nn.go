// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
)

// Errors returned by construction and Predict.
var (
	ErrInvalidSpec       = nn.ErrInvalidSpec
	ErrShapeMismatch     = nn.ErrShapeMismatch
	ErrDimensionMismatch = nn.ErrDimensionMismatch
)

// ShapeError describes a shape check failure with expected and actual sizes.
type ShapeError = nn.ShapeError

// Network

// Network is a feed-forward network: an input placeholder followed by dense layers.
type Network = nn.Network

// Option configures network construction.
type Option = nn.Option

// New builds a network with randomly initialized parameters.
//
// dims[0] is the input size; each following entry adds a dense layer.
//
// Example:
//
//	net, err := nn.New([]int{2, 3, 1}, nn.WithSeed(7))
func New(dims []int, opts ...Option) (*Network, error) {
	return nn.New(dims, opts...)
}

// FromParameters builds a network from explicit weight/bias pairs.
func FromParameters(weights []mat.Matrix, biases []mat.Vector, opts ...Option) (*Network, error) {
	return nn.FromParameters(weights, biases, opts...)
}

// Compose builds a network from existing dense layers.
func Compose(inputSize int, layers ...*Dense) (*Network, error) {
	return nn.Compose(inputSize, layers...)
}

// Equal reports whether two networks are structurally identical.
func Equal(a, b *Network) bool {
	return nn.Equal(a, b)
}

// EqualApprox is Equal with parameters compared within tol.
func EqualApprox(a, b *Network, tol float64) bool {
	return nn.EqualApprox(a, b, tol)
}

// WithActivation sets the activation of every dense layer. Default: ReLU.
func WithActivation(act Activation) Option {
	return nn.WithActivation(act)
}

// WithOutputActivation sets the activation of the last dense layer.
func WithOutputActivation(act Activation) Option {
	return nn.WithOutputActivation(act)
}

// WithInitializer sets the parameter initializer. Default: DefaultInit.
func WithInitializer(init Initializer) Option {
	return nn.WithInitializer(init)
}

// WithSource sets the random source used for initialization.
func WithSource(src rand.Source) Option {
	return nn.WithSource(src)
}

// WithSeed initializes parameters from a new source with the given seed.
func WithSeed(seed uint64) Option {
	return nn.WithSeed(seed)
}

// Layers

// Layer is the common interface of Input and Dense.
type Layer = nn.Layer

// Input is the parameterless placeholder at the head of a network.
type Input = nn.Input

// NewInput creates an input placeholder for vectors of the given length.
func NewInput(size int) (*Input, error) {
	return nn.NewInput(size)
}

// Dense is a fully connected layer: activation(W·x + b).
type Dense = nn.Dense

// NewDense creates a Dense layer from explicit parameters.
//
// Example:
//
//	w := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
//	b := mat.NewVecDense(2, []float64{1, 0})
//	layer, err := nn.NewDense(w, b, nn.ReLU{})
func NewDense(weights mat.Matrix, biases mat.Vector, act Activation) (*Dense, error) {
	return nn.NewDense(weights, biases, act)
}

// NewRandomDense creates a Dense layer with freshly initialized parameters.
func NewRandomDense(inFeatures, outFeatures int, act Activation, init Initializer, src rand.Source) (*Dense, error) {
	return nn.NewRandomDense(inFeatures, outFeatures, act, init, src)
}

// Parameter is a named, read-only view of a layer parameter.
type Parameter = nn.Parameter

// Activations

// Activation is an element-wise nonlinearity.
type Activation = nn.Activation

// ReLU applies max(0, x).
type ReLU = nn.ReLU

// Identity passes values through unchanged.
type Identity = nn.Identity

// Sigmoid applies 1 / (1 + exp(-x)).
type Sigmoid = nn.Sigmoid

// Tanh applies tanh(x).
type Tanh = nn.Tanh

// ActivationByName returns the activation registered under name.
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Initialization

// Initializer fills freshly allocated layer parameters.
type Initializer = nn.Initializer

// Uniform draws every weight and bias from U[Min, Max).
type Uniform = nn.Uniform

// Xavier draws weights from the Glorot uniform range and zeroes biases.
type Xavier = nn.Xavier

// DefaultInit is Uniform{Min: -0.01, Max: 0.01}.
var DefaultInit = nn.DefaultInit
