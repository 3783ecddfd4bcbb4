package nn

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Input is the placeholder at the head of a network.
//
// It holds no parameters and performs no transformation.
type Input struct {
	size int
}

// NewInput creates an input placeholder for vectors of the given length.
func NewInput(size int) (*Input, error) {
	if size <= 0 {
		return nil, fmt.Errorf("input size must be positive, got %d: %w", size, ErrInvalidSpec)
	}
	return &Input{size: size}, nil
}

// Size returns the input length.
func (in *Input) Size() int { return in.size }

// InputSize returns the input length.
func (in *Input) InputSize() int { return in.size }

// OutputSize returns the input length.
func (in *Input) OutputSize() int { return in.size }

// Forward returns a copy of x.
func (in *Input) Forward(x mat.Vector) *mat.VecDense {
	if x.Len() != in.size {
		panic(fmt.Sprintf("Input.Forward: expected input of length %d, got %d", in.size, x.Len()))
	}
	return mat.VecDenseCopyOf(x)
}

// String returns a short description of the placeholder.
func (in *Input) String() string {
	return fmt.Sprintf("Input(%d)", in.size)
}

// Dense implements a fully connected layer.
//
// Performs the transformation: y = activation(W·x + b)
// where:
//   - x is the input vector with length in_features
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with length out_features
//   - y is the output vector with length out_features
//
// A Dense layer owns its parameters and never mutates them.
type Dense struct {
	inFeatures  int
	outFeatures int
	weights     *mat.Dense    // [out_features, in_features]
	biases      *mat.VecDense // [out_features]
	activation  Activation
}

// NewDense creates a Dense layer from explicit parameters.
//
// weights must be [out, in] and biases of length out. Both are copied,
// so later changes to the arguments do not affect the layer. A nil
// activation means Identity.
func NewDense(weights mat.Matrix, biases mat.Vector, act Activation) (*Dense, error) {
	if err := checkParams("NewDense", 0, weights, biases); err != nil {
		return nil, err
	}
	return newDense(weights, biases, act), nil
}

// NewRandomDense creates a Dense layer with freshly initialized parameters.
//
// Every random draw comes from src. A nil init means DefaultInit; a nil
// src means a private source seeded from the shared generator.
func NewRandomDense(inFeatures, outFeatures int, act Activation, init Initializer, src rand.Source) (*Dense, error) {
	if inFeatures <= 0 || outFeatures <= 0 {
		return nil, fmt.Errorf("layer sizes must be positive, got %d -> %d: %w",
			inFeatures, outFeatures, ErrInvalidSpec)
	}
	if init == nil {
		init = DefaultInit
	}
	if err := validateInit(init); err != nil {
		return nil, err
	}
	if src == nil {
		src = newSource()
	}
	return randomDense(inFeatures, outFeatures, act, init, src), nil
}

// randomDense assumes positive sizes and a validated initializer.
func randomDense(inFeatures, outFeatures int, act Activation, init Initializer, src rand.Source) *Dense {
	weights := mat.NewDense(outFeatures, inFeatures, nil)
	biases := mat.NewVecDense(outFeatures, nil)
	init.Initialize(weights, biases, src)

	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     weights,
		biases:      biases,
		activation:  orIdentity(act),
	}
}

// newDense assumes the parameters passed checkParams.
func newDense(weights mat.Matrix, biases mat.Vector, act Activation) *Dense {
	rows, cols := weights.Dims()
	return &Dense{
		inFeatures:  cols,
		outFeatures: rows,
		weights:     mat.DenseCopyOf(weights),
		biases:      mat.VecDenseCopyOf(biases),
		activation:  orIdentity(act),
	}
}

// Forward computes activation(W·x + b).
func (d *Dense) Forward(x mat.Vector) *mat.VecDense {
	if x.Len() != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected input of length %d, got %d", d.inFeatures, x.Len()))
	}

	out := mat.NewVecDense(d.outFeatures, nil)
	out.MulVec(d.weights, x)
	out.AddVec(out, d.biases)

	if _, ok := d.activation.(Identity); ok {
		return out
	}
	data := out.RawVector().Data
	for i, v := range data {
		data[i] = d.activation.Apply(v)
	}
	return out
}

// InputSize returns the number of input features.
func (d *Dense) InputSize() int { return d.inFeatures }

// OutputSize returns the number of output features.
func (d *Dense) OutputSize() int { return d.outFeatures }

// Weights returns a read-only view of the weight matrix.
//
// The view shares storage with the layer. Use mat.DenseCopyOf for a
// copy that can be modified.
func (d *Dense) Weights() mat.Matrix { return d.weights }

// Biases returns a read-only view of the bias vector.
func (d *Dense) Biases() mat.Vector { return d.biases }

// Activation returns the layer's activation.
func (d *Dense) Activation() Activation { return d.activation }

// String returns a short description of the layer.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d -> %d, %s)", d.inFeatures, d.outFeatures, d.activation.Name())
}

// equal reports whether two layers have the same sizes, parameters and
// activation.
func (d *Dense) equal(other *Dense, tol float64) bool {
	if d.inFeatures != other.inFeatures || d.outFeatures != other.outFeatures {
		return false
	}
	if d.activation.Name() != other.activation.Name() {
		return false
	}
	if tol == 0 {
		return mat.Equal(d.weights, other.weights) && mat.Equal(d.biases, other.biases)
	}
	return mat.EqualApprox(d.weights, other.weights, tol) && mat.EqualApprox(d.biases, other.biases, tol)
}

// checkParams validates a single weight/bias pair.
func checkParams(op string, layer int, weights mat.Matrix, biases mat.Vector) error {
	if weights == nil || biases == nil {
		return fmt.Errorf("%s: layer %d: missing weights or biases: %w", op, layer, ErrInvalidSpec)
	}
	rows, cols := weights.Dims()
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%s: layer %d: empty weight matrix %dx%d: %w", op, layer, rows, cols, ErrInvalidSpec)
	}
	if biases.Len() != rows {
		return shapeMismatch(op, layer, "biases", "len", rows, biases.Len())
	}
	return nil
}

func validateInit(init Initializer) error {
	if v, ok := init.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}

func orIdentity(act Activation) Activation {
	if act == nil {
		return Identity{}
	}
	return act
}
