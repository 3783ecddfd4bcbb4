package nn

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Network is a feed-forward network: an input placeholder followed by
// zero or more dense layers applied in order.
//
// Each dense layer's input size equals the previous layer's output size.
// This is checked once at construction; a built network cannot change.
//
// Example:
//
//	net, err := nn.New([]int{784, 128, 10}, nn.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	out, err := net.Predict(input) // len(out) == 10
type Network struct {
	input  *Input
	layers []*Dense
}

// Option configures network construction.
type Option func(*options)

type options struct {
	activation       Activation
	outputActivation Activation
	init             Initializer
	src              rand.Source
}

// WithActivation sets the activation of every dense layer.
//
// WithOutputActivation overrides it for the last layer. Default: ReLU.
func WithActivation(act Activation) Option {
	return func(o *options) {
		o.activation = act
	}
}

// WithOutputActivation sets the activation of the last dense layer.
func WithOutputActivation(act Activation) Option {
	return func(o *options) {
		o.outputActivation = act
	}
}

// WithInitializer sets the parameter initializer. Default: DefaultInit.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		o.init = init
	}
}

// WithSource sets the random source used for initialization.
//
// The source is used without locking, so it must not be shared with
// concurrent constructions.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed initializes parameters from a new source with the given seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.src = rand.NewSource(seed)
	}
}

func buildOptions(opts []Option) (*options, error) {
	o := &options{
		activation: ReLU{},
		init:       DefaultInit,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.activation = orIdentity(o.activation)
	if o.outputActivation == nil {
		o.outputActivation = o.activation
	}
	if o.init == nil {
		o.init = DefaultInit
	}
	if err := validateInit(o.init); err != nil {
		return nil, err
	}
	return o, nil
}

// activationFor returns the activation of dense layer i out of n.
func (o *options) activationFor(i, n int) Activation {
	if i == n-1 {
		return o.outputActivation
	}
	return o.activation
}

// New builds a network with randomly initialized parameters.
//
// dims[0] is the input size. Each following entry adds a dense layer
// whose input size is the previous entry and output size is the entry
// itself, so dims {2, 3, 1} yields layers 2->3 and 3->1.
//
// Returns ErrInvalidSpec if dims is empty or holds a non-positive size.
func New(dims []int, opts ...Option) (*Network, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("New: dims must not be empty: %w", ErrInvalidSpec)
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("New: dims[%d] = %d must be positive: %w", i, d, ErrInvalidSpec)
		}
	}

	o, err := buildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	src := o.src
	if src == nil {
		src = newSource()
	}

	n := len(dims) - 1
	layers := make([]*Dense, n)
	for i := range layers {
		layers[i] = randomDense(dims[i], dims[i+1], o.activationFor(i, n), o.init, src)
	}

	return &Network{
		input:  &Input{size: dims[0]},
		layers: layers,
	}, nil
}

// FromParameters builds a network with the given parameters.
//
// weights[i] and biases[i] form dense layer i. The input size is taken
// from the column count of weights[0]. Parameters are copied.
//
// Returns ErrShapeMismatch (as a *ShapeError) if the slices differ in
// length, weights[i] has a row count different from len(biases[i]), or
// weights[i] has a column count different from the row count of
// weights[i-1]. Returns ErrInvalidSpec if there are no layers or a
// parameter is nil or empty.
func FromParameters(weights []mat.Matrix, biases []mat.Vector, opts ...Option) (*Network, error) {
	const op = "FromParameters"

	if len(weights) != len(biases) {
		return nil, &ShapeError{
			Op:       op,
			Layer:    -1,
			Param:    "biases",
			Dim:      "count",
			Expected: len(weights),
			Got:      len(biases),
			Err:      ErrShapeMismatch,
		}
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%s: at least one layer is required: %w", op, ErrInvalidSpec)
	}

	o, err := buildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prevRows := 0
	for i := range weights {
		if err := checkParams(op, i, weights[i], biases[i]); err != nil {
			return nil, err
		}
		rows, cols := weights[i].Dims()
		if i > 0 && cols != prevRows {
			return nil, shapeMismatch(op, i, "weights", "cols", prevRows, cols)
		}
		prevRows = rows
	}

	n := len(weights)
	layers := make([]*Dense, n)
	for i := range layers {
		layers[i] = newDense(weights[i], biases[i], o.activationFor(i, n))
	}

	_, inputSize := weights[0].Dims()
	return &Network{
		input:  &Input{size: inputSize},
		layers: layers,
	}, nil
}

// Compose builds a network from existing dense layers.
//
// Each layer keeps its own activation. Layers are immutable, so they may
// be shared between networks.
//
// Returns ErrShapeMismatch (as a *ShapeError) if a layer's input size
// differs from the output size of the layer before it.
func Compose(inputSize int, layers ...*Dense) (*Network, error) {
	const op = "Compose"

	input, err := NewInput(inputSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prev := inputSize
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%s: layer %d is nil: %w", op, i, ErrInvalidSpec)
		}
		if l.inFeatures != prev {
			return nil, shapeMismatch(op, i, "weights", "cols", prev, l.inFeatures)
		}
		prev = l.outFeatures
	}

	return &Network{
		input:  input,
		layers: append([]*Dense(nil), layers...),
	}, nil
}

// Stack returns a new network with one randomly initialized dense layer
// of the given size on top of n.
//
// The new layer takes n's output as input. Only the activation,
// initializer and source options apply; WithOutputActivation, if given,
// wins over WithActivation. n itself is unchanged.
func (n *Network) Stack(size int, opts ...Option) (*Network, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Stack: size must be positive, got %d: %w", size, ErrInvalidSpec)
	}

	o, err := buildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Stack: %w", err)
	}
	src := o.src
	if src == nil {
		src = newSource()
	}

	layers := make([]*Dense, len(n.layers), len(n.layers)+1)
	copy(layers, n.layers)
	layers = append(layers, randomDense(n.OutputSize(), size, o.outputActivation, o.init, src))

	return &Network{
		input:  n.input,
		layers: layers,
	}, nil
}

// Predict runs the forward pass for a single input vector.
//
// The input goes through the placeholder and then through every dense
// layer in order. The result has length OutputSize().
//
// Returns ErrDimensionMismatch (as a *ShapeError) if x.Len() differs
// from InputSize().
func (n *Network) Predict(x mat.Vector) (*mat.VecDense, error) {
	if x == nil {
		return nil, &ShapeError{Op: "Predict", Layer: -1, Param: "input", Dim: "len",
			Expected: n.input.size, Got: 0, Err: ErrDimensionMismatch}
	}
	if x.Len() != n.input.size {
		return nil, &ShapeError{Op: "Predict", Layer: -1, Param: "input", Dim: "len",
			Expected: n.input.size, Got: x.Len(), Err: ErrDimensionMismatch}
	}

	out := n.input.Forward(x)
	for _, l := range n.layers {
		out = l.Forward(out)
	}
	return out, nil
}

// PredictFloats is Predict for plain slices.
func (n *Network) PredictFloats(x []float64) ([]float64, error) {
	if len(x) != n.input.size {
		return nil, &ShapeError{Op: "Predict", Layer: -1, Param: "input", Dim: "len",
			Expected: n.input.size, Got: len(x), Err: ErrDimensionMismatch}
	}

	out, err := n.Predict(mat.NewVecDense(len(x), x))
	if err != nil {
		return nil, err
	}
	return out.RawVector().Data, nil
}

// InputSize returns the length of the vectors Predict accepts.
func (n *Network) InputSize() int { return n.input.size }

// OutputSize returns the length of the vectors Predict returns.
//
// A network without dense layers passes its input through.
func (n *Network) OutputSize() int {
	if len(n.layers) == 0 {
		return n.input.size
	}
	return n.layers[len(n.layers)-1].outFeatures
}

// Len returns the number of dense layers.
func (n *Network) Len() int { return len(n.layers) }

// Layer returns dense layer i.
//
// Panics if index is out of bounds.
func (n *Network) Layer(i int) *Dense {
	if i < 0 || i >= len(n.layers) {
		panic(fmt.Sprintf("Network.Layer: index %d out of bounds [0, %d)", i, len(n.layers)))
	}
	return n.layers[i]
}

// Layers returns every stage of the network, the input placeholder first.
func (n *Network) Layers() []Layer {
	out := make([]Layer, 0, len(n.layers)+1)
	out = append(out, n.input)
	for _, l := range n.layers {
		out = append(out, l)
	}
	return out
}

// Dims returns the sizes the network was built from: the input size
// followed by each dense layer's output size.
func (n *Network) Dims() []int {
	dims := make([]int, 0, len(n.layers)+1)
	dims = append(dims, n.input.size)
	for _, l := range n.layers {
		dims = append(dims, l.outFeatures)
	}
	return dims
}

// Weights returns read-only views of each layer's weights, in order.
//
// The views share storage with the network and must not be modified.
// Use CloneWeights for independent copies.
func (n *Network) Weights() []mat.Matrix {
	out := make([]mat.Matrix, len(n.layers))
	for i, l := range n.layers {
		out[i] = l.weights
	}
	return out
}

// Biases returns read-only views of each layer's biases, in order.
func (n *Network) Biases() []mat.Vector {
	out := make([]mat.Vector, len(n.layers))
	for i, l := range n.layers {
		out[i] = l.biases
	}
	return out
}

// CloneWeights returns deep copies of each layer's weights, in order.
func (n *Network) CloneWeights() []*mat.Dense {
	out := make([]*mat.Dense, len(n.layers))
	for i, l := range n.layers {
		out[i] = mat.DenseCopyOf(l.weights)
	}
	return out
}

// CloneBiases returns deep copies of each layer's biases, in order.
func (n *Network) CloneBiases() []*mat.VecDense {
	out := make([]*mat.VecDense, len(n.layers))
	for i, l := range n.layers {
		out[i] = mat.VecDenseCopyOf(l.biases)
	}
	return out
}

// Parameters returns named read-only views of all parameters.
//
// Names are prefixed with the dense layer index ("0.weight", "0.bias",
// "1.weight", ...) and appear in network order.
func (n *Network) Parameters() []Parameter {
	params := make([]Parameter, 0, 2*len(n.layers))
	for i, l := range n.layers {
		params = append(params,
			NewParameter(fmt.Sprintf("%d.weight", i), l.weights),
			NewParameter(fmt.Sprintf("%d.bias", i), l.biases),
		)
	}
	return params
}

// String returns a one-line summary such as "Network(2 -> 3 relu -> 1 identity)".
func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network(%d", n.input.size)
	for _, l := range n.layers {
		fmt.Fprintf(&b, " -> %d %s", l.outFeatures, l.activation.Name())
	}
	b.WriteString(")")
	return b.String()
}

// Equal reports whether a and b are structurally identical: same input
// size, same number of layers, and pairwise equal layer sizes, weights,
// biases and activations.
func Equal(a, b *Network) bool {
	return equal(a, b, 0)
}

// EqualApprox is Equal with parameters compared within tol.
func EqualApprox(a, b *Network, tol float64) bool {
	return equal(a, b, tol)
}

func equal(a, b *Network, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.input.size != b.input.size || len(a.layers) != len(b.layers) {
		return false
	}
	for i := range a.layers {
		if !a.layers[i].equal(b.layers[i], tol) {
			return false
		}
	}
	return true
}
