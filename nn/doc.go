// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward networks for inference.
//
// # Overview
//
// This package contains:
//   - Network: Input placeholder followed by dense layers
//   - Layers: Input, Dense
//   - Activations: ReLU, Identity, Sigmoid, Tanh
//   - Initialization: Uniform, Xavier
//   - Errors: ErrInvalidSpec, ErrShapeMismatch, ErrDimensionMismatch
//
// # Basic Usage
//
//	import "github.com/born-ml/ffnet/nn"
//
//	func main() {
//	    // Random parameters in [-0.01, 0.01), ReLU everywhere
//	    net, err := nn.New([]int{784, 128, 10}, nn.WithSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.PredictFloats(pixels) // len(out) == 10
//	}
//
// # Pre-trained Parameters
//
// FromParameters rebuilds a network from weight/bias pairs obtained
// elsewhere. weights[i] has shape [out, in] and biases[i] length out:
//
//	net, err := nn.FromParameters(weights, biases,
//	    nn.WithOutputActivation(nn.Identity{}),
//	)
//
// Compose builds a network from layers that each carry their own
// activation:
//
//	hidden, _ := nn.NewDense(w0, b0, nn.Tanh{})
//	output, _ := nn.NewDense(w1, b1, nn.Sigmoid{})
//	net, err := nn.Compose(4, hidden, output)
//
// # Inspection
//
// Weights and Biases return views that share storage with the network.
// CloneWeights and CloneBiases return independent copies:
//
//	for i, w := range net.Weights() {
//	    r, c := w.Dims()
//	    fmt.Printf("layer %d: %dx%d\n", i, r, c)
//	}
//
// # Errors
//
// Construction fails fast with ErrInvalidSpec or ErrShapeMismatch.
// Predict returns ErrDimensionMismatch for an input of the wrong length.
// Shape failures are *ShapeError values carrying expected and actual sizes.
package nn
