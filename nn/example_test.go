// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/nn"
)

func ExampleFromParameters() {
	net, err := nn.FromParameters(
		[]mat.Matrix{mat.NewDense(2, 2, []float64{1, 0, 0, 1})},
		[]mat.Vector{mat.NewVecDense(2, []float64{1, 0})},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := net.PredictFloats([]float64{-5, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: [0 3]
}

func ExampleNew() {
	net, err := nn.New([]int{2, 3, 1}, nn.WithSeed(42), nn.WithOutputActivation(nn.Identity{}))
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := net.PredictFloats([]float64{0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(net)
	fmt.Println(len(out))
	// Output:
	// Network(2 -> 3 relu -> 1 identity)
	// 1
}

func ExampleNetwork_Predict_dimensionMismatch() {
	net, err := nn.New([]int{2, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = net.PredictFloats([]float64{1, 2, 3})
	fmt.Println(errors.Is(err, nn.ErrDimensionMismatch))
	fmt.Println(err)
	// Output:
	// true
	// Predict: input: expected len 2, got 3: dimension mismatch
}

func ExampleCompose() {
	hidden, err := nn.NewDense(
		mat.NewDense(2, 2, []float64{1, -1, -1, 1}),
		mat.NewVecDense(2, nil),
		nn.ReLU{},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	output, err := nn.NewDense(
		mat.NewDense(1, 2, []float64{2, 3}),
		mat.NewVecDense(1, []float64{-1}),
		nn.Identity{},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	net, err := nn.Compose(2, hidden, output)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := net.PredictFloats([]float64{1, 4})
	fmt.Println(net.Dims(), out)
	// Output: [2 2 1] [8]
}
