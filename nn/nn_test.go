// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/nn"
)

// TestLayerInterface verifies that concrete types implement Layer.
func TestLayerInterface(t *testing.T) {
	input, err := nn.NewInput(4)
	require.NoError(t, err)
	dense, err := nn.NewRandomDense(4, 2, nn.ReLU{}, nn.Xavier{}, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		layer nn.Layer
		out   int
	}{
		{name: "Input", layer: input, out: 4},
		{name: "Dense", layer: dense, out: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 4, tt.layer.InputSize())
			assert.Equal(t, tt.out, tt.layer.OutputSize())

			out := tt.layer.Forward(mat.NewVecDense(4, []float64{1, 2, 3, 4}))
			assert.Equal(t, tt.out, out.Len())
		})
	}
}

// TestFacade checks the re-exported constructors against each other.
func TestFacade(t *testing.T) {
	net, err := nn.New([]int{3, 4, 2}, nn.WithSeed(1), nn.WithInitializer(nn.DefaultInit))
	require.NoError(t, err)

	layers := []*nn.Dense{net.Layer(0), net.Layer(1)}
	composed, err := nn.Compose(3, layers...)
	require.NoError(t, err)
	assert.True(t, nn.Equal(net, composed))

	rebuilt, err := nn.FromParameters(net.Weights(), net.Biases())
	require.NoError(t, err)
	assert.True(t, nn.EqualApprox(net, rebuilt, 0))

	act, err := nn.ActivationByName("relu")
	require.NoError(t, err)
	assert.Equal(t, nn.ReLU{}, act)

	_, err = nn.New(nil)
	assert.ErrorIs(t, err, nn.ErrInvalidSpec)

	_, err = nn.FromParameters(
		[]mat.Matrix{mat.NewDense(2, 2, nil)},
		[]mat.Vector{mat.NewVecDense(3, nil)},
	)
	var shapeErr *nn.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)
}
