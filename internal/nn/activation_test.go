package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReLU tests ReLU clamps negatives and passes positives.
func TestReLU(t *testing.T) {
	relu := ReLU{}

	inputs := []float64{-2, -1, -1e-12, 0, 1e-12, 1, 2}
	expected := []float64{0, 0, 0, 0, 1e-12, 1, 2}

	for i, x := range inputs {
		assert.Equal(t, expected[i], relu.Apply(x), "ReLU(%v)", x)
	}
	assert.Equal(t, "relu", relu.Name())
}

// TestIdentity tests Identity returns its input.
func TestIdentity(t *testing.T) {
	id := Identity{}

	for _, x := range []float64{-5, 0, 3.25, math.MaxFloat64} {
		assert.Equal(t, x, id.Apply(x))
	}
	assert.Equal(t, "identity", id.Name())
}

// TestSigmoid tests Sigmoid against known values.
func TestSigmoid(t *testing.T) {
	s := Sigmoid{}

	// σ(0) = 0.5, σ(1) ≈ 0.7311, σ(-1) ≈ 0.2689
	assert.Equal(t, 0.5, s.Apply(0))
	assert.InDelta(t, 0.7311, s.Apply(1), 1e-4)
	assert.InDelta(t, 0.2689, s.Apply(-1), 1e-4)

	// Saturates without overflowing.
	assert.InDelta(t, 1.0, s.Apply(1000), 1e-12)
	assert.InDelta(t, 0.0, s.Apply(-1000), 1e-12)
}

// TestTanh tests Tanh against known values.
func TestTanh(t *testing.T) {
	th := Tanh{}

	assert.Equal(t, 0.0, th.Apply(0))
	assert.InDelta(t, 0.7616, th.Apply(1), 1e-4)
	assert.InDelta(t, -0.7616, th.Apply(-1), 1e-4)
}

// TestActivationByName tests the activation lookup table.
func TestActivationByName(t *testing.T) {
	tests := []struct {
		name string
		want Activation
	}{
		{"relu", ReLU{}},
		{"ReLU", ReLU{}},
		{" tanh ", Tanh{}},
		{"sigmoid", Sigmoid{}},
		{"identity", Identity{}},
		{"linear", Identity{}},
		{"none", Identity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, err := ActivationByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, act)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ActivationByName("softplus")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), "softplus")
	})
}
