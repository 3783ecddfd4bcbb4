package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ffnet/nn"
)

func TestRun_Version(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"version"}, &buf))
	assert.Equal(t, "ffnet "+version+"\n", buf.String())
}

func TestRun_Usage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(nil, &buf))
	assert.Contains(t, buf.String(), "predict")
	assert.Contains(t, buf.String(), "inspect")
}

func TestRun_UnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run([]string{"train"}, &buf))
}

func TestRun_Predict(t *testing.T) {
	var buf bytes.Buffer
	// A zero range gives all-zero parameters, so the output is exact.
	err := run([]string{"predict", "-dims", "2 3 2", "-init-range", "0", "-input", "0 1"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "0 0\n", buf.String())
}

func TestRun_PredictSeeded(t *testing.T) {
	args := []string{"predict", "-dims", "2,3,1", "-seed", "42", "-output-activation", "identity", "-input", "0,1"}

	var first, second bytes.Buffer
	require.NoError(t, run(args, &first))
	require.NoError(t, run(args, &second))
	assert.Equal(t, first.String(), second.String())

	net, err := nn.New([]int{2, 3, 1}, nn.WithSeed(42), nn.WithOutputActivation(nn.Identity{}))
	require.NoError(t, err)
	out, err := net.PredictFloats([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, formatVector(out)+"\n", first.String())
}

func TestRun_PredictErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"wrong input length", []string{"predict", "-dims", "2 1", "-input", "1 2 3"}, nn.ErrDimensionMismatch},
		{"empty dims", []string{"predict", "-dims", "", "-input", "1"}, nil},
		{"bad input", []string{"predict", "-dims", "2 1", "-input", "a b"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tt.args, &buf)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRun_Inspect(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"inspect", "-dims", "2 3 1", "-seed", "1"}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Network(2 -> 3 relu -> 1 relu)\n"), out)
	for _, name := range []string{"0.weight", "0.bias", "1.weight", "1.bias"} {
		assert.Contains(t, out, name+" =")
	}
}
