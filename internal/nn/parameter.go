package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Parameter is a named, read-only view of a layer parameter.
//
// Parameters are returned by Network.Parameters for code that needs to
// inspect, compare or export a network. The value shares storage with
// the network and must not be modified.
//
// Example:
//
//	for _, p := range net.Parameters() {
//	    r, c := p.Value().Dims()
//	    fmt.Println(p.Name(), r, c)
//	}
type Parameter struct {
	name  string     // Parameter name (e.g., "0.weight", "1.bias")
	value mat.Matrix // Weight matrix, or bias as a column vector
}

// NewParameter creates a named parameter view.
func NewParameter(name string, value mat.Matrix) Parameter {
	return Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p Parameter) Value() mat.Matrix {
	return p.value
}

// Len returns the number of scalar values in the parameter.
func (p Parameter) Len() int {
	r, c := p.value.Dims()
	return r * c
}
