package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidSpec       = errors.New("invalid network spec")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// ShapeError provides detailed information about a shape check failure.
//
// Err is ErrShapeMismatch for inconsistent parameters and
// ErrDimensionMismatch for a bad input vector, so callers can use
// errors.Is without inspecting the fields.
type ShapeError struct {
	Op       string // Operation that failed (e.g., "FromParameters", "Predict")
	Layer    int    // Index of the dense layer involved, -1 for the input
	Param    string // "weights", "biases" or "input"
	Dim      string // "rows", "cols" or "len"
	Expected int
	Got      int
	Err      error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Layer < 0 {
		return fmt.Sprintf("%s: %s: expected %s %d, got %d: %v",
			e.Op, e.Param, e.Dim, e.Expected, e.Got, e.Err)
	}
	return fmt.Sprintf("%s: layer %d %s: expected %s %d, got %d: %v",
		e.Op, e.Layer, e.Param, e.Dim, e.Expected, e.Got, e.Err)
}

// Unwrap returns the sentinel error kind.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapeMismatch(op string, layer int, param, dim string, expected, got int) error {
	return &ShapeError{
		Op:       op,
		Layer:    layer,
		Param:    param,
		Dim:      dim,
		Expected: expected,
		Got:      got,
		Err:      ErrShapeMismatch,
	}
}
