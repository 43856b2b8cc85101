// Package tensor defines the minimal data payload components exchange over
// wired ports. The real tensor/array library backing these values is
// outside this module's scope (see the port core's design notes); Tensor is
// the stand-in element type that makes a sequence port subscriptable.
//
// Adapted from the token shape used to carry data between CGRA tiles: a
// flat payload plus a validity flag, generalized here to an N-dimensional
// shape instead of a fixed lane count.
package tensor

import "reflect"

// Tensor is an opaque, shaped block of data flowing along an edge.
type Tensor struct {
	Shape []int
	Data  []float64
	// Valid marks whether this tensor carries a defined value. A producer
	// may propagate Valid=false to signal a predicated or short-circuited
	// result without tearing down the edge.
	Valid bool
}

// New builds a valid tensor from a shape and a flat row-major data slice.
func New(shape []int, data []float64) Tensor {
	return Tensor{Shape: shape, Data: data, Valid: true}
}

// Scalar builds a valid rank-0 tensor wrapping a single value.
func Scalar(v float64) Tensor {
	return Tensor{Shape: nil, Data: []float64{v}, Valid: true}
}

// WithValid returns a copy of t with Valid set as given.
func (t Tensor) WithValid(valid bool) Tensor {
	t.Valid = valid
	return t
}

// First returns the first element of the underlying data, or 0 if empty.
func (t Tensor) First() float64 {
	if len(t.Data) == 0 {
		return 0
	}
	return t.Data[0]
}

// Type is the reflect.Type of Tensor, used to build the element descriptor
// that marks a sequence port as subscriptable.
var Type = reflect.TypeOf(Tensor{})
