// Package typedesc provides the runtime type-descriptor surface that the
// core package checks values against. A full structural type checker (the
// equivalent of typeguard / typing introspection) is outside this module's
// scope; this package curates the handful of descriptor shapes the port
// model actually needs: scalars, fixed-arity tuples and variable-length
// sequences of a single element type.
package typedesc

import (
	"fmt"
	"reflect"
)

// Descriptor describes the declared type of a port. The zero value is the
// "Any" descriptor, which accepts every value.
type Descriptor struct {
	label      string
	goType     reflect.Type // nil for Any
	elem       *Descriptor  // non-nil for variadic sequences
	tupleElems []Descriptor // non-nil for fixed-arity tuples
	isTensor   bool         // true when this descriptor denotes the tensor element type
}

// Any accepts any value, mirroring typing.Any.
func Any() Descriptor {
	return Descriptor{label: "Any"}
}

// Of builds a scalar descriptor from a concrete Go type, e.g.
// typedesc.Of(reflect.TypeOf(0)) for int.
func Of(t reflect.Type) Descriptor {
	return Descriptor{label: t.String(), goType: t}
}

// TensorElement builds the scalar descriptor used to mark "the tensor type"
// for the purposes of subscriptability — the only element type that makes a
// sequence port eligible for per-element wiring.
func TensorElement(t reflect.Type) Descriptor {
	return Descriptor{label: t.String(), goType: t, isTensor: true}
}

// SequenceOf builds a variable-length homogeneous sequence descriptor, the
// equivalent of Sequence[T] / Iterable[T] / List[T] / Tuple[T, ...].
func SequenceOf(elem Descriptor) Descriptor {
	e := elem
	return Descriptor{label: "[]" + elem.label, elem: &e}
}

// TupleOf builds a fixed-arity tuple descriptor. Fixed-arity tuples are
// never subscriptable, even when every element is a tensor.
func TupleOf(elems ...Descriptor) Descriptor {
	return Descriptor{label: "tuple", tupleElems: elems}
}

// String returns a human-readable label for error messages.
func (d Descriptor) String() string {
	if d.label == "" {
		return "Any"
	}
	return d.label
}

// IsAny reports whether the descriptor accepts every value.
func (d Descriptor) IsAny() bool {
	return d.goType == nil && d.elem == nil && d.tupleElems == nil
}

// IsSequence reports whether the descriptor is a variable-length sequence
// and, if so, returns its element descriptor.
func (d Descriptor) IsSequence() (Descriptor, bool) {
	if d.elem == nil {
		return Descriptor{}, false
	}
	return *d.elem, true
}

// IsSubscriptable reports whether the descriptor is eligible for
// per-element wiring: a variable-length sequence whose element type is the
// tensor type.
func (d Descriptor) IsSubscriptable() bool {
	return d.elem != nil && d.elem.isTensor
}

// New assembles a value of the declared sequence kind from ordered element
// values, used when materializing an aggregator read. Non-sequence
// descriptors simply return the slice unchanged.
func (d Descriptor) New(elems []interface{}) interface{} {
	if d.elem == nil {
		return elems
	}
	if d.elem.goType == nil {
		return elems
	}
	out := reflect.MakeSlice(reflect.SliceOf(d.elem.goType), 0, len(elems))
	for _, e := range elems {
		out = reflect.Append(out, reflect.ValueOf(e))
	}
	return out.Interface()
}

// Check validates v against the descriptor, returning a descriptive error
// if it does not match. It never panics on mismatched input.
func (d Descriptor) Check(v interface{}) error {
	if d.IsAny() {
		return nil
	}
	if d.tupleElems != nil {
		return d.checkTuple(v)
	}
	if d.elem != nil {
		return d.checkSequence(v)
	}
	return d.checkScalar(v)
}

func (d Descriptor) checkScalar(v interface{}) error {
	t := reflect.TypeOf(v)
	if t == nil || !t.AssignableTo(d.goType) {
		return fmt.Errorf("value %v (%T) is not assignable to %s", v, v, d)
	}
	return nil
}

func (d Descriptor) checkSequence(v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return fmt.Errorf("value %v (%T) is not a sequence matching %s", v, v, d)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := d.elem.Check(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (d Descriptor) checkTuple(v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return fmt.Errorf("value %v (%T) is not a tuple matching %s", v, v, d)
	}
	if rv.Len() != len(d.tupleElems) {
		return fmt.Errorf("tuple has %d elements, want %d", rv.Len(), len(d.tupleElems))
	}
	for i, elemType := range d.tupleElems {
		if err := elemType.Check(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
