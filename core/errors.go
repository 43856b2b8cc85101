package core

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the structural error variants a caller may need
// to branch on. ComponentStopped is carried by its own error type rather
// than a kind constant since it also carries the peer's terminal state.
type ErrorKind string

const (
	KindTypeMismatch        ErrorKind = "TypeMismatch"
	KindImmutableCell       ErrorKind = "ImmutableCell"
	KindIllegalValue        ErrorKind = "IllegalValue"
	KindUnsubscriptablePort ErrorKind = "UnsubscriptablePort"
	KindFanInExceeded       ErrorKind = "FanInExceeded"
	KindUnsupportedQuery    ErrorKind = "UnsupportedQuery"
)

// KindedError is implemented by every structural error this package raises,
// letting callers discriminate by kind without a long type switch.
type KindedError interface {
	error
	Kind() ErrorKind
}

// TypeMismatchError reports that a value does not satisfy a declared or
// element type.
type TypeMismatchError struct {
	Param string
	Value interface{}
	Cause error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("param %q: type mismatch: %v", e.Param, e.Cause)
}
func (e *TypeMismatchError) Unwrap() error  { return e.Cause }
func (e *TypeMismatchError) Kind() ErrorKind { return KindTypeMismatch }

// ImmutableCellError reports an attempted value write on a port whose cell
// is not a plain value cell (e.g. a connected input).
type ImmutableCellError struct {
	Param string
}

func (e *ImmutableCellError) Error() string {
	return fmt.Sprintf("param %q cannot be assigned: its cell is not writable", e.Param)
}
func (e *ImmutableCellError) Kind() ErrorKind { return KindImmutableCell }

// IllegalValueError reports that the value to assign is itself a
// cell-shaped object.
type IllegalValueError struct {
	Param string
}

func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("param %q: value to assign cannot itself be a cell", e.Param)
}
func (e *IllegalValueError) Kind() ErrorKind { return KindIllegalValue }

// UnsubscriptablePortError reports a Select call against a non-subscriptable
// port.
type UnsubscriptablePortError struct {
	Param string
}

func (e *UnsubscriptablePortError) Error() string {
	return fmt.Sprintf("param %q is not subscriptable (it must be a sequence of tensors)", e.Param)
}
func (e *UnsubscriptablePortError) Kind() ErrorKind { return KindUnsubscriptablePort }

// FanInExceededError reports that a connection would raise an input slot's
// fan-in above 1.
type FanInExceededError struct {
	Param string
	Index *int
}

func (e *FanInExceededError) Error() string {
	if e.Index != nil {
		return fmt.Sprintf("param %q[%d] is already connected to one source", e.Param, *e.Index)
	}
	return fmt.Sprintf("param %q is already connected to one source", e.Param)
}
func (e *FanInExceededError) Kind() ErrorKind { return KindFanInExceeded }

// UnsupportedQueryError reports a query (index or per-index reference
// count) that is semantically meaningless against an aggregator-based input
// handle.
type UnsupportedQueryError struct {
	Param string
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("param %q: query is unsupported against a list aggregate", e.Param)
}
func (e *UnsupportedQueryError) Kind() ErrorKind { return KindUnsupportedQuery }

// ComponentStoppedError is raised during rendezvous when a peer has entered
// a terminal, non-STOPPED_AT_ITER state. It carries that state so upper
// layers can distinguish normal shutdown from faults.
type ComponentStoppedError struct {
	State State
}

func (e *ComponentStoppedError) Error() string {
	return fmt.Sprintf("peer component stopped in state %v", e.State)
}

// ErrConnectionNotFound is returned by Disconnect when the given (origin,
// destination) pair does not match any live edge reference. Re-disconnecting
// an already-disconnected pair is a lookup miss, not a no-op.
var ErrConnectionNotFound = errors.New("no matching connection to disconnect")
