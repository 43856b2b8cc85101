// Package core implements the parameter-wiring and rendezvous core of a
// dataflow execution engine: typed ports, the cell indirection that lets a
// connection rewire which slot a port reads from, the connection algebra
// (including per-element wiring of list-typed ports), and the send/receive
// handshake that gives each edge one-value-at-a-time semantics.
package core

import (
	"sync"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/flowlattice/paramcore/core/typedesc"
)

// Port is a named, typed endpoint owned by a component. InputPort and
// OutputPort embed Port and add the receive/send handshake.
type Port struct {
	sim.HookableBase

	mu sync.Mutex

	name            string
	declaredType    typedesc.Descriptor
	argName         string
	parent          Component
	heldCell        cell
	refs            map[slot][]*Reference
	isSubscriptable bool
}

// newPort builds a port holding a fresh plain value cell, optionally seeded
// with an initial value. If initialValue is provided it is type-checked
// against declaredType.
func newPort(name string, declaredType typedesc.Descriptor, argName string, parent Component,
	initialValue interface{}, hasInitialValue bool) (*Port, error) {
	if hasInitialValue {
		if err := declaredType.Check(initialValue); err != nil {
			return nil, &TypeMismatchError{Param: name, Value: initialValue, Cause: err}
		}
	}

	p := &Port{
		name:            name,
		declaredType:    declaredType,
		argName:         argName,
		parent:          parent,
		refs:            make(map[slot][]*Reference),
		isSubscriptable: declaredType.IsSubscriptable(),
	}
	if hasInitialValue {
		p.heldCell = newValueCellWith(initialValue)
	} else {
		p.heldCell = newValueCell()
	}
	return p, nil
}

// Name returns the port's name.
func (p *Port) Name() string { return p.name }

// Type returns the port's declared type descriptor.
func (p *Port) Type() typedesc.Descriptor { return p.declaredType }

// ArgName returns the constructor-argument name this port maps to, if any.
func (p *Port) ArgName() string { return p.argName }

// Parent returns the owning component.
func (p *Port) Parent() Component { return p.parent }

// IsSubscriptable reports whether Select is available on this port: true
// iff the declared type is a variable-length homogeneous sequence of
// tensors.
func (p *Port) IsSubscriptable() bool { return p.isSubscriptable }

func (p *Port) heldCellSnapshot() cell {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.heldCell
}

// Value resolves the currently visible value through the port's held cell.
// The second return value is false when the port has no value yet.
func (p *Port) Value() (interface{}, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolveLocked()
}

func (p *Port) resolveLocked() (interface{}, bool) {
	switch c := p.heldCell.(type) {
	case *valueCell:
		v, ok := c.get()
		if !ok {
			return nil, false
		}
		if ic, isIndexed := v.(*indexedCell); isIndexed {
			return ic.get()
		}
		return v, true
	case *indexedCell:
		return c.get()
	case *aggregateCell:
		return p.declaredType.New(c.orderedValues()), true
	default:
		return nil, false
	}
}

// SetValue assigns v to the port. It is permitted only when the port's cell
// is a plain value cell (ImmutableCellError otherwise), the value is not
// itself cell-shaped (IllegalValueError), and the value type-checks against
// declaredType (TypeMismatchError).
func (p *Port) SetValue(v interface{}) error {
	if src, ok := v.(*Port); ok {
		resolved, has := src.Value()
		if !has {
			resolved = nil
		}
		v = resolved
	}
	if isCellShaped(v) {
		return &IllegalValueError{Param: p.name}
	}

	p.mu.Lock()
	vc, ok := p.heldCell.(*valueCell)
	if !ok {
		p.mu.Unlock()
		return &ImmutableCellError{Param: p.name}
	}
	if err := p.declaredType.Check(v); err != nil {
		p.mu.Unlock()
		return &TypeMismatchError{Param: p.name, Value: v, Cause: err}
	}
	vc.set(v)
	p.mu.Unlock()

	p.InvokeHook(sim.HookCtx{Domain: p, Pos: HookPosPortValueSet, Item: v})
	return nil
}

func isCellShaped(v interface{}) bool {
	switch v.(type) {
	case *valueCell, *indexedCell, *aggregateCell:
		return true
	}
	return false
}

// References returns the flat union of all edge references across every
// slot of the port.
func (p *Port) References() []*Reference {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.referencesLocked()
}

func (p *Port) referencesLocked() []*Reference {
	var out []*Reference
	for _, refs := range p.refs {
		out = append(out, refs...)
	}
	return out
}

// RefCounter returns the number of references for the given slot, or the
// total across every slot when index is nil.
func (p *Port) RefCounter(index *int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index != nil {
		return len(p.refs[indexSlot(*index)])
	}
	return len(p.referencesLocked())
}

// Select returns a transient indexed handle over element i of the port, for
// use in a connect/disconnect call. Select is only available on
// subscriptable ports (variable-length sequences of tensors); calling it on
// any other port raises UnsubscriptablePortError. No bounds check is
// performed: a port's length is unknown before data arrives.
func (p *Port) Select(i int) (*IterableParam, error) {
	if !p.isSubscriptable {
		return nil, &UnsubscriptablePortError{Param: p.name}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var backing cell
	switch c := p.heldCell.(type) {
	case *valueCell:
		backing = c
	default:
		backing = newValueCell()
	}
	return &IterableParam{port: p, cell: newIndexedCell(backing, i)}, nil
}

// Connect wires this port (as the origin) to dst, which must be a *Port or
// *IterableParam. See the package-level connect algebra for the full set of
// pre-conditions and rewiring rules.
func (p *Port) Connect(dst interface{}) error {
	return connect(p, dst)
}

// Disconnect tears down the connection from this port (as the origin) to
// dst. Re-disconnecting an already-disconnected pair returns
// ErrConnectionNotFound.
func (p *Port) Disconnect(dst interface{}) error {
	return disconnect(p, dst)
}
