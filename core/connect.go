package core

import (
	"fmt"

	"github.com/flowlattice/paramcore/core/typedesc"
	"github.com/sarchlab/akita/v4/sim"
)

// endpoint pulls the owning port and, for an indexed handle, the element
// index and backing indexedCell out of a connect/disconnect argument, which
// must be a *Port or an *IterableParam.
type endpoint struct {
	port     *Port
	index    *int
	iterable *IterableParam
}

func asEndpoint(v interface{}) (endpoint, error) {
	switch e := v.(type) {
	case *Port:
		return endpoint{port: e}, nil
	case *IterableParam:
		idx := e.cell.index
		return endpoint{port: e.port, index: &idx, iterable: e}, nil
	default:
		return endpoint{}, fmt.Errorf("core: connect/disconnect endpoint must be *Port or *IterableParam, got %T", v)
	}
}

// connect wires oriRaw (the origin, conventionally an output) to dstRaw (the
// destination, conventionally an input). Both arguments must be a *Port or
// an *IterableParam returned by Port.Select.
func connect(oriRaw, dstRaw interface{}) error {
	ori, err := asEndpoint(oriRaw)
	if err != nil {
		return err
	}
	dst, err := asEndpoint(dstRaw)
	if err != nil {
		return err
	}

	if v, has := ori.port.Value(); has && ori.index == nil {
		checkType := destElementType(dst)
		if err := checkType.Check(v); err != nil {
			return &TypeMismatchError{Param: ori.port.name, Value: v, Cause: err}
		}
	}

	if dst.port.RefCounter(dst.index) > 0 {
		return &FanInExceededError{Param: dst.port.name, Index: dst.index}
	}

	rewireCells(ori, dst)

	if dst.iterable != nil {
		attachToAggregate(dst)
	}

	addReference(ori, dst)
	return nil
}

// destElementType returns the type a value arriving at dst must satisfy:
// the port's own declared type for a whole-port destination, or the
// sequence's element type for an indexed destination.
func destElementType(dst endpoint) typedesc.Descriptor {
	if dst.index == nil {
		return dst.port.declaredType
	}
	if elem, ok := dst.port.declaredType.IsSequence(); ok {
		return elem
	}
	return typedesc.Any()
}

// rewireCells implements the four-case cell algebra: whichever side is an
// indexed handle contributes its indexedCell as the thing the other side
// points at, never the raw backing beneath it.
func rewireCells(ori, dst endpoint) {
	switch {
	case ori.iterable == nil && dst.iterable == nil:
		// whole -> whole: dst now reads through the same cell as ori.
		dst.port.mu.Lock()
		dst.port.heldCell = ori.port.heldCellSnapshot()
		dst.port.mu.Unlock()

	case ori.iterable == nil && dst.iterable != nil:
		// whole -> indexed: dst's indexed view now backs onto ori's cell.
		dst.iterable.cell.setBacking(ori.port.heldCellSnapshot())

	case ori.iterable != nil && dst.iterable == nil:
		// indexed -> whole: dst keeps its own value cell but that cell's
		// content becomes ori's indexed view, so dst resolves through it.
		dst.port.mu.Lock()
		vc, ok := dst.port.heldCell.(*valueCell)
		if !ok {
			vc = newValueCell()
			dst.port.heldCell = vc
		}
		dst.port.mu.Unlock()
		vc.set(ori.iterable.cell)

	default:
		// indexed -> indexed: dst's indexed view backs directly onto ori's
		// indexed view (not ori's underlying backing).
		dst.iterable.cell.setBacking(ori.iterable.cell)
	}
}

// attachToAggregate folds dst's indexedCell into the aggregator the owning
// port presents once at least one of its elements has been wired
// individually. A list-typed input therefore transitions from a plain value
// cell to an aggregateCell the first time Select+Connect is used on it.
func attachToAggregate(dst endpoint) {
	p := dst.port
	p.mu.Lock()
	defer p.mu.Unlock()

	agg, ok := p.heldCell.(*aggregateCell)
	if !ok {
		agg = newAggregateCell()
		p.heldCell = agg
	}
	agg.add(dst.iterable.cell)
}

func addReference(ori, dst endpoint) {
	sent := NewSignal()
	consumed := NewSignal()

	ori.port.mu.Lock()
	ori.port.refs[slotOf(ori.index)] = append(ori.port.refs[slotOf(ori.index)],
		&Reference{Peer: dst.port, Index: dst.index, Sent: sent, Consumed: consumed})
	ori.port.mu.Unlock()

	dst.port.mu.Lock()
	dst.port.refs[slotOf(dst.index)] = append(dst.port.refs[slotOf(dst.index)],
		&Reference{Peer: ori.port, Index: ori.index, Sent: sent, Consumed: consumed})
	dst.port.mu.Unlock()

	ori.port.InvokeHook(sim.HookCtx{Domain: ori.port, Pos: HookPosPortConnect, Item: dst.port})
	dst.port.InvokeHook(sim.HookCtx{Domain: dst.port, Pos: HookPosPortConnect, Item: ori.port})
}

func slotOf(index *int) slot {
	if index == nil {
		return wholeSlot()
	}
	return indexSlot(*index)
}

// disconnect tears down the connection from oriRaw (the origin) to dstRaw
// (the destination). Re-disconnecting an already-disconnected pair returns
// ErrConnectionNotFound, mirroring a lookup miss rather than treating it as
// a no-op.
func disconnect(oriRaw, dstRaw interface{}) error {
	ori, err := asEndpoint(oriRaw)
	if err != nil {
		return err
	}
	dst, err := asEndpoint(dstRaw)
	if err != nil {
		return err
	}

	if !removeReference(ori.port, slotOf(ori.index), dst.port, dst.index) {
		return ErrConnectionNotFound
	}
	removeReference(dst.port, slotOf(dst.index), ori.port, ori.index)

	resetDstCell(dst)

	dst.port.InvokeHook(sim.HookCtx{Domain: dst.port, Pos: HookPosPortDisconnect, Item: ori.port})
	ori.port.InvokeHook(sim.HookCtx{Domain: ori.port, Pos: HookPosPortDisconnect, Item: dst.port})
	return nil
}

func removeReference(p *Port, s slot, peer *Port, index *int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	refs := p.refs[s]
	for i, r := range refs {
		if sameTarget(peer, index, r) {
			p.refs[s] = append(refs[:i], refs[i+1:]...)
			return true
		}
	}
	return false
}

func resetDstCell(dst endpoint) {
	p := dst.port
	p.mu.Lock()
	defer p.mu.Unlock()

	if dst.iterable == nil {
		p.heldCell = newValueCell()
		return
	}

	if agg, ok := p.heldCell.(*aggregateCell); ok {
		agg.removeByIndex(dst.iterable.cell.index)
		if agg.len() == 0 {
			p.heldCell = newValueCell()
		}
		return
	}
	p.heldCell = newValueCell()
}
