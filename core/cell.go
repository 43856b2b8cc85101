package core

import (
	"reflect"
	"sort"
	"sync"
)

// cell is the storage a port reads from. A connection rewires which cell a
// port uses; it never copies values. The three concrete kinds below are the
// tagged-union members described in the port model: a plain mutable slot, an
// indexed view over another cell, and an aggregator that composes several
// indexed views into one ordered list for a list-typed input.
type cell interface {
	isCell()
}

// valueCell is a single mutable slot holding either no value or a concrete
// value. Two ports may share one valueCell; identity, not content, is what
// connect/disconnect rewires.
type valueCell struct {
	mu    sync.Mutex
	value interface{}
	has   bool
}

func newValueCell() *valueCell {
	return &valueCell{}
}

func newValueCellWith(v interface{}) *valueCell {
	return &valueCell{value: v, has: true}
}

func (*valueCell) isCell() {}

func (c *valueCell) get() (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.has
}

func (c *valueCell) set(v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.has = true
}

// indexedCell is a view onto a backing cell, used two ways: to extract
// element index from a backing value that is itself a sequence (a
// subscriptable origin reading its own list), or to hold one whole
// contribution at a given slot when the backing is a scalar value owned by
// some other whole-port origin. When backing is itself an indexedCell, the
// nested index is ignored and the backing's own resolved value is returned
// directly (nesting deeper than this one extra hop is unsupported).
type indexedCell struct {
	mu      sync.Mutex
	backing cell
	index   int
}

func newIndexedCell(backing cell, index int) *indexedCell {
	return &indexedCell{backing: backing, index: index}
}

func (*indexedCell) isCell() {}

func (c *indexedCell) get() (interface{}, bool) {
	c.mu.Lock()
	backing := c.backing
	index := c.index
	c.mu.Unlock()

	switch b := backing.(type) {
	case *valueCell:
		v, ok := b.get()
		if !ok {
			return nil, false
		}
		if ic, isIndexed := v.(*indexedCell); isIndexed {
			return ic.get()
		}
		if seq, ok := asSequence(v); ok {
			return seq.Index(index).Interface(), true
		}
		// backing holds a single whole value contributed by a whole-port
		// origin (e.g. one producer's scalar feeding one slot of a
		// list-typed input): the index names this cell's placement in an
		// aggregator, not an offset into the value itself.
		return v, true
	case *indexedCell:
		return b.get()
	default:
		return nil, false
	}
}

func (c *indexedCell) setBacking(backing cell) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.backing = backing
}

// asSequence reports whether v is a slice or array, returning its
// reflect.Value for indexing if so. Used to tell apart a subscriptable
// origin's own list value (index into it) from a scalar whole value merely
// occupying one slot of a destination aggregator (return as-is).
func asSequence(v interface{}) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv, true
	}
	return reflect.Value{}, false
}

// aggregateCell composes multiple indexed views into one ordered-by-index
// list. It is the cell a list-typed input port holds once at least one of
// its elements has been connected individually.
type aggregateCell struct {
	mu    sync.Mutex
	items map[int]*indexedCell
}

func newAggregateCell() *aggregateCell {
	return &aggregateCell{items: make(map[int]*indexedCell)}
}

func (*aggregateCell) isCell() {}

func (c *aggregateCell) add(ic *indexedCell) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[ic.index] = ic
}

func (c *aggregateCell) removeByIndex(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, index)
}

func (c *aggregateCell) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// orderedValues returns the element values sorted by ascending index.
// Indices need not be contiguous; missing ones simply do not appear.
func (c *aggregateCell) orderedValues() []interface{} {
	c.mu.Lock()
	indices := make([]int, 0, len(c.items))
	items := make(map[int]*indexedCell, len(c.items))
	for idx, ic := range c.items {
		indices = append(indices, idx)
		items[idx] = ic
	}
	c.mu.Unlock()

	sort.Ints(indices)
	out := make([]interface{}, 0, len(indices))
	for _, idx := range indices {
		if v, ok := items[idx].get(); ok {
			out = append(out, v)
		}
	}
	return out
}
