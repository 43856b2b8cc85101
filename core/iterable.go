package core

// IterableParam is a transient handle over a single element of a
// subscriptable port, produced by Port.Select. It exists only to be passed
// into a Connect/Disconnect call (or its own Connect/Disconnect forwarders);
// it holds no independent lifetime beyond that.
type IterableParam struct {
	port *Port
	cell *indexedCell
}

// Port returns the port the handle was selected from.
func (h *IterableParam) Port() *Port { return h.port }

// Index returns the element index the handle refers to.
func (h *IterableParam) Index() int { return h.cell.index }

// Value resolves through the handle's indexed cell. When the port's held
// cell is an aggregator (i.e. other elements have also been wired
// individually), this still reports only this handle's own element; use
// Port.Value on the owning port to read the whole assembled list.
func (h *IterableParam) Value() (interface{}, bool) {
	return h.cell.get()
}

// RefCounter returns the number of references attached to this handle's
// slot on the owning port.
func (h *IterableParam) RefCounter() int {
	i := h.cell.index
	return h.port.RefCounter(&i)
}

// Connect wires this handle (as the origin) to dst, which must be a *Port
// or *IterableParam.
func (h *IterableParam) Connect(dst interface{}) error {
	return connect(h, dst)
}

// Disconnect tears down the connection from this handle (as the origin) to
// dst.
func (h *IterableParam) Disconnect(dst interface{}) error {
	return disconnect(h, dst)
}
