package core

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"
)

// PrintToggle gates LogPortState's console output. Off by default so
// attaching state logging to a port stays silent until a caller flips it on
// for a debugging session.
const PrintToggle = false

// PortStateDump renders a port's current cell kind, resolved value and
// reference count as a table, the same kind of cycle-state summary a CGRA
// tile's register/buffer dump produces for a PE.
func PortStateDump(p *Port) string {
	p.mu.Lock()
	value, hasValue := p.resolveLocked()
	refCount := len(p.referencesLocked())
	kind := cellKindName(p.heldCell)
	p.mu.Unlock()

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Port %s", p.name))
	t.AppendHeader(table.Row{"Type", "Cell", "Value", "HasValue", "References"})
	t.AppendRow(table.Row{p.declaredType, kind, fmt.Sprintf("%v", value), hasValue, refCount})
	return t.Render()
}

func cellKindName(c cell) string {
	switch c.(type) {
	case *valueCell:
		return "value"
	case *indexedCell:
		return "indexed"
	case *aggregateCell:
		return "aggregate"
	default:
		return "none"
	}
}

// LogPortState prints PortStateDump's rendering to stdout when PrintToggle
// is enabled.
func LogPortState(p *Port) {
	if !PrintToggle {
		return
	}
	fmt.Println(PortStateDump(p))
}

// PortStateHook is a sim.Hook that logs a port's rendered state table every
// time it fires, for attaching to a port's own instrumentation points
// (HookPosPortValueSet, HookPosPortValueReceived, ...) during debugging.
type PortStateHook struct{}

// Func implements sim.Hook.
func (PortStateHook) Func(ctx sim.HookCtx) {
	p, ok := ctx.Domain.(*Port)
	if !ok {
		return
	}
	LogPortState(p)
}
