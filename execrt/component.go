// Package execrt is a minimal reference runtime for core.Component and
// core.Scheduler: goroutine-backed task scheduling and state bookkeeping
// good enough to drive the tests. Component lifecycle beyond
// what the rendezvous protocol reads (state, stopped, stopping iteration)
// is deliberately out of scope for this package too; it exists to exercise
// core, not to replace a full simulation engine.
package execrt

import (
	"sync"

	"github.com/flowlattice/paramcore/core"
)

// ComponentBase implements the bookkeeping half of core.Component. Embed it
// in a concrete component and add a Run method to make it schedulable by
// Scheduler.
type ComponentBase struct {
	mu                sync.Mutex
	name              string
	state             core.State
	stopped           bool
	stoppingIteration int
	scheduler         *Scheduler
}

// NewComponentBase builds a component bookkeeping block in StateRunning,
// registered with the given scheduler.
func NewComponentBase(name string, scheduler *Scheduler) *ComponentBase {
	return &ComponentBase{name: name, scheduler: scheduler}
}

// Name returns the component's name.
func (c *ComponentBase) Name() string { return c.name }

// State returns the component's current state.
func (c *ComponentBase) State() core.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetState updates the component's state. label is accepted for parity
// with the rendezvous call sites that pass a descriptive edge label; this
// reference implementation does not record it.
func (c *ComponentBase) SetState(s core.State, _ string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// Stop marks the component as terminally stopped, for reasons other than
// reaching its stopping iteration (core.StateStoppedAtIter is set via
// SetState instead, so peers can tell the two apart).
func (c *ComponentBase) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
}

// IsStopped reports whether the component has been stopped, including
// having reached StateStoppedAtIter.
func (c *ComponentBase) IsStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped || c.state == core.StateStoppedAtIter
}

// SetStoppingIteration sets the bounded-iteration counter Receive consults
// to switch from the fast concurrent-await path to the polling path.
func (c *ComponentBase) SetStoppingIteration(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stoppingIteration = n
}

// StoppingIteration returns the bounded-iteration counter; 0 means
// unbounded (normal) wait mode.
func (c *ComponentBase) StoppingIteration() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stoppingIteration
}

// Scheduler returns the scheduler this component was registered with.
func (c *ComponentBase) Scheduler() core.Scheduler { return c.scheduler }
