package execrt

import (
	"context"
	"sync"

	"github.com/flowlattice/paramcore/core"
)

// Runnable is implemented by any component that has work to do, the
// equivalent of the original forward() coroutine each component supplied.
type Runnable interface {
	core.Component
	Run(ctx context.Context) error
}

// Scheduler lazily starts one goroutine per component the first time it is
// needed as a peer, and restarts it once it has exited. The restart is what
// CreateTaskIfNeeded is for: under bounded-iteration mode a peer that
// satisfied a small downstream iteration count may have already returned,
// and a different downstream consumer asking for more iterations needs it
// running again.
type Scheduler struct {
	ctx context.Context

	mu    sync.Mutex
	tasks map[core.Component]*taskHandle

	errOnce sync.Once
	errCh   chan error
}

type taskHandle struct {
	done chan struct{}
}

// NewScheduler builds a scheduler whose spawned goroutines are bound to
// ctx: canceling ctx tears every running task down.
func NewScheduler(ctx context.Context) *Scheduler {
	return &Scheduler{
		ctx:   ctx,
		tasks: make(map[core.Component]*taskHandle),
		errCh: make(chan error, 1),
	}
}

// CreateTaskIfNeeded starts peer's Run loop if it is not already running.
// self is accepted for parity with the protocol's call sites (some
// schedulers use it to avoid a component scheduling itself); this
// implementation does not need it.
func (s *Scheduler) CreateTaskIfNeeded(_, peer core.Component) {
	r, ok := peer.(Runnable)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if h, exists := s.tasks[peer]; exists {
		select {
		case <-h.done:
			// previous run exited; fall through and restart it.
		default:
			return
		}
	}

	h := &taskHandle{done: make(chan struct{})}
	s.tasks[peer] = h
	go func() {
		defer close(h.done)
		if err := r.Run(s.ctx); err != nil && s.ctx.Err() == nil {
			s.errOnce.Do(func() { s.errCh <- err })
		}
	}()
}

// Errs returns a channel that receives the first error any scheduled
// component's Run returned, if any.
func (s *Scheduler) Errs() <-chan error { return s.errCh }
