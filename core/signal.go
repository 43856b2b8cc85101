package core

import (
	"context"
	"sync"
)

// Signal is a level-triggered event: Set makes every current and future
// Await call return immediately until the next Clear. It is the Go
// equivalent of asyncio.Event and is the rendezvous primitive an edge
// reference uses for its sent/consumed pair.
type Signal struct {
	mu  sync.Mutex
	set bool
	ch  chan struct{}
}

// NewSignal returns a Signal in the cleared state.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Set marks the signal. Idempotent.
func (s *Signal) Set() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		return
	}
	s.set = true
	close(s.ch)
}

// Clear unmarks the signal, so that future Await calls block again until
// the next Set. Idempotent.
func (s *Signal) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return
	}
	s.set = false
	s.ch = make(chan struct{})
}

// IsSet reports whether the signal is currently set.
func (s *Signal) IsSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}

// Await blocks until the signal is set or ctx is done, whichever happens
// first.
func (s *Signal) Await(ctx context.Context) error {
	s.mu.Lock()
	if s.set {
		s.mu.Unlock()
		return nil
	}
	ch := s.ch
	s.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// awaitAll blocks until every signal is set or ctx is done. Signals are
// awaited concurrently so that one slow edge does not delay observing the
// others; it mirrors asyncio.gather over a set of event.wait() calls.
func awaitAll(ctx context.Context, sigs []*Signal) error {
	if len(sigs) == 0 {
		return nil
	}
	errCh := make(chan error, len(sigs))
	for _, s := range sigs {
		s := s
		go func() { errCh <- s.Await(ctx) }()
	}
	for range sigs {
		if err := <-errCh; err != nil {
			return err
		}
	}
	return nil
}
