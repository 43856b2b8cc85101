package core

import (
	"context"
	"fmt"
	"time"

	"github.com/sarchlab/akita/v4/sim"
)

// stoppingIterationPollInterval bounds each poll of a single reference's
// sent signal while the owning component runs under bounded iteration. It
// mirrors the 100ms poll the rendezvous protocol was originally built on;
// kept short enough to stay responsive, long enough not to busy-spin.
const stoppingIterationPollInterval = 100 * time.Millisecond

// InputPort is a Port that can receive a value handed to it by whichever
// OutputPort(s) are connected to it.
type InputPort struct {
	*Port
}

// newInputPort is the package-internal constructor used by the builder.
func newInputPort(p *Port) *InputPort {
	return &InputPort{Port: p}
}

// Receive blocks until every source connected to this port has a value
// ready, then returns the resolved value. With no connections it returns
// whatever value the port currently holds (nil if it holds none, with a nil
// error) without blocking.
//
// Under normal (unbounded) mode every reference is awaited concurrently.
// Under bounded-iteration mode (StoppingIteration() != 0) each reference is
// polled with a short timeout so the scheduler gets repeated chances to
// lazily (re)create upstream tasks; this is slower and intended for
// debugging/bounded runs, not steady-state execution.
func (ip *InputPort) Receive(ctx context.Context) (interface{}, error) {
	refs := ip.References()
	if len(refs) == 0 {
		ip.parent.SetState(StateRunning, "")
		v, _ := ip.Value()
		return v, nil
	}

	for _, ref := range refs {
		oriParent := ref.Peer.Parent()
		ip.parent.SetState(StateReceivingParams,
			fmt.Sprintf("%s.%s -> %s.%s", oriParent.Name(), ref.Peer.Name(), ip.parent.Name(), ip.Name()))
		ip.parent.Scheduler().CreateTaskIfNeeded(ip.parent, oriParent)
	}

	if ip.parent.StoppingIteration() == 0 {
		sigs := make([]*Signal, 0, len(refs))
		for _, ref := range refs {
			sigs = append(sigs, ref.Sent)
		}
		if err := awaitAll(ctx, sigs); err != nil {
			return nil, err
		}
	} else if err := ip.pollUntilAllSent(ctx, refs); err != nil {
		return nil, err
	}

	for _, ref := range refs {
		peerParent := ref.Peer.Parent()
		if peerParent.State() != StateStoppedAtIter && peerParent.IsStopped() {
			return nil, &ComponentStoppedError{State: peerParent.State()}
		}
	}

	value, _ := ip.Value()

	for _, ref := range refs {
		ref.Consumed.Set()
		ref.Sent.Clear()
	}
	ip.parent.SetState(StateRunning, "")

	ip.InvokeHook(sim.HookCtx{Domain: ip.Port, Pos: HookPosPortValueReceived, Item: value})
	return value, nil
}

func (ip *InputPort) pollUntilAllSent(ctx context.Context, refs []*Reference) error {
	for {
		sent := 0
		for _, ref := range refs {
			ip.parent.Scheduler().CreateTaskIfNeeded(ip.parent, ref.Peer.Parent())

			pollCtx, cancel := context.WithTimeout(ctx, stoppingIterationPollInterval)
			err := ref.Sent.Await(pollCtx)
			cancel()
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
		for _, ref := range refs {
			if ref.Sent.IsSet() {
				sent++
			}
		}
		if sent >= len(refs) {
			return nil
		}
	}
}
