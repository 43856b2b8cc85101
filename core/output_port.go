package core

import (
	"context"
	"fmt"
)

// OutputPort is a Port that can send a value to whichever InputPort(s) are
// connected to it.
type OutputPort struct {
	*Port
}

// newOutputPort is the package-internal constructor used by the builder.
func newOutputPort(p *Port) *OutputPort {
	return &OutputPort{Port: p}
}

// Send assigns value to the port, then blocks until every connected
// destination has consumed it. With no connections, Send assigns the value
// and returns immediately.
func (op *OutputPort) Send(ctx context.Context, value interface{}) error {
	if err := op.SetValue(value); err != nil {
		return err
	}

	refs := op.References()
	if len(refs) == 0 {
		return nil
	}

	for _, ref := range refs {
		ref.Consumed.Clear()
		ref.Sent.Set()

		dstParent := ref.Peer.Parent()
		op.parent.SetState(StateSendingParams,
			fmt.Sprintf("%s.%s -> %s.%s", op.parent.Name(), op.Name(), dstParent.Name(), ref.Peer.Name()))
		op.parent.Scheduler().CreateTaskIfNeeded(op.parent, dstParent)
	}

	sigs := make([]*Signal, 0, len(refs))
	for _, ref := range refs {
		sigs = append(sigs, ref.Consumed)
	}
	if err := awaitAll(ctx, sigs); err != nil {
		return err
	}

	for _, ref := range refs {
		peerParent := ref.Peer.Parent()
		if peerParent.State() != StateStoppedAtIter && peerParent.IsStopped() {
			return &ComponentStoppedError{State: peerParent.State()}
		}
	}

	return nil
}
