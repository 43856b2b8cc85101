package core

// slot identifies which fan-in bucket a port's refs map is keyed by: the
// whole port (none) or a single element index.
type slot struct {
	hasIndex bool
	index    int
}

func wholeSlot() slot { return slot{} }

func indexSlot(i int) slot { return slot{hasIndex: true, index: i} }

// Reference is the symmetric per-edge record stored on both endpoints of a
// connection. Equality for disconnection purposes is (peer, index) only —
// the signals are deliberately excluded, so a reference built without
// signals still matches the one stored with them.
type Reference struct {
	Peer     *Port
	Index    *int
	Sent     *Signal
	Consumed *Signal
}

func sameTarget(peer *Port, index *int, other *Reference) bool {
	if other.Peer != peer {
		return false
	}
	if (other.Index == nil) != (index == nil) {
		return false
	}
	if other.Index != nil && *other.Index != *index {
		return false
	}
	return true
}
