package core

import "github.com/sarchlab/akita/v4/sim"

// Hook positions instrumentation can subscribe to on a Port, mirroring the
// way the wider simulation stack marks message send/receive points.
var (
	// HookPosPortValueSet marks when a value is written into a port's cell,
	// either via Send or a direct value assignment.
	HookPosPortValueSet = &sim.HookPos{Name: "Port Value Set"}
	// HookPosPortValueReceived marks when Receive on a connected input
	// completes a rendezvous and returns the value to its caller. Receive on
	// an unconnected input does not fire it.
	HookPosPortValueReceived = &sim.HookPos{Name: "Port Value Received"}
	// HookPosPortConnect marks when a connection is established on a port.
	HookPosPortConnect = &sim.HookPos{Name: "Port Connect"}
	// HookPosPortDisconnect marks when a connection is torn down on a port.
	HookPosPortDisconnect = &sim.HookPos{Name: "Port Disconnect"}
)
