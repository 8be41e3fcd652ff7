package device

import "sync"

// Gate mirrors the control core's on/off state for the producers, so they
// can suppress their own work while the device is logically off without
// reaching into the core's state. Written by the button producer, read by
// the scanner and position sensor. A one-iteration lag behind the core's
// state is tolerated.
type Gate struct {
	mu sync.Mutex
	on bool
}

// NewGate creates a Gate in the given position.
func NewGate(on bool) *Gate {
	return &Gate{on: on}
}

// On reports whether the gate is open.
func (g *Gate) On() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.on
}

// Toggle flips the gate and returns the new position.
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.on = !g.on
	return g.on
}
