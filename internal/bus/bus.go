// Package bus provides the trigger taxonomy and the event bus that merges
// asynchronous producer events into a single pending bitmask.
//
// The bus deliberately coalesces: a trigger raised several times between two
// drains is observed once. The control loop only needs to know which kinds
// of things happened since it last looked, not how many or in what order.
package bus

import (
	"errors"
	"strings"
	"sync"
)

// Trigger is one kind of discrete event the control core can react to.
// Each trigger owns a unique power-of-two bit in the pending mask; the set
// is closed and known at build time.
type Trigger uint32

const (
	ButtonPressed         Trigger = 1 << 0
	TimerTicked           Trigger = 1 << 1
	DeviceFoundActive     Trigger = 1 << 2
	DeviceFoundInactive   Trigger = 1 << 3
	DeviceNotFound        Trigger = 1 << 4
	PositionDataAvailable Trigger = 1 << 5
)

// Triggers lists every known trigger in bit order.
var Triggers = []Trigger{
	ButtonPressed,
	TimerTicked,
	DeviceFoundActive,
	DeviceFoundInactive,
	DeviceNotFound,
	PositionDataAvailable,
}

func (t Trigger) String() string {
	switch t {
	case ButtonPressed:
		return "ButtonPressed"
	case TimerTicked:
		return "TimerTicked"
	case DeviceFoundActive:
		return "DeviceFoundActive"
	case DeviceFoundInactive:
		return "DeviceFoundInactive"
	case DeviceNotFound:
		return "DeviceNotFound"
	case PositionDataAvailable:
		return "PositionDataAvailable"
	}
	return "Unknown"
}

// Set is a drained collection of pending triggers. A trigger is either in
// the set or not; the bus keeps no multiplicity.
type Set uint32

// Has reports whether the trigger's bit is in the set.
func (s Set) Has(t Trigger) bool {
	return s&Set(t) != 0
}

// Empty reports whether no bits are set.
func (s Set) Empty() bool {
	return s == 0
}

func (s Set) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, t := range Triggers {
		if s.Has(t) {
			names = append(names, t.String())
		}
	}
	if rest := s &^ known(); rest != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}

func known() Set {
	var m Set
	for _, t := range Triggers {
		m |= Set(t)
	}
	return m
}

// ErrZeroTrigger is returned by Notify for the reserved zero value.
var ErrZeroTrigger = errors.New("bus: zero-valued trigger")

// Bus is the single shared wait-point between the producers and the control
// core. Many producer handles, one consumer.
type Bus struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending Set
}

// New creates an empty Bus.
func New() *Bus {
	b := &Bus{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Notifier returns a producer handle bound to the bus. Handles may be
// shared freely across goroutines.
func (b *Bus) Notifier() *Notifier {
	return &Notifier{bus: b}
}

// Collect blocks the calling goroutine until at least one trigger is
// pending, then atomically reads and clears the mask. Bits set concurrently
// with the clear are never lost: Notify's OR and the read-and-clear run
// under the same lock.
func (b *Bus) Collect() Set {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.pending == 0 {
		b.cond.Wait()
	}
	s := b.pending
	b.pending = 0
	return s
}

// Notifier is a producer handle for raising triggers on the bus.
type Notifier struct {
	bus *Bus
}

// Notify merges the trigger's bit into the pending mask and wakes the
// consumer if it is blocked. It never blocks, and fails only for the
// reserved zero value.
func (n *Notifier) Notify(t Trigger) error {
	if t == 0 {
		return ErrZeroTrigger
	}
	b := n.bus
	b.mu.Lock()
	b.pending |= Set(t)
	b.mu.Unlock()
	b.cond.Signal()
	return nil
}
