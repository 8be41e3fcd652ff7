// Package logic runs the control loop that turns drained triggers into
// state transitions and drives the lamp, the blinker and the beacon.
// Everything hardware-shaped is behind a small interface so the loop can
// be exercised entirely with fakes.
package logic

import (
	"fmt"
	"log"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
	"github.com/sweeney/peer-beacon/internal/status"
)

// Advertiser is the outward-facing half of the beacon.
type Advertiser interface {
	Toggle() error
	SetPayload([]byte) error
}

// Indicator is the state lamp.
type Indicator interface {
	SetColor(device.RGB) error
	On() error
	Off() error
	Toggle() error
}

// Blinker is the tick source behind the blinking lamp states.
type Blinker interface {
	On()
	Off()
}

// Reporter delivers a relayed speed figure, in km/h, to wherever the
// operator pointed it.
type Reporter interface {
	Report(kmh float64) error
}

// Hooks let a role override parts of the trigger handling. A nil hook
// falls back to the shared behavior.
type Hooks struct {
	OnButtonPressed     func(*Core) error
	OnDeviceFoundActive func(*Core) error

	// Extra gets a chance at trigger sets the shared chain does not
	// recognize. It reports whether it handled the set.
	Extra func(*Core, bus.Set) (bool, error)
}

// Core owns the device state and the main loop. It must only be run from
// a single goroutine.
type Core struct {
	state   device.State
	bus     *bus.Bus
	adv     Advertiser
	ind     Indicator
	blinker Blinker
	stat    *status.Tracker
}

// NewCore wires the loop to its outputs and projects the initial state.
func NewCore(initial device.State, b *bus.Bus, adv Advertiser, ind Indicator, blk Blinker) (*Core, error) {
	c := &Core{state: initial, bus: b, adv: adv, ind: ind, blinker: blk}
	if err := c.project(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetStatus attaches the diagnostics tracker. Optional.
func (c *Core) SetStatus(stat *status.Tracker) {
	c.stat = stat
	stat.SetState(c.state)
}

// State reports the current device state.
func (c *Core) State() device.State {
	return c.state
}

// Run drains the bus forever, handling each trigger set and projecting
// the resulting state. It returns only on error.
func (c *Core) Run(h Hooks) error {
	for {
		set := c.bus.Collect()
		if c.stat != nil {
			c.stat.Count(set)
		}
		if err := c.handle(set, h); err != nil {
			return err
		}
		if err := c.project(); err != nil {
			return err
		}
	}
}

// handle dispatches exactly one handler per drained set. Triggers have a
// fixed precedence; when several are pending only the strongest one acts
// and the rest are dropped with the drain.
func (c *Core) handle(set bus.Set, h Hooks) error {
	switch {
	case set.Has(bus.ButtonPressed):
		if h.OnButtonPressed != nil {
			return h.OnButtonPressed(c)
		}
		return c.ToggleOnOff()
	case set.Has(bus.DeviceFoundActive):
		if h.OnDeviceFoundActive != nil {
			return h.OnDeviceFoundActive(c)
		}
		c.EnterActive()
		return nil
	case set.Has(bus.DeviceFoundInactive):
		if c.state.IsOn() {
			c.state = device.OnInactive
		}
		return nil
	case set.Has(bus.DeviceNotFound):
		if c.state.IsOn() {
			c.state = device.On
		}
		return nil
	case set.Has(bus.TimerTicked):
		if c.state.Blinking() {
			return c.ind.Toggle()
		}
		return nil
	default:
		if h.Extra != nil {
			handled, err := h.Extra(c, set)
			if err != nil {
				return err
			}
			if handled {
				return nil
			}
		}
		return fmt.Errorf("unhandled triggers: %s", set)
	}
}

// ToggleOnOff flips the device between its off and on halves and toggles
// the beacon name to match.
func (c *Core) ToggleOnOff() error {
	next := c.state.Toggle()
	log.Printf("button: %s -> %s", c.state, next)
	c.state = next
	return c.adv.Toggle()
}

// EnterActive moves an on device into the active-peer sub-state. Off
// devices ignore peers entirely.
func (c *Core) EnterActive() {
	if c.state.IsOn() {
		c.state = device.OnActive
	}
}

// project makes the outputs agree with the state: color from the state,
// blinker running only for the peer sub-states, lamp solid otherwise.
func (c *Core) project() error {
	if err := c.ind.SetColor(c.state.Color()); err != nil {
		return fmt.Errorf("setting lamp color: %w", err)
	}
	if c.state.Blinking() {
		c.blinker.On()
	} else {
		c.blinker.Off()
		if err := c.ind.On(); err != nil {
			return fmt.Errorf("lighting lamp: %w", err)
		}
	}
	if c.stat != nil {
		c.stat.SetState(c.state)
	}
	return nil
}
