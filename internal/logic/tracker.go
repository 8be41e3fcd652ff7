package logic

import (
	"fmt"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
	"github.com/sweeney/peer-beacon/internal/gps"
	"github.com/sweeney/peer-beacon/internal/telemetry"
)

// Tracker is the role that carries the GPS unit. It keeps the peak speed
// seen since the device was last switched on and advertises it as the
// beacon payload.
type Tracker struct {
	core        *Core
	readings    *gps.Slot
	maxSpeedMPS float32
}

func NewTracker(core *Core, readings *gps.Slot) *Tracker {
	return &Tracker{core: core, readings: readings}
}

func (t *Tracker) Run() error {
	return t.core.Run(Hooks{
		OnButtonPressed:     t.handleButtonPressed,
		OnDeviceFoundActive: t.handleDeviceFoundActive,
		Extra:               t.handleExtra,
	})
}

// handleButtonPressed starts a fresh peak on the off-to-on edge only.
// Switching off keeps the figure so a nearby relay can still pick it up.
func (t *Tracker) handleButtonPressed(c *Core) error {
	if !c.state.IsOn() {
		t.maxSpeedMPS = 0
		if c.stat != nil {
			c.stat.SetPeakSpeed(0)
		}
	}
	return c.ToggleOnOff()
}

// handleDeviceFoundActive folds any pending fix, but only on the edge
// into the active sub-state. Repeat sightings while already active are
// left to the position trigger.
func (t *Tracker) handleDeviceFoundActive(c *Core) error {
	if !c.state.IsOn() || c.state == device.OnActive {
		return nil
	}
	c.state = device.OnActive
	return t.fold(c)
}

func (t *Tracker) handleExtra(c *Core, set bus.Set) (bool, error) {
	if set.Has(bus.PositionDataAvailable) {
		return true, t.fold(c)
	}
	return false, nil
}

// fold consumes the pending fix, raises the peak if the fix beats it, and
// refreshes the advertised payload. No fix pending is not an error.
func (t *Tracker) fold(c *Core) error {
	r := t.readings.Take()
	if r == nil {
		return nil
	}
	if c.stat != nil {
		c.stat.SetFix(*r)
	}
	if r.SpeedMPS != nil {
		if s := float32(*r.SpeedMPS); s > t.maxSpeedMPS {
			t.maxSpeedMPS = s
			if c.stat != nil {
				c.stat.SetPeakSpeed(s)
			}
		}
	}
	var payload []byte
	if t.maxSpeedMPS > 0 {
		payload = telemetry.Encode(t.maxSpeedMPS)
	}
	if err := c.adv.SetPayload(payload); err != nil {
		return fmt.Errorf("updating beacon payload: %w", err)
	}
	return nil
}
