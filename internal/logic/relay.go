package logic

import (
	"fmt"
	"log"

	"github.com/sweeney/peer-beacon/internal/device"
	"github.com/sweeney/peer-beacon/internal/telemetry"
)

// Relay is the stationary role. When an active tracker comes into range
// it decodes the speed payload the scanner captured and reports it.
type Relay struct {
	core     *Core
	payloads *device.PayloadSlot
	reporter Reporter
}

func NewRelay(core *Core, payloads *device.PayloadSlot, reporter Reporter) *Relay {
	return &Relay{core: core, payloads: payloads, reporter: reporter}
}

func (r *Relay) Run() error {
	return r.core.Run(Hooks{
		OnDeviceFoundActive: r.handleDeviceFoundActive,
	})
}

// handleDeviceFoundActive relays only on the edge into the active
// sub-state, so one pass of a tracker produces one report.
func (r *Relay) handleDeviceFoundActive(c *Core) error {
	if !c.state.IsOn() || c.state == device.OnActive {
		return nil
	}
	c.state = device.OnActive
	return r.relay()
}

// relay consumes the captured payload and posts it. A sighting without a
// payload happens when a tracker never got a fix; that is worth a line in
// the log but nothing more.
func (r *Relay) relay() error {
	data := r.payloads.Take()
	if data == nil {
		log.Printf("active device nearby, no speed payload")
		return nil
	}
	speed, err := telemetry.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding speed payload: %w", err)
	}
	kmh := telemetry.KMH(speed)
	log.Printf("relaying peak speed %.2f km/h", kmh)
	if err := r.reporter.Report(kmh); err != nil {
		return fmt.Errorf("reporting speed: %w", err)
	}
	return nil
}
