// Package led drives the RGB state lamp and the blink timer.
package led

import (
	"github.com/sweeney/peer-beacon/internal/device"
)

// Driver writes a color to the physical lamp. Implementations exist for
// real GPIO lines and for tests.
type Driver interface {
	SetRGB(device.RGB) error
	Close() error
}

// Indicator layers an on/off switch and a remembered color on top of a
// Driver. It is only ever touched from the control loop goroutine, so it
// carries no lock.
type Indicator struct {
	drv   Driver
	color device.RGB
	lit   bool
}

func NewIndicator(drv Driver) *Indicator {
	return &Indicator{drv: drv}
}

// SetColor records the color and reapplies it if the lamp is currently lit.
func (i *Indicator) SetColor(c device.RGB) error {
	i.color = c
	if i.lit {
		return i.drv.SetRGB(c)
	}
	return nil
}

func (i *Indicator) On() error {
	i.lit = true
	return i.drv.SetRGB(i.color)
}

func (i *Indicator) Off() error {
	i.lit = false
	return i.drv.SetRGB(device.Black)
}

func (i *Indicator) Toggle() error {
	if i.lit {
		return i.Off()
	}
	return i.On()
}

func (i *Indicator) Close() error {
	return i.drv.Close()
}
