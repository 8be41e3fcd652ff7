//go:build !linux

package led

import (
	"errors"

	"github.com/sweeney/peer-beacon/internal/device"
)

// RealDriver is not available on non-Linux platforms.
type RealDriver struct{}

// NewRealDriver returns an error on non-Linux platforms.
func NewRealDriver(chipName string, redPin, greenPin, bluePin int) (*RealDriver, error) {
	return nil, errors.New("led: not supported on this platform (requires Linux)")
}

// SetRGB is not implemented on non-Linux platforms.
func (d *RealDriver) SetRGB(device.RGB) error {
	return errors.New("led: not supported")
}

// Close is not implemented on non-Linux platforms.
func (d *RealDriver) Close() error {
	return nil
}
