//go:build linux

package led

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/sweeney/peer-beacon/internal/device"
)

// RealDriver drives a common-cathode RGB LED through three GPIO lines.
// The lines are binary, so any non-zero channel value lights that channel.
type RealDriver struct {
	chip  *gpiocdev.Chip
	red   *gpiocdev.Line
	green *gpiocdev.Line
	blue  *gpiocdev.Line
}

func NewRealDriver(chipName string, redPin, greenPin, bluePin int) (*RealDriver, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	d := &RealDriver{chip: chip}
	for _, req := range []struct {
		pin  int
		line **gpiocdev.Line
	}{
		{redPin, &d.red},
		{greenPin, &d.green},
		{bluePin, &d.blue},
	} {
		line, err := chip.RequestLine(req.pin, gpiocdev.AsOutput(0))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("request led pin %d: %w", req.pin, err)
		}
		*req.line = line
	}
	return d, nil
}

func (d *RealDriver) SetRGB(c device.RGB) error {
	for _, ch := range []struct {
		line  *gpiocdev.Line
		value uint8
	}{
		{d.red, c.R},
		{d.green, c.G},
		{d.blue, c.B},
	} {
		level := 0
		if ch.value > 0 {
			level = 1
		}
		if err := ch.line.SetValue(level); err != nil {
			return fmt.Errorf("set led line: %w", err)
		}
	}
	return nil
}

func (d *RealDriver) Close() error {
	var errs []error
	for _, line := range []*gpiocdev.Line{d.red, d.green, d.blue} {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
