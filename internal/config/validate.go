package config

import (
	"errors"
	"fmt"
)

// Validate checks the fully-assembled configuration, after any command
// line overrides have been applied.
func (c Config) Validate() error {
	b := c.Beacon

	if b.Name == "" {
		return errors.New("beacon name must not be empty")
	}
	for i := 0; i < len(b.Name); i++ {
		if b.Name[i] < 0x20 || b.Name[i] > 0x7e {
			return fmt.Errorf("beacon name contains non-printable byte %#x", b.Name[i])
		}
	}

	switch b.Role {
	case RoleTracker:
	case RoleRelay:
		if b.Report.URL == "" {
			return errors.New("relay role needs a report url")
		}
		if b.Report.Param == "" {
			return errors.New("relay role needs a report parameter name")
		}
	default:
		return fmt.Errorf("unknown role %q", b.Role)
	}

	if b.Button.Pin < 0 {
		return fmt.Errorf("button pin %d out of range", b.Button.Pin)
	}
	if b.Button.PollMs <= 0 || b.Button.DebounceMs <= 0 {
		return errors.New("button intervals must be positive")
	}

	pins := map[int]bool{}
	for _, pin := range []int{b.LED.RedPin, b.LED.GreenPin, b.LED.BluePin} {
		if pin < 0 {
			return fmt.Errorf("led pin %d out of range", pin)
		}
		if pins[pin] {
			return fmt.Errorf("led pin %d used twice", pin)
		}
		pins[pin] = true
	}
	if b.LED.BlinkHz <= 0 {
		return errors.New("blink rate must be positive")
	}

	if b.Scan.PeriodMs <= 0 || b.Scan.WindowMs <= 0 {
		return errors.New("scan intervals must be positive")
	}

	if b.Role == RoleTracker {
		if b.GPS.Device == "" {
			return errors.New("tracker role needs a gps device")
		}
		if b.GPS.Baud <= 0 {
			return errors.New("gps baud rate must be positive")
		}
	}
	return nil
}
