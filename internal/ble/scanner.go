package ble

import (
	"strings"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
)

// MatchFunc classifies an advertised peer name, returning the trigger it
// should raise and whether it matched at all.
type MatchFunc func(name string) (bus.Trigger, bool)

// DefaultMatch matches peers by the name suffix convention.
func DefaultMatch(name string) (bus.Trigger, bool) {
	switch {
	case strings.HasSuffix(name, ActiveSuffix):
		return bus.DeviceFoundActive, true
	case strings.HasSuffix(name, InactiveSuffix):
		return bus.DeviceFoundInactive, true
	}
	return 0, false
}

// Default scan timings.
const (
	DefaultPeriod = time.Second
	DefaultWindow = time.Second
)

// ScanConfig configures the scanner's matching and timing.
type ScanConfig struct {
	Match MatchFunc

	// NotFound is emitted when a window ends without a match.
	NotFound bus.Trigger

	// PayloadTrigger marks the match whose vendor data carries the
	// telemetry payload.
	PayloadTrigger bus.Trigger

	Period time.Duration
	Window time.Duration
}

// Scanner is the radio-scanner producer: on a fixed period it runs one
// bounded scan window and raises the matched trigger, or NotFound. Cycles
// are skipped entirely while the gate is closed.
type Scanner struct {
	adapter  Adapter
	notifier *bus.Notifier
	gate     *device.Gate
	payloads *device.PayloadSlot
	cfg      ScanConfig

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// NewScanner creates a Scanner. Zero durations fall back to the defaults.
func NewScanner(adapter Adapter, n *bus.Notifier, g *device.Gate, payloads *device.PayloadSlot, cfg ScanConfig) *Scanner {
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	return &Scanner{
		adapter:  adapter,
		notifier: n,
		gate:     g,
		payloads: payloads,
		cfg:      cfg,
		sleep:    time.Sleep,
	}
}

// Run scans forever. It returns only on an unrecoverable error.
func (s *Scanner) Run() error {
	for {
		if err := s.cycle(); err != nil {
			return err
		}
	}
}

// cycle waits out the period, then runs one gated scan window.
func (s *Scanner) cycle() error {
	s.sleep(s.cfg.Period)

	if !s.gate.On() {
		return nil
	}

	trigger, err := s.scanOnce()
	if err != nil {
		return err
	}
	return s.notifier.Notify(trigger)
}

// scanOnce runs one bounded scan window and returns the trigger to emit.
// The first matching name stops the scan early. A payload-carrying match
// stores the reconstructed vendor bytes in the payload slot.
func (s *Scanner) scanOnce() (bus.Trigger, error) {
	found := s.cfg.NotFound
	err := s.adapter.Scan(s.cfg.Window, func(o Observation) bool {
		trigger, ok := s.cfg.Match(o.Name)
		if !ok {
			return false
		}
		if trigger == s.cfg.PayloadTrigger && o.Vendor != nil {
			// The stack stripped the 2-byte company identifier off the
			// vendor data; put it back in front, little-endian.
			full := make([]byte, 0, 2+len(o.Vendor))
			full = append(full, byte(o.Company), byte(o.Company>>8))
			full = append(full, o.Vendor...)
			s.payloads.Put(full)
		}
		found = trigger
		return true
	})
	if err != nil {
		return 0, err
	}
	return found, nil
}
