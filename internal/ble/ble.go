// Package ble provides BLE advertising and scanning behind a small adapter
// interface. The real implementation drives the host's Bluetooth stack; the
// fake implementation allows testing without a radio.
package ble

import "time"

// Observation is one advertisement seen during a scan. The radio stack
// splits manufacturer data into a 2-byte little-endian company identifier
// and the remainder; Vendor is nil when the advertisement carried no
// manufacturer data, non-nil (possibly empty) when it did.
type Observation struct {
	Name    string
	Company uint16
	Vendor  []byte
}

// Adapter abstracts the BLE stack.
type Adapter interface {
	// Advertise replaces the current advertisement with the given local
	// name and vendor data. A nil vendor omits the manufacturer data field.
	Advertise(name string, vendor []byte) error

	// Scan watches advertisements for up to window, invoking fn for each
	// observation. The scan stops early when fn returns true.
	Scan(window time.Duration, fn func(Observation) bool) error
}

// Name suffixes appended to the application name, signalling on/off state
// to peer scanners. One name per role; this is a convention, not a device
// registry.
const (
	ActiveSuffix   = "-Active"
	InactiveSuffix = "-Inactive"
)
