//go:build linux

package ble

import (
	"fmt"
	"time"

	"tinygo.org/x/bluetooth"
)

// RealAdapter drives the host Bluetooth stack.
type RealAdapter struct {
	adapter *bluetooth.Adapter
	adv     *bluetooth.Advertisement
	started bool
}

// NewRealAdapter enables the default Bluetooth adapter.
func NewRealAdapter() (*RealAdapter, error) {
	a := bluetooth.DefaultAdapter
	if err := a.Enable(); err != nil {
		return nil, fmt.Errorf("enable bluetooth: %w", err)
	}
	return &RealAdapter{adapter: a, adv: a.DefaultAdvertisement()}, nil
}

// Advertise reconfigures and (re)starts the advertisement. The first two
// vendor bytes travel as the manufacturer data company identifier; the
// scanner on the other side reassembles them.
func (r *RealAdapter) Advertise(name string, vendor []byte) error {
	if r.started {
		if err := r.adv.Stop(); err != nil {
			return fmt.Errorf("stop advertising: %w", err)
		}
		r.started = false
	}

	opts := bluetooth.AdvertisementOptions{LocalName: name}
	if vendor != nil {
		if len(vendor) < 2 {
			return fmt.Errorf("vendor data too short for company identifier: %d bytes", len(vendor))
		}
		opts.ManufacturerData = []bluetooth.ManufacturerDataElement{{
			CompanyID: uint16(vendor[0]) | uint16(vendor[1])<<8,
			Data:      vendor[2:],
		}}
	}

	if err := r.adv.Configure(opts); err != nil {
		return fmt.Errorf("configure advertisement: %w", err)
	}
	if err := r.adv.Start(); err != nil {
		return fmt.Errorf("start advertising: %w", err)
	}
	r.started = true
	return nil
}

// Scan runs one bounded scan window. The underlying Scan call blocks until
// StopScan, so a timer bounds the window.
func (r *RealAdapter) Scan(window time.Duration, fn func(Observation) bool) error {
	timer := time.AfterFunc(window, func() {
		r.adapter.StopScan()
	})
	defer timer.Stop()

	err := r.adapter.Scan(func(a *bluetooth.Adapter, res bluetooth.ScanResult) {
		obs := Observation{Name: res.LocalName()}
		if md := res.ManufacturerData(); len(md) > 0 {
			obs.Company = md[0].CompanyID
			obs.Vendor = md[0].Data
			if obs.Vendor == nil {
				obs.Vendor = []byte{}
			}
		}
		if fn(obs) {
			a.StopScan()
		}
	})
	if err != nil {
		return fmt.Errorf("ble scan: %w", err)
	}
	return nil
}
