package ble

import "time"

// FakeAdapter is a test double that records advertisements and replays
// scripted observations to each scan.
type FakeAdapter struct {
	// Names and Vendors record each Advertise call, in order. A nil entry
	// in Vendors means the advertisement carried no vendor data.
	Names   []string
	Vendors [][]byte

	// Observations are replayed to each Scan call.
	Observations []Observation

	// Scans counts Scan calls.
	Scans int

	// AdvertiseError, if set, will be returned by Advertise.
	AdvertiseError error

	// ScanError, if set, will be returned by Scan.
	ScanError error
}

// NewFakeAdapter creates an empty FakeAdapter.
func NewFakeAdapter() *FakeAdapter {
	return &FakeAdapter{}
}

// Advertise records the advertisement.
func (f *FakeAdapter) Advertise(name string, vendor []byte) error {
	if f.AdvertiseError != nil {
		return f.AdvertiseError
	}
	f.Names = append(f.Names, name)
	if vendor == nil {
		f.Vendors = append(f.Vendors, nil)
	} else {
		f.Vendors = append(f.Vendors, append([]byte(nil), vendor...))
	}
	return nil
}

// Scan replays the scripted observations until fn stops it.
func (f *FakeAdapter) Scan(window time.Duration, fn func(Observation) bool) error {
	f.Scans++
	if f.ScanError != nil {
		return f.ScanError
	}
	for _, o := range f.Observations {
		if fn(o) {
			break
		}
	}
	return nil
}

// LastName returns the most recently advertised name, or "".
func (f *FakeAdapter) LastName() string {
	if len(f.Names) == 0 {
		return ""
	}
	return f.Names[len(f.Names)-1]
}

// LastVendor returns the most recently advertised vendor data.
func (f *FakeAdapter) LastVendor() []byte {
	if len(f.Vendors) == 0 {
		return nil
	}
	return f.Vendors[len(f.Vendors)-1]
}
