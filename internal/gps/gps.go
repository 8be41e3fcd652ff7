// Package gps reads the positioning receiver's serial byte stream, parses
// NMEA sentences and publishes the latest fix. Only the most recent unread
// reading is kept: freshness over completeness.
package gps

import (
	"sync"

	nmea "github.com/adrianmo/go-nmea"
)

// knotsToMPS converts speed over ground from knots to meters per second.
const knotsToMPS = 1852.0 / 3600.0

// Reading is the latest position fix: coordinates plus the instantaneous
// speed when the sentence carried one.
type Reading struct {
	Lat      float64
	Lon      float64
	SpeedMPS *float64
}

// Slot holds at most one unread Reading. The sensor overwrites it; the
// control core takes and clears it. Older unread readings are silently
// discarded.
type Slot struct {
	mu      sync.Mutex
	reading *Reading
}

// Put stores the reading, replacing any unread one.
func (s *Slot) Put(r Reading) {
	s.mu.Lock()
	s.reading = &r
	s.mu.Unlock()
}

// Take returns the stored reading and clears the slot, or nil if empty.
func (s *Slot) Take() *Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.reading
	s.reading = nil
	return r
}

// parseLine extracts a fix from one NMEA sentence, or nil if the sentence
// is not a valid RMC.
func parseLine(line string) *Reading {
	sent, err := nmea.Parse(line)
	if err != nil {
		return nil
	}
	rmc, ok := sent.(nmea.RMC)
	if !ok || rmc.Validity != nmea.ValidRMC {
		return nil
	}
	speed := rmc.Speed * knotsToMPS
	return &Reading{Lat: rmc.Latitude, Lon: rmc.Longitude, SpeedMPS: &speed}
}
