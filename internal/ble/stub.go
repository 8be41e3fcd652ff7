//go:build !linux

package ble

import (
	"errors"
	"time"
)

// RealAdapter is not available on non-Linux platforms.
type RealAdapter struct{}

// NewRealAdapter returns an error on non-Linux platforms.
func NewRealAdapter() (*RealAdapter, error) {
	return nil, errors.New("ble: not supported on this platform (requires Linux)")
}

// Advertise is not implemented on non-Linux platforms.
func (r *RealAdapter) Advertise(name string, vendor []byte) error {
	return errors.New("ble: not supported")
}

// Scan is not implemented on non-Linux platforms.
func (r *RealAdapter) Scan(window time.Duration, fn func(Observation) bool) error {
	return errors.New("ble: not supported")
}
