//go:build !linux

package button

import "errors"

// RealInput is not available on non-Linux platforms.
type RealInput struct{}

// NewRealInput returns an error on non-Linux platforms.
func NewRealInput(chipName string, pin int) (*RealInput, error) {
	return nil, errors.New("button: not supported on this platform (requires Linux)")
}

// Pressed is not implemented on non-Linux platforms.
func (r *RealInput) Pressed() (bool, error) {
	return false, errors.New("button: not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *RealInput) Close() error {
	return nil
}
