package button

import "errors"

// FakeInput is a test double that returns scripted pressed states.
type FakeInput struct {
	// Samples contains scripted pressed values. Each call to Pressed
	// consumes the next sample; the last one repeats once exhausted.
	Samples []bool

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// PressError, if set, will be returned by Pressed
	PressError error
}

// NewFakeInput creates a FakeInput with the given samples.
func NewFakeInput(samples []bool) *FakeInput {
	return &FakeInput{Samples: samples}
}

// Pressed returns the next scripted sample.
func (f *FakeInput) Pressed() (bool, error) {
	if f.PressError != nil {
		return false, f.PressError
	}

	if len(f.Samples) == 0 {
		return false, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return sample, nil
}

// Close marks the input as closed.
func (f *FakeInput) Close() error {
	f.Closed = true
	return nil
}
