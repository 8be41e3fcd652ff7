package led

import (
	"github.com/sweeney/peer-beacon/internal/device"
)

// FakeDriver records every color written to it.
type FakeDriver struct {
	Colors   []device.RGB
	Closed   bool
	SetError error
}

func (f *FakeDriver) SetRGB(c device.RGB) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Colors = append(f.Colors, c)
	return nil
}

func (f *FakeDriver) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent color, or black when nothing was written.
func (f *FakeDriver) Last() device.RGB {
	if len(f.Colors) == 0 {
		return device.Black
	}
	return f.Colors[len(f.Colors)-1]
}
