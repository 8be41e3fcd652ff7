package led

import (
	"errors"
	"testing"

	"github.com/sweeney/peer-beacon/internal/device"
)

func TestIndicatorStartsDark(t *testing.T) {
	fake := &FakeDriver{}
	ind := NewIndicator(fake)

	if err := ind.SetColor(device.Green); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if len(fake.Colors) != 0 {
		t.Errorf("unlit indicator should not write, got %v", fake.Colors)
	}
}

func TestIndicatorOnAppliesColor(t *testing.T) {
	fake := &FakeDriver{}
	ind := NewIndicator(fake)

	ind.SetColor(device.Red)
	if err := ind.On(); err != nil {
		t.Fatalf("On: %v", err)
	}
	if fake.Last() != device.Red {
		t.Errorf("lamp = %v, want red", fake.Last())
	}
}

func TestIndicatorSetColorWhileLit(t *testing.T) {
	fake := &FakeDriver{}
	ind := NewIndicator(fake)

	ind.On()
	if err := ind.SetColor(device.Green); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if fake.Last() != device.Green {
		t.Errorf("lit indicator should reapply, lamp = %v", fake.Last())
	}
}

func TestIndicatorOffWritesBlack(t *testing.T) {
	fake := &FakeDriver{}
	ind := NewIndicator(fake)

	ind.SetColor(device.Green)
	ind.On()
	if err := ind.Off(); err != nil {
		t.Fatalf("Off: %v", err)
	}
	if fake.Last() != device.Black {
		t.Errorf("lamp = %v, want black", fake.Last())
	}
}

func TestIndicatorToggle(t *testing.T) {
	fake := &FakeDriver{}
	ind := NewIndicator(fake)
	ind.SetColor(device.Red)

	ind.Toggle()
	if fake.Last() != device.Red {
		t.Errorf("first toggle should light, lamp = %v", fake.Last())
	}
	ind.Toggle()
	if fake.Last() != device.Black {
		t.Errorf("second toggle should darken, lamp = %v", fake.Last())
	}
	ind.Toggle()
	if fake.Last() != device.Red {
		t.Errorf("third toggle should restore the color, lamp = %v", fake.Last())
	}
}

func TestIndicatorDriverError(t *testing.T) {
	fake := &FakeDriver{SetError: errors.New("line fault")}
	ind := NewIndicator(fake)

	if err := ind.On(); err == nil {
		t.Error("driver errors should propagate")
	}
}
