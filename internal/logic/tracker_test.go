package logic

import (
	"bytes"
	"testing"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
	"github.com/sweeney/peer-beacon/internal/gps"
)

func newTestTracker(t *testing.T, initial device.State) (*Tracker, *Core, *fakeAdvertiser, *gps.Slot) {
	t.Helper()
	c, adv, _, _ := newTestCore(t, initial)
	slot := &gps.Slot{}
	return NewTracker(c, slot), c, adv, slot
}

func (tr *Tracker) hooks() Hooks {
	return Hooks{
		OnButtonPressed:     tr.handleButtonPressed,
		OnDeviceFoundActive: tr.handleDeviceFoundActive,
		Extra:               tr.handleExtra,
	}
}

func putFix(slot *gps.Slot, mps float64) {
	slot.Put(gps.Reading{Lat: 48.1, Lon: 11.5, SpeedMPS: &mps})
}

func TestTrackerPositionRaisesPeak(t *testing.T) {
	tr, c, adv, slot := newTestTracker(t, device.On)

	putFix(slot, 5.0)
	step(t, c, tr.hooks(), bus.Set(bus.PositionDataAvailable))

	if tr.maxSpeedMPS != 5.0 {
		t.Errorf("peak = %v, want 5", tr.maxSpeedMPS)
	}
	want := []byte{0x00, 0x00, 0xA0, 0x40}
	if len(adv.payloads) != 1 || !bytes.Equal(adv.payloads[0], want) {
		t.Errorf("payloads = %v, want [%v]", adv.payloads, want)
	}
}

func TestTrackerSlowerFixKeepsPeak(t *testing.T) {
	tr, c, _, slot := newTestTracker(t, device.On)

	putFix(slot, 5.0)
	step(t, c, tr.hooks(), bus.Set(bus.PositionDataAvailable))
	putFix(slot, 2.0)
	step(t, c, tr.hooks(), bus.Set(bus.PositionDataAvailable))

	if tr.maxSpeedMPS != 5.0 {
		t.Errorf("peak = %v, want 5", tr.maxSpeedMPS)
	}
}

func TestTrackerFixWithoutSpeed(t *testing.T) {
	tr, c, adv, slot := newTestTracker(t, device.On)

	slot.Put(gps.Reading{Lat: 48.1, Lon: 11.5})
	step(t, c, tr.hooks(), bus.Set(bus.PositionDataAvailable))

	if tr.maxSpeedMPS != 0 {
		t.Errorf("peak = %v, want 0", tr.maxSpeedMPS)
	}
	// Zero peak means no payload to advertise.
	if len(adv.payloads) != 1 || adv.payloads[0] != nil {
		t.Errorf("payloads = %v, want [nil]", adv.payloads)
	}
}

func TestTrackerPeakResetOnSwitchOnOnly(t *testing.T) {
	tr, c, _, slot := newTestTracker(t, device.On)

	putFix(slot, 5.0)
	step(t, c, tr.hooks(), bus.Set(bus.PositionDataAvailable))

	// Switching off keeps the peak.
	step(t, c, tr.hooks(), bus.Set(bus.ButtonPressed))
	if c.state != device.Off {
		t.Fatalf("state = %v, want Off", c.state)
	}
	if tr.maxSpeedMPS != 5.0 {
		t.Errorf("peak after switch-off = %v, want 5", tr.maxSpeedMPS)
	}

	// Switching back on starts fresh.
	step(t, c, tr.hooks(), bus.Set(bus.ButtonPressed))
	if c.state != device.On {
		t.Fatalf("state = %v, want On", c.state)
	}
	if tr.maxSpeedMPS != 0 {
		t.Errorf("peak after switch-on = %v, want 0", tr.maxSpeedMPS)
	}
}

func TestTrackerActiveEdgeFoldsPendingFix(t *testing.T) {
	tr, c, adv, slot := newTestTracker(t, device.On)

	putFix(slot, 5.0)
	step(t, c, tr.hooks(), bus.Set(bus.DeviceFoundActive))

	if c.state != device.OnActive {
		t.Fatalf("state = %v, want OnActive", c.state)
	}
	if tr.maxSpeedMPS != 5.0 {
		t.Errorf("peak = %v, want 5", tr.maxSpeedMPS)
	}
	if len(adv.payloads) != 1 {
		t.Errorf("payloads = %v, want one entry", adv.payloads)
	}
}

func TestTrackerRepeatSightingIsIdempotent(t *testing.T) {
	tr, c, adv, slot := newTestTracker(t, device.On)

	step(t, c, tr.hooks(), bus.Set(bus.DeviceFoundActive))
	putFix(slot, 5.0)
	step(t, c, tr.hooks(), bus.Set(bus.DeviceFoundActive))

	if c.state != device.OnActive {
		t.Fatalf("state = %v", c.state)
	}
	if tr.maxSpeedMPS != 0 {
		t.Errorf("repeat sighting must not fold, peak = %v", tr.maxSpeedMPS)
	}
	if len(adv.payloads) != 0 {
		t.Errorf("payloads = %v, want none", adv.payloads)
	}
	if slot.Take() == nil {
		t.Error("fix should still be pending")
	}
}

func TestTrackerOffIgnoresSightings(t *testing.T) {
	tr, c, _, slot := newTestTracker(t, device.Off)

	putFix(slot, 5.0)
	step(t, c, tr.hooks(), bus.Set(bus.DeviceFoundActive))

	if c.state != device.Off {
		t.Errorf("state = %v, want Off", c.state)
	}
	if tr.maxSpeedMPS != 0 {
		t.Errorf("peak = %v, want 0", tr.maxSpeedMPS)
	}
}

func TestTrackerEmptySlotFoldIsNoop(t *testing.T) {
	tr, c, adv, _ := newTestTracker(t, device.On)
	step(t, c, tr.hooks(), bus.Set(bus.PositionDataAvailable))
	if len(adv.payloads) != 0 {
		t.Errorf("payloads = %v, want none", adv.payloads)
	}
}
