package device

import "testing"

func TestStateToggle(t *testing.T) {
	cases := []struct {
		from, to State
	}{
		{Off, On},
		{On, Off},
		{OnActive, Off},
		{OnInactive, Off},
	}
	for _, c := range cases {
		if got := c.from.Toggle(); got != c.to {
			t.Errorf("%s.Toggle() = %s, want %s", c.from, got, c.to)
		}
	}
}

func TestStateColor(t *testing.T) {
	if On.Color() != Green || OnActive.Color() != Green {
		t.Error("On and ActiveDeviceNearby should be green")
	}
	if Off.Color() != Red || OnInactive.Color() != Red {
		t.Error("Off and InactiveDeviceNearby should be red")
	}
}

func TestStateBlinking(t *testing.T) {
	for _, s := range []State{Off, On} {
		if s.Blinking() {
			t.Errorf("%s should not blink", s)
		}
	}
	for _, s := range []State{OnActive, OnInactive} {
		if !s.Blinking() {
			t.Errorf("%s should blink", s)
		}
	}
}

func TestStateIsOn(t *testing.T) {
	if Off.IsOn() {
		t.Error("Off.IsOn() = true")
	}
	for _, s := range []State{On, OnActive, OnInactive} {
		if !s.IsOn() {
			t.Errorf("%s.IsOn() = false", s)
		}
	}
}

func TestGateToggle(t *testing.T) {
	g := NewGate(true)
	if !g.On() {
		t.Fatal("gate should start open")
	}
	if g.Toggle() {
		t.Error("first toggle should close the gate")
	}
	if g.On() {
		t.Error("gate should be closed")
	}
	if !g.Toggle() {
		t.Error("second toggle should open the gate")
	}
}

func TestPayloadSlot(t *testing.T) {
	var s PayloadSlot

	if p := s.Take(); p != nil {
		t.Errorf("empty slot returned %v", p)
	}

	s.Put([]byte{1, 2})
	s.Put([]byte{3, 4}) // overwrites, not queues

	p := s.Take()
	if len(p) != 2 || p[0] != 3 || p[1] != 4 {
		t.Errorf("expected latest payload, got %v", p)
	}

	if p := s.Take(); p != nil {
		t.Errorf("slot should be cleared after Take, got %v", p)
	}
}
