// Package device holds the shared types the producers and the control core
// exchange: the operational state, the on/off gate producers consult, and
// mutex-guarded single-value slots. The state itself is mutated only by the
// control core goroutine; the gate and slots each have exactly one writer.
package device

// State is the operational state of the device. The nearby sub-states are
// only meaningful while the device is on; toggling to Off always clears
// them.
type State int

const (
	Off        State = iota
	On               // on, no peer nearby
	OnActive         // on, active peer nearby
	OnInactive       // on, inactive peer nearby
)

// IsOn reports whether the device is logically on.
func (s State) IsOn() bool {
	return s != Off
}

// Blinking reports whether the indicator should blink in this state.
func (s State) Blinking() bool {
	return s == OnActive || s == OnInactive
}

// Toggle flips between Off and On, clearing any nearby sub-state.
func (s State) Toggle() State {
	if s == Off {
		return On
	}
	return Off
}

// Color returns the indicator color for this state.
func (s State) Color() RGB {
	switch s {
	case On, OnActive:
		return Green
	default:
		return Red
	}
}

func (s State) String() string {
	switch s {
	case Off:
		return "Off"
	case On:
		return "On"
	case OnActive:
		return "ActiveDeviceNearby"
	case OnInactive:
		return "InactiveDeviceNearby"
	}
	return "Invalid"
}

// RGB is a color for the visual indicator.
type RGB struct {
	R, G, B uint8
}

// brightness keeps the indicator dim enough to look at.
const brightness = 25

var (
	Black = RGB{}
	Green = RGB{G: brightness}
	Red   = RGB{R: brightness}
)
