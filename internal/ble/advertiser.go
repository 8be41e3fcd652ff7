package ble

// DeriveFunc maps the advertiser's on/off state and current payload to the
// advertised name and vendor data. It decouples the control core's state
// model from radio specifics.
type DeriveFunc func(on bool, payload []byte) (name string, vendor []byte)

// DefaultDerive returns the conventional derive function for appName: the
// -Active name with the payload while on, the -Inactive name without it
// while off.
func DefaultDerive(appName string) DeriveFunc {
	return func(on bool, payload []byte) (string, []byte) {
		if on {
			return appName + ActiveSuffix, payload
		}
		return appName + InactiveSuffix, nil
	}
}

// Advertiser owns the device's advertisement: the on/off state plus the
// optional telemetry payload carried in vendor data. Every mutation
// re-derives and re-applies the advertisement. Driven only by the control
// core goroutine.
type Advertiser struct {
	adapter Adapter
	derive  DeriveFunc
	on      bool
	payload []byte
}

// NewAdvertiser creates an Advertiser and applies the initial
// advertisement.
func NewAdvertiser(adapter Adapter, on bool, derive DeriveFunc) (*Advertiser, error) {
	a := &Advertiser{adapter: adapter, derive: derive, on: on}
	if err := a.apply(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Advertiser) apply() error {
	name, vendor := a.derive(a.on, a.payload)
	return a.adapter.Advertise(name, vendor)
}

// SetPayload replaces the vendor payload (nil clears it) and re-applies the
// advertisement.
func (a *Advertiser) SetPayload(p []byte) error {
	a.payload = p
	return a.apply()
}

// Toggle flips the advertised on/off state and re-applies the
// advertisement.
func (a *Advertiser) Toggle() error {
	a.on = !a.on
	return a.apply()
}
