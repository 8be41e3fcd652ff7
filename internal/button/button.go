// Package button polls a physical push button and feeds presses into the
// event bus. The real implementation uses the Linux GPIO character device;
// the fake implementation allows testing without hardware.
package button

import (
	"fmt"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
)

// Input reads the button's pressed state.
type Input interface {
	// Pressed reports whether the button is currently held down.
	Pressed() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Default timings for the polling loop.
const (
	DefaultPoll     = 10 * time.Millisecond
	DefaultDebounce = 500 * time.Millisecond
)

// Poller watches the button and raises ButtonPressed on the bus. On each
// press it also flips the shared gate, then sleeps out the debounce
// interval before resuming.
type Poller struct {
	in       Input
	notifier *bus.Notifier
	gate     *device.Gate
	poll     time.Duration
	debounce time.Duration

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// NewPoller creates a Poller. Zero durations fall back to the defaults.
func NewPoller(in Input, n *bus.Notifier, g *device.Gate, poll, debounce time.Duration) *Poller {
	if poll <= 0 {
		poll = DefaultPoll
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Poller{
		in:       in,
		notifier: n,
		gate:     g,
		poll:     poll,
		debounce: debounce,
		sleep:    time.Sleep,
	}
}

// Run polls forever. It returns only on an unrecoverable error.
//
// Polling instead of edge interrupts is deliberate: on some boards the
// button pin sits close enough to the radio antenna that interrupts pick up
// interference.
func (p *Poller) Run() error {
	for {
		if err := p.step(); err != nil {
			return err
		}
	}
}

// step performs one polling iteration.
func (p *Poller) step() error {
	pressed, err := p.in.Pressed()
	if err != nil {
		return fmt.Errorf("read button: %w", err)
	}

	if !pressed {
		p.sleep(p.poll)
		return nil
	}

	if err := p.notifier.Notify(bus.ButtonPressed); err != nil {
		return err
	}
	p.gate.Toggle()
	p.sleep(p.debounce)
	return nil
}
