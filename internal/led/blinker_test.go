package led

import (
	"testing"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
)

func TestBlinkerTicks(t *testing.T) {
	b := bus.New()
	blinker := NewBlinker(b.Notifier(), time.Millisecond, nil)

	blinker.On()
	defer blinker.Off()

	set := b.Collect()
	if !set.Has(bus.TimerTicked) {
		t.Errorf("expected TimerTicked, got %s", set)
	}
}

func TestBlinkerOffStopsTicks(t *testing.T) {
	b := bus.New()
	blinker := NewBlinker(b.Notifier(), time.Millisecond, nil)

	blinker.On()
	b.Collect()
	blinker.Off()

	// Give a straggling tick time to land, then drain whatever is pending.
	time.Sleep(10 * time.Millisecond)
	drained := make(chan struct{})
	go func() {
		b.Collect()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(20 * time.Millisecond):
		// Nothing pending, which is also fine.
	}

	// After the drain no further ticks may arrive.
	got := make(chan bus.Set, 1)
	go func() { got <- b.Collect() }()
	select {
	case set := <-got:
		t.Errorf("tick after Off: %s", set)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBlinkerIdempotent(t *testing.T) {
	b := bus.New()
	blinker := NewBlinker(b.Notifier(), time.Millisecond, nil)

	blinker.On()
	blinker.On()
	blinker.Off()
	blinker.Off()
}

func TestBlinkerDefaultInterval(t *testing.T) {
	b := bus.New()
	blinker := NewBlinker(b.Notifier(), 0, nil)
	if blinker.interval != DefaultBlinkInterval {
		t.Errorf("interval = %v, want %v", blinker.interval, DefaultBlinkInterval)
	}
}
