package bus

import (
	"sync"
	"testing"
	"time"
)

func TestNotifyCollect(t *testing.T) {
	b := New()
	n := b.Notifier()

	if err := n.Notify(ButtonPressed); err != nil {
		t.Fatalf("notify: %v", err)
	}

	set := b.Collect()
	if !set.Has(ButtonPressed) {
		t.Error("expected ButtonPressed in drained set")
	}
	if set != Set(ButtonPressed) {
		t.Errorf("expected only ButtonPressed, got %s", set)
	}
}

func TestCoalescing(t *testing.T) {
	b := New()
	n := b.Notifier()

	// Two notifies before a single collect must yield one entry, not two.
	if err := n.Notify(ButtonPressed); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.Notify(ButtonPressed); err != nil {
		t.Fatalf("notify: %v", err)
	}

	set := b.Collect()
	if set != Set(ButtonPressed) {
		t.Errorf("expected coalesced ButtonPressed, got %s", set)
	}

	// The drain cleared the mask: a second collect must block until a new
	// trigger arrives.
	done := make(chan Set, 1)
	go func() { done <- b.Collect() }()

	select {
	case s := <-done:
		t.Fatalf("collect returned %s without a pending trigger", s)
	case <-time.After(50 * time.Millisecond):
	}

	if err := n.Notify(TimerTicked); err != nil {
		t.Fatalf("notify: %v", err)
	}
	select {
	case s := <-done:
		if s != Set(TimerTicked) {
			t.Errorf("expected TimerTicked, got %s", s)
		}
	case <-time.After(time.Second):
		t.Fatal("collect did not wake after notify")
	}
}

func TestCollectMergesDistinctTriggers(t *testing.T) {
	b := New()
	n := b.Notifier()

	n.Notify(ButtonPressed)
	n.Notify(DeviceFoundActive)
	n.Notify(PositionDataAvailable)

	set := b.Collect()
	for _, tr := range []Trigger{ButtonPressed, DeviceFoundActive, PositionDataAvailable} {
		if !set.Has(tr) {
			t.Errorf("expected %s in drained set %s", tr, set)
		}
	}
	if set.Has(TimerTicked) {
		t.Errorf("unexpected TimerTicked in %s", set)
	}
}

func TestNotifyZeroTrigger(t *testing.T) {
	b := New()
	n := b.Notifier()

	if err := n.Notify(0); err != ErrZeroTrigger {
		t.Errorf("expected ErrZeroTrigger, got %v", err)
	}
}

func TestConcurrentProducers(t *testing.T) {
	b := New()

	const producers = 8
	const rounds = 100

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		trigger := Triggers[i%len(Triggers)]
		go func() {
			defer wg.Done()
			n := b.Notifier()
			for j := 0; j < rounds; j++ {
				if err := n.Notify(trigger); err != nil {
					t.Errorf("notify: %v", err)
					return
				}
			}
		}()
	}

	// Drain until every producer has finished and the mask is empty. Each
	// drain observes the union of bits set since the previous drain.
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	var seen Set
	for {
		select {
		case <-done:
			b.mu.Lock()
			rest := b.pending
			b.pending = 0
			b.mu.Unlock()
			seen |= rest
			for _, tr := range Triggers {
				if !seen.Has(tr) {
					t.Errorf("never observed %s", tr)
				}
			}
			return
		default:
			b.mu.Lock()
			s := b.pending
			b.pending = 0
			b.mu.Unlock()
			seen |= s
		}
	}
}

func TestTriggerStrings(t *testing.T) {
	cases := map[Trigger]string{
		ButtonPressed:         "ButtonPressed",
		TimerTicked:           "TimerTicked",
		DeviceFoundActive:     "DeviceFoundActive",
		DeviceFoundInactive:   "DeviceFoundInactive",
		DeviceNotFound:        "DeviceNotFound",
		PositionDataAvailable: "PositionDataAvailable",
		Trigger(1 << 10):      "Unknown",
	}
	for tr, want := range cases {
		if got := tr.String(); got != want {
			t.Errorf("Trigger(%d).String() = %q, want %q", tr, got, want)
		}
	}

	if got := Set(0).String(); got != "none" {
		t.Errorf("empty set string = %q", got)
	}
	set := Set(ButtonPressed) | Set(TimerTicked)
	if got := set.String(); got != "ButtonPressed|TimerTicked" {
		t.Errorf("set string = %q", got)
	}
}

func TestBitUniqueness(t *testing.T) {
	var mask Set
	for _, tr := range Triggers {
		if tr == 0 {
			t.Errorf("%s has the reserved zero value", tr)
		}
		if tr&(tr-1) != 0 {
			t.Errorf("%s is not a power of two", tr)
		}
		if mask.Has(tr) {
			t.Errorf("%s shares a bit with another trigger", tr)
		}
		mask |= Set(tr)
	}
}
