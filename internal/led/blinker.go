package led

import (
	"sync"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
)

// DefaultBlinkInterval gives the 3 Hz blink the indicator uses while a
// peer state is showing.
const DefaultBlinkInterval = time.Second / 3

// Blinker emits TimerTicked on the trigger bus at a fixed rate while
// enabled. The control loop translates each tick into an indicator toggle,
// which keeps all lamp writes on one goroutine.
type Blinker struct {
	notifier *bus.Notifier
	interval time.Duration
	fail     func(error)

	mu   sync.Mutex
	stop chan struct{}
}

func NewBlinker(n *bus.Notifier, interval time.Duration, fail func(error)) *Blinker {
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	if fail == nil {
		fail = func(err error) { panic(err) }
	}
	return &Blinker{notifier: n, interval: interval, fail: fail}
}

// On starts the tick goroutine. Calling On while already running is a no-op.
func (b *Blinker) On() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		return
	}
	b.stop = make(chan struct{})
	go b.run(b.stop)
}

// Off stops the tick goroutine. Calling Off while stopped is a no-op.
func (b *Blinker) Off() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop == nil {
		return
	}
	close(b.stop)
	b.stop = nil
}

func (b *Blinker) run(stop chan struct{}) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := b.notifier.Notify(bus.TimerTicked); err != nil {
				b.fail(err)
				return
			}
		}
	}
}
