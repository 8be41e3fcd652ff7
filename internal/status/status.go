// Package status keeps a thread-safe snapshot of what the beacon is doing,
// for the diagnostics page.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
	"github.com/sweeney/peer-beacon/internal/gps"
)

// Config is the static half of a snapshot, fixed at startup.
type Config struct {
	Role      string
	Name      string
	ReportURL string
	HTTPAddr  string
}

// Snapshot is a point-in-time copy of the tracker, safe to hand to a
// template or JSON encoder without further locking.
type Snapshot struct {
	State        device.State
	PeakSpeedMPS float32
	LastFix      *gps.Reading
	FixTime      time.Time
	Counts       map[bus.Trigger]uint64
	StartTime    time.Time
	Now          time.Time
	Config       Config
}

// Uptime reports how long the process has been running at snapshot time.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker accumulates state changes from the control loop and serves
// snapshots to the web handler.
type Tracker struct {
	mu     sync.RWMutex
	state  device.State
	peak   float32
	fix    *gps.Reading
	fixAt  time.Time
	counts map[bus.Trigger]uint64
	start  time.Time
	config Config
}

func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		counts: make(map[bus.Trigger]uint64),
		start:  time.Now(),
		config: cfg,
	}
}

func (t *Tracker) SetState(s device.State) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

func (t *Tracker) SetPeakSpeed(mps float32) {
	t.mu.Lock()
	t.peak = mps
	t.mu.Unlock()
}

func (t *Tracker) SetFix(r gps.Reading) {
	t.mu.Lock()
	t.fix = &r
	t.fixAt = time.Now()
	t.mu.Unlock()
}

// Count tallies every trigger present in a drained set.
func (t *Tracker) Count(set bus.Set) {
	t.mu.Lock()
	for _, trig := range bus.Triggers {
		if set.Has(trig) {
			t.counts[trig]++
		}
	}
	t.mu.Unlock()
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := make(map[bus.Trigger]uint64, len(t.counts))
	for trig, n := range t.counts {
		counts[trig] = n
	}
	var fix *gps.Reading
	if t.fix != nil {
		f := *t.fix
		fix = &f
	}
	return Snapshot{
		State:        t.state,
		PeakSpeedMPS: t.peak,
		LastFix:      fix,
		FixTime:      t.fixAt,
		Counts:       counts,
		StartTime:    t.start,
		Now:          time.Now(),
		Config:       t.config,
	}
}
