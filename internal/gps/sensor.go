package gps

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/sweeney/peer-beacon/internal/bus"
	"github.com/sweeney/peer-beacon/internal/device"
)

const (
	// maxBuffer caps the line buffer; a stream that never produces a CRLF
	// gets dropped rather than growing without bound.
	maxBuffer = 4096

	chunkSize = 256

	// idleDelay paces the loop between unproductive reads and while the
	// gate is closed.
	idleDelay = 10 * time.Millisecond
)

// Sensor is the position-sensor producer: it consumes the serial stream,
// frames it on CRLF, and publishes each fix through the slot and the bus.
type Sensor struct {
	src      io.Reader
	notifier *bus.Notifier
	gate     *device.Gate
	slot     *Slot
	buf      []byte
	chunk    []byte

	// yield is swapped out by tests.
	yield func()
}

// NewSensor creates a Sensor reading from src. The source is expected to
// return (0, nil) on read timeouts; OpenSerial arranges that.
func NewSensor(src io.Reader, n *bus.Notifier, g *device.Gate, slot *Slot) *Sensor {
	return &Sensor{
		src:      src,
		notifier: n,
		gate:     g,
		slot:     slot,
		chunk:    make([]byte, chunkSize),
		yield:    func() { time.Sleep(idleDelay) },
	}
}

// Run reads forever. It returns only on an unrecoverable error.
func (s *Sensor) Run() error {
	for {
		s.yield()

		if !s.gate.On() {
			continue
		}

		reading, err := s.read()
		if err != nil {
			return err
		}
		if reading == nil {
			continue
		}

		s.slot.Put(*reading)
		if err := s.notifier.Notify(bus.PositionDataAvailable); err != nil {
			return err
		}
	}
}

// read pulls one chunk off the stream and parses any lines it completes.
// When several sentences complete at once, the last valid fix wins.
func (s *Sensor) read() (*Reading, error) {
	n, err := s.src.Read(s.chunk)
	if err != nil {
		return nil, fmt.Errorf("read serial: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	s.buf = append(s.buf, s.chunk[:n]...)

	var ret *Reading
	if idx := bytes.LastIndex(s.buf, []byte("\r\n")); idx >= 0 {
		for _, line := range bytes.Split(s.buf[:idx], []byte("\r\n")) {
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			if r := parseLine(string(line)); r != nil {
				ret = r
			}
		}
		s.buf = append(s.buf[:0], s.buf[idx+2:]...)
	}

	if len(s.buf) > maxBuffer {
		s.buf = s.buf[:0]
	}
	return ret, nil
}
