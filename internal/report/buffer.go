package report

import "log"

// ringBuffer holds payloads awaiting a broker connection. When full the
// oldest entry is dropped, so a long outage costs history, not memory.
// Callers provide their own locking.
type ringBuffer struct {
	entries [][]byte
	cap     int
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{cap: capacity}
}

func (b *ringBuffer) push(payload []byte) {
	if len(b.entries) >= b.cap {
		log.Printf("report buffer full, dropping oldest of %d", len(b.entries))
		b.entries = b.entries[1:]
	}
	b.entries = append(b.entries, payload)
}

func (b *ringBuffer) drainAll() [][]byte {
	out := b.entries
	b.entries = nil
	return out
}

func (b *ringBuffer) len() int {
	return len(b.entries)
}
