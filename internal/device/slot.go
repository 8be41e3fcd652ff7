package device

import "sync"

// PayloadSlot holds the most recent vendor payload observed by the scanner.
// It is a single slot, not a queue: an unread payload is overwritten by the
// next one, and Take clears it. One writer (the scanner), one reader (the
// control core).
type PayloadSlot struct {
	mu      sync.Mutex
	payload []byte
}

// Put stores the payload, replacing any unread one.
func (s *PayloadSlot) Put(p []byte) {
	s.mu.Lock()
	s.payload = p
	s.mu.Unlock()
}

// Take returns the stored payload and clears the slot, or nil if empty.
func (s *PayloadSlot) Take() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.payload
	s.payload = nil
	return p
}
