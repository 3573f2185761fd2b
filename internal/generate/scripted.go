package generate

import (
	"context"
	"fmt"
	"sync"

	"probelab/internal/trajectory"
)

// Scripted is a deterministic Generator that replays a fixed sequence of
// responses. It backs tests and dry runs with zero dependency on any model
// runtime, and is safe for concurrent use.
type Scripted struct {
	mu        sync.Mutex
	responses []string
	next      int
}

// NewScripted returns a generator that yields the given responses in order.
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

// Generate returns the next scripted response, or an error once exhausted.
func (s *Scripted) Generate(_ context.Context, _ []trajectory.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.responses) {
		return "", fmt.Errorf("scripted generator exhausted after %d responses", len(s.responses))
	}
	resp := s.responses[s.next]
	s.next++
	return resp, nil
}

// Calls reports how many responses have been consumed.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
