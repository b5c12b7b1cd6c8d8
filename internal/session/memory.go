// AngelaMos | 2026
// memory.go

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MemoryStore holds sessions in process memory. Expired entries are
// removed lazily on Get and in bulk by Run's periodic sweep. Everything is
// lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Data
	interval time.Duration
	now      func() time.Time
}

func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Data),
		interval: sweepInterval,
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Data, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}

	if data.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrNoSession
	}

	return &data, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data Data) error {
	s.mu.Lock()
	s.sessions[id] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep deletes every expired session and reports how many went.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, data := range s.sessions {
		if data.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval tick until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("expired sessions swept", "count", n)
			}
		}
	}
}

var _ Store = (*MemoryStore)(nil)
