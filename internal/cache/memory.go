package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shapeshifter/internal/model"
)

type memoryEntry struct {
	res       *model.TransformResponse
	expiresAt time.Time
}

// Memory is a process-local ResponseCache. Requests run on parallel
// goroutines, so the map is mutex-guarded. Expired entries read as misses;
// the sweeper reclaims their memory.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string) (*model.TransformResponse, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.res, true, nil
}

func (m *Memory) Set(ctx context.Context, key string, res *model.TransformResponse, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry{res: res, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// EvictExpired drops entries past their TTL and reports how many went.
func (m *Memory) EvictExpired() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	var evicted int
	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, key)
			evicted++
		}
	}
	return evicted
}

// StartSweeper evicts expired entries on an interval until ctx is done.
func (m *Memory) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if evicted := m.EvictExpired(); evicted > 0 {
					slog.Debug("evicted expired cache entries", "count", evicted)
				}
			}
		}
	}()
}
