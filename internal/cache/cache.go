package cache

import (
	"context"
	"sync"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

// DefaultMaxEntries bounds a MemoryCache built by NewMemory.
const DefaultMaxEntries = 10000

// memorySweepEvery is the minimum gap between full expiry sweeps on Set.
const memorySweepEvery = time.Minute

// MemoryCache is a process-local TTL cache for single-instance deployments
// without Redis. Expired entries are swept on Set and the entry count is
// capped, so caller-controlled keys cannot grow it without bound.
type MemoryCache struct {
	mu         sync.RWMutex
	items      map[string]memoryEntry
	maxEntries int
	now        func() time.Time
	swept      time.Time
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func NewMemory() *MemoryCache {
	return NewMemoryWithLimit(DefaultMaxEntries)
}

// NewMemoryWithLimit builds a cache holding at most maxEntries keys. A
// non-positive limit falls back to DefaultMaxEntries.
func NewMemoryWithLimit(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		items:      make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		// A concurrent Set may have refreshed the key since the read lock.
		if current, ok := m.items[key]; ok && current.expired(m.now()) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

// Set stores value under key. A non-positive ttl never expires. When the
// cache is full after sweeping, an arbitrary entry is evicted.
func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := m.now()
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expires = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.items[key]
	full := !exists && len(m.items) >= m.maxEntries
	if full || now.Sub(m.swept) >= memorySweepEvery {
		m.sweep(now)
	}
	if !exists && len(m.items) >= m.maxEntries {
		for k := range m.items {
			delete(m.items, k)
			break
		}
	}
	m.items[key] = entry
	return nil
}

// sweep drops expired entries. Caller holds mu.
func (m *MemoryCache) sweep(now time.Time) {
	for k, e := range m.items {
		if e.expired(now) {
			delete(m.items, k)
		}
	}
	m.swept = now
}

// Len reports how many entries are held, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
