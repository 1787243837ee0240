package cache

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultTTL covers search and detail responses.
	DefaultTTL = 60 * time.Second
	// PantryTTL covers ranked by-ingredients results, which are costlier
	// to rebuild and churn less.
	PantryTTL = 300 * time.Second
)

// Store memoizes upstream payloads by request signature.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is the in-process Store: one entry per signature, lazy expiry,
// no sweeper. An entry at or past its expiry reads as absent.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || !time.Now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set overwrites any existing entry for the key and resets its expiry.
func (m *Memory) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry{value: payload, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
}

var _ Store = (*Memory)(nil)
