package engine

import (
	"sync"
	"time"
)

type hostEntry struct {
	engineName string
	expiresAt  time.Time
}

// HostMemory remembers which tier last succeeded for each host so the
// dispatcher can try it first. Entries expire after the TTL.
type HostMemory struct {
	mu      sync.Mutex
	entries map[string]hostEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewHostMemory creates a HostMemory with the given TTL.
func NewHostMemory(ttl time.Duration) *HostMemory {
	return &HostMemory{
		entries: make(map[string]hostEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the remembered tier for a host, or "" if none is current.
func (m *HostMemory) Get(host string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[host]
	if !ok {
		return ""
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, host)
		return ""
	}
	return e.engineName
}

// Set records the tier that succeeded for a host. Expired entries are
// pruned on the way.
func (m *HostMemory) Set(host, engineName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for h, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, h)
		}
	}
	m.entries[host] = hostEntry{engineName: engineName, expiresAt: now.Add(m.ttl)}
}

// Forget drops the entry for a host, e.g. after the remembered tier failed.
func (m *HostMemory) Forget(host string) {
	m.mu.Lock()
	delete(m.entries, host)
	m.mu.Unlock()
}
