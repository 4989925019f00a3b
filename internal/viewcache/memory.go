package viewcache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired entries are dropped on read
// and swept on every write.
type MemoryStore struct {
	mu       sync.Mutex
	views    map[string]map[string]entry
	versions map[string]uint64
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		views:    make(map[string]map[string]entry),
		versions: make(map[string]uint64),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for view, entries := range m.views {
		e, ok := entries[key]
		if !ok {
			continue
		}
		if m.now().After(e.expiresAt) {
			m.drop(view, key)
			return nil, false, nil
		}
		return e.body, true, nil
	}
	return nil, false, nil
}

func (m *MemoryStore) Version(_ context.Context, view string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[view], nil
}

func (m *MemoryStore) Set(_ context.Context, view, key string, body []byte, ttl time.Duration, version uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()
	if m.versions[view] != version {
		return nil
	}

	entries, ok := m.views[view]
	if !ok {
		entries = make(map[string]entry)
		m.views[view] = entries
	}
	entries[key] = entry{body: body, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Invalidate(_ context.Context, views ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range views {
		m.versions[v]++
		delete(m.views, v)
	}
	return nil
}

// size counts the entries held, expired or not.
func (m *MemoryStore) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, entries := range m.views {
		n += len(entries)
	}
	return n
}

// sweep drops every expired entry. Callers hold mu.
func (m *MemoryStore) sweep() {
	now := m.now()
	for view, entries := range m.views {
		for key, e := range entries {
			if now.After(e.expiresAt) {
				m.drop(view, key)
			}
		}
	}
}

// drop removes one entry and the view map once it is empty. Callers hold mu.
func (m *MemoryStore) drop(view, key string) {
	delete(m.views[view], key)
	if len(m.views[view]) == 0 {
		delete(m.views, view)
	}
}
