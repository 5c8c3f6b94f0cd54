package cart

import (
	"sync"
	"time"
)

// storeIdleTTL matches the guest session lifetime: a store untouched for
// that long belongs to an expired session and is dropped from memory.
const storeIdleTTL = 24 * time.Hour

const sweepInterval = time.Minute

// StorageOpener builds the storage for one cart key. The concrete
// backend is chosen once at startup; every session cart then uses the
// same kind of storage under its own key.
type StorageOpener func(key string) Storage

type managedStore struct {
	store    *Store
	lastUsed time.Time
}

// Manager hands out one Store per menu session. A session keeps exactly
// one cart, mirroring the one-cart-per-guest rule of the persisted keys.
// Idle stores are evicted; their durable copies stay behind, so a
// returning session reloads its cart from storage.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*managedStore
	open      StorageOpener
	storeOpts []Option
	idleTTL   time.Duration
	lastSweep time.Time
}

func NewManager(open StorageOpener, storeOpts ...Option) *Manager {
	return &Manager{
		stores:    make(map[string]*managedStore),
		open:      open,
		storeOpts: storeOpts,
		idleTTL:   storeIdleTTL,
	}
}

// Get returns the session's store, creating and loading it on first use.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.sweepLocked(now)

	if entry, ok := m.stores[sessionID]; ok {
		entry.lastUsed = now
		return entry.store
	}
	store := NewStore(m.open("cart:"+sessionID), m.storeOpts...)
	m.stores[sessionID] = &managedStore{store: store, lastUsed: now}
	return store
}

func (m *Manager) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	for id, entry := range m.stores {
		if now.Sub(entry.lastUsed) > m.idleTTL {
			delete(m.stores, id)
		}
	}
}
