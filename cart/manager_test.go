package cart

import (
	"testing"
	"time"
)

func TestManagerOneStorePerSession(t *testing.T) {
	m := NewManager(func(key string) Storage { return &memStorage{} })

	a := m.Get("sess-a")
	b := m.Get("sess-b")
	if a == b {
		t.Fatal("different sessions must get different stores")
	}
	if m.Get("sess-a") != a {
		t.Fatal("same session must get the same store back")
	}
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	m := NewManager(func(key string) Storage { return &memStorage{} })

	m.Get("sess-a").AddItem(Candidate{ProductID: "p1", Name: "Pizza", UnitPrice: 30})
	m.Get("sess-b").AddItem(Candidate{ProductID: "p2", Name: "Soda", UnitPrice: 5.5})

	if m.Get("sess-a").TotalItemCount() != 1 {
		t.Fatal("session a cart leaked")
	}
	if got := m.Get("sess-b").Lines()[0].ProductID; got != "p2" {
		t.Fatalf("session b holds wrong line: %s", got)
	}
}

func TestManagerReloadsFromStorageKey(t *testing.T) {
	dir := t.TempDir()
	open := func(key string) Storage { return NewFileStorage(dir, key) }

	m := NewManager(open)
	m.Get("sess-a").AddItem(Candidate{ProductID: "p1", Name: "Pizza", UnitPrice: 30})

	// New manager over the same directory, as after a restart.
	m2 := NewManager(open)
	if m2.Get("sess-a").TotalItemCount() != 1 {
		t.Fatal("cart not recovered from its storage key")
	}
	if m2.Get("sess-new").TotalItemCount() != 0 {
		t.Fatal("unknown session must start empty")
	}
}

func TestManagerEvictsIdleStores(t *testing.T) {
	m := NewManager(func(key string) Storage { return &memStorage{} })

	m.Get("sess-idle").AddItem(pizza())
	m.Get("sess-live").AddItem(soda())

	// Age one session past the idle lifetime and force a sweep.
	m.mu.Lock()
	m.stores["sess-idle"].lastUsed = time.Now().Add(-m.idleTTL - time.Minute)
	m.lastSweep = time.Time{}
	m.mu.Unlock()

	m.Get("sess-live")

	m.mu.Lock()
	_, idleKept := m.stores["sess-idle"]
	_, liveKept := m.stores["sess-live"]
	m.mu.Unlock()
	if idleKept {
		t.Fatal("idle store must be evicted")
	}
	if !liveKept {
		t.Fatal("active store must survive the sweep")
	}
}

func TestManagerEvictedSessionReloadsFromStorage(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(func(key string) Storage { return NewFileStorage(dir, key) })

	m.Get("sess-a").AddItem(pizza())

	m.mu.Lock()
	m.stores["sess-a"].lastUsed = time.Now().Add(-m.idleTTL - time.Minute)
	m.lastSweep = time.Time{}
	m.mu.Unlock()
	m.Get("sess-other")

	// Eviction only drops the in-memory store; the durable copy stays.
	if m.Get("sess-a").TotalItemCount() != 1 {
		t.Fatal("evicted session lost its persisted cart")
	}
}
