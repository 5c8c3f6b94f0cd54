package cart

import (
	"sync"
	"testing"
	"time"
)

// stalledStorage records the order of durable operations. When built
// with newStalledStorage, the first Save blocks until released, keeping
// a background write in flight while the test mutates the cart further.
type stalledStorage struct {
	mu        sync.Mutex
	ops       []string
	lastSaved []Line
	entered   chan struct{}
	release   chan struct{}
	once      sync.Once
}

func newStalledStorage() *stalledStorage {
	return &stalledStorage{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *stalledStorage) Load() ([]Line, error) { return nil, nil }

func (s *stalledStorage) Save(lines []Line) error {
	if s.entered != nil {
		s.once.Do(func() {
			close(s.entered)
			<-s.release
		})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(lines) == 0 {
		s.ops = append(s.ops, "save-empty")
	} else {
		s.ops = append(s.ops, "save")
	}
	s.lastSaved = lines
	return nil
}

func (s *stalledStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, "clear")
	s.lastSaved = nil
	return nil
}

func (s *stalledStorage) operations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ops))
	copy(out, s.ops)
	return out
}

func (s *stalledStorage) lastSavedLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lastSaved)
}

func waitForOps(t *testing.T, st *stalledStorage, want int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		ops := st.operations()
		if len(ops) >= want {
			return ops
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d durable ops, got %v", want, ops)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAsyncClearNotOvertakenByInFlightSave(t *testing.T) {
	st := newStalledStorage()
	s := NewStore(st, WithAsyncWrites())

	s.AddItem(pizza())
	<-st.entered // the add's background Save is now in flight
	s.Clear()

	close(st.release)

	ops := waitForOps(t, st, 2)
	if ops[len(ops)-1] != "clear" {
		t.Fatalf("durable state regressed behind the clear: %v", ops)
	}
	if s.TotalItemCount() != 0 {
		t.Fatalf("cart not empty after clear: %d items", s.TotalItemCount())
	}
}

func TestAsyncWritesConvergeToLatestSnapshot(t *testing.T) {
	st := &stalledStorage{}
	s := NewStore(st, WithAsyncWrites())

	s.AddItem(pizza())
	s.AddItem(soda())

	deadline := time.Now().Add(2 * time.Second)
	for st.lastSavedLen() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("latest snapshot never persisted, last had %d lines", st.lastSavedLen())
		}
		time.Sleep(5 * time.Millisecond)
	}

	// A stale one-line snapshot must not land after the latest one.
	time.Sleep(50 * time.Millisecond)
	if st.lastSavedLen() != 2 {
		t.Fatalf("stale snapshot overwrote the latest one, last has %d lines", st.lastSavedLen())
	}
}
