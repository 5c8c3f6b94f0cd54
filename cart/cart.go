// Package cart holds the shopping-cart state for a menu session: the
// selected products with their quantities, derived totals, and a
// write-through copy in durable storage so the cart survives restarts.
package cart

import (
	"sync"
	"sync/atomic"
)

// Line is one product entry in a cart. Name, UnitPrice and ImageURL are
// copies of the catalog values at the time the product was first added;
// they are not refreshed if the catalog changes afterwards.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image,omitempty"`
}

// Candidate is the catalog snapshot handed to AddItem.
type Candidate struct {
	ProductID string
	Name      string
	UnitPrice float64
	ImageURL  string
}

// Store keeps one cart in memory and writes it through to a Storage on
// every mutation. Storage failures never reach callers: the store keeps
// serving from memory and flags itself as degraded.
type Store struct {
	mu    sync.Mutex
	lines []*Line          // first-insertion order, kept stable for display
	index map[string]*Line // product id -> line

	storage    Storage
	async      bool
	degraded   atomic.Bool
	onDegraded func(error)

	seq uint64 // guarded by mu, bumped on every mutation

	flushMu sync.Mutex
	flushed uint64 // guarded by flushMu, newest seq written to storage

	subMu       sync.Mutex
	subscribers []func()
}

// writeOp is one mutation's durable effect: either the full snapshot to
// save or a clear, tagged with the mutation's sequence number.
type writeOp struct {
	seq      uint64
	snapshot []Line
	clear    bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithAsyncWrites issues persistence writes from background goroutines.
// Meant for storage backends with network latency; in-memory state is
// updated before the write is issued either way. Writes are serialized
// and a snapshot superseded by a newer mutation is dropped, so durable
// storage never regresses behind memory.
func WithAsyncWrites() Option {
	return func(s *Store) { s.async = true }
}

// WithDegradedHandler installs a callback invoked with the underlying
// error every time a storage operation fails. Diagnostics only; the store
// has already recovered by the time it fires.
func WithDegradedHandler(fn func(error)) Option {
	return func(s *Store) { s.onDegraded = fn }
}

// NewStore builds a store backed by the given storage and loads any
// previously persisted cart. A missing, unreadable or corrupt payload
// yields an empty cart.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		index:   make(map[string]*Line),
	}
	for _, opt := range opts {
		opt(s)
	}

	persisted, err := storage.Load()
	if err != nil {
		s.markDegraded(err)
		return s
	}
	for _, l := range persisted {
		if l.Quantity < 1 {
			continue
		}
		if _, ok := s.index[l.ProductID]; ok {
			continue
		}
		line := l
		s.lines = append(s.lines, &line)
		s.index[line.ProductID] = &line
	}
	return s
}

// AddItem merges the candidate into the cart: an existing line gets its
// quantity bumped by one and keeps the name, price and image captured on
// the first add; otherwise a new line starts at quantity one.
func (s *Store) AddItem(candidate Candidate) {
	s.mu.Lock()
	if line, ok := s.index[candidate.ProductID]; ok {
		line.Quantity++
	} else {
		line := &Line{
			ProductID: candidate.ProductID,
			Name:      candidate.Name,
			UnitPrice: candidate.UnitPrice,
			Quantity:  1,
			ImageURL:  candidate.ImageURL,
		}
		s.lines = append(s.lines, line)
		s.index[line.ProductID] = line
	}
	op := s.saveOpLocked()
	s.mu.Unlock()

	s.persist(op)
	s.notify()
}

// RemoveItem deletes the line for the given product id. Removing an
// absent product is a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	if _, ok := s.index[productID]; !ok {
		s.mu.Unlock()
		return
	}
	s.deleteLocked(productID)
	op := s.saveOpLocked()
	s.mu.Unlock()

	s.persist(op)
	s.notify()
}

// UpdateQuantity sets the quantity of an existing line to the given
// value. A quantity of zero or less removes the line; an unknown product
// id is a no-op (the operation never creates a line).
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	line, ok := s.index[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.deleteLocked(productID)
	} else {
		line.Quantity = quantity
	}
	op := s.saveOpLocked()
	s.mu.Unlock()

	s.persist(op)
	s.notify()
}

// Clear empties the cart and removes the persisted copy.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.index = make(map[string]*Line)
	s.seq++
	op := writeOp{seq: s.seq, clear: true}
	s.mu.Unlock()

	s.persist(op)
	s.notify()
}

// TotalItemCount is the sum of all line quantities.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity over all lines. The sum is
// accumulated unrounded; callers round for display only.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Lines returns a copy of the cart lines in first-insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked synchronously after every
// mutation, once the in-memory state is already updated.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

// Degraded reports whether at least one storage operation has failed
// since the store was built. The cart itself keeps working from memory.
func (s *Store) Degraded() bool {
	return s.degraded.Load()
}

func (s *Store) deleteLocked(productID string) {
	delete(s.index, productID)
	for i, line := range s.lines {
		if line.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
}

func (s *Store) snapshotLocked() []Line {
	out := make([]Line, len(s.lines))
	for i, line := range s.lines {
		out[i] = *line
	}
	return out
}

func (s *Store) saveOpLocked() writeOp {
	s.seq++
	return writeOp{seq: s.seq, snapshot: s.snapshotLocked()}
}

func (s *Store) persist(op writeOp) {
	if s.async {
		go s.flush(op)
		return
	}
	s.flush(op)
}

// flush applies one durable operation. Operations run one at a time and
// an operation older than the newest already flushed is dropped, so
// storage always converges to the latest mutation even when background
// goroutines finish out of order.
func (s *Store) flush(op writeOp) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()
	if op.seq <= s.flushed {
		return
	}
	s.flushed = op.seq

	var err error
	if op.clear {
		err = s.storage.Clear()
	} else {
		err = s.storage.Save(op.snapshot)
	}
	if err != nil {
		s.markDegraded(err)
	}
}

func (s *Store) markDegraded(err error) {
	s.degraded.Store(true)
	if s.onDegraded != nil {
		s.onDegraded(err)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
