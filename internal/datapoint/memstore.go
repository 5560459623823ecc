package datapoint

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store. It backs the bridge simulator and the
// package tests. Safe for concurrent use; the bridge serves multiple
// websocket sessions from one store.
type MemStore struct {
	mu       sync.RWMutex
	entries  map[string]*memEntry
	watchers []func(addr string, v Value)
}

type memEntry struct {
	value Value
	meta  Metadata
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]*memEntry)}
}

// Define installs a datapoint with its metadata and initial value. Existing
// definitions are replaced.
func (s *MemStore) Define(addr string, meta Metadata, initial Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[addr] = &memEntry{value: initial, meta: meta}
}

// Watch registers fn to be called after every successful Set or Toggle.
// Watchers run on the mutating goroutine with the lock released.
func (s *MemStore) Watch(fn func(addr string, v Value)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Addresses returns all defined addresses in sorted order.
func (s *MemStore) Addresses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	addrs := make([]string, 0, len(s.entries))
	for a := range s.entries {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	return addrs
}

// Get reads the current value of the addressed datapoint.
func (s *MemStore) Get(_ context.Context, addr string) (Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[addr]
	if !ok {
		return Value{}, NewNotFoundError(addr)
	}
	return e.value, nil
}

// Set writes a new value, enforcing existence and writability.
func (s *MemStore) Set(_ context.Context, addr string, v Value) error {
	s.mu.Lock()
	e, ok := s.entries[addr]
	if !ok {
		s.mu.Unlock()
		return NewNotFoundError(addr)
	}
	if !e.meta.Writable {
		s.mu.Unlock()
		return NewNotWritableError(addr)
	}
	v.Quality = QualityGood
	e.value = v
	watchers := make([]func(string, Value), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(addr, v)
	}
	return nil
}

// Toggle inverts a boolean datapoint.
func (s *MemStore) Toggle(ctx context.Context, addr string) error {
	s.mu.RLock()
	e, ok := s.entries[addr]
	if !ok {
		s.mu.RUnlock()
		return NewNotFoundError(addr)
	}
	if e.meta.Type != TypeBoolean {
		s.mu.RUnlock()
		return NewRejectedError(addr, "toggle on non-boolean datapoint")
	}
	next := BoolValue(!e.value.Bool)
	s.mu.RUnlock()

	return s.Set(ctx, addr, next)
}

// Metadata returns the declared shape of the datapoint.
func (s *MemStore) Metadata(_ context.Context, addr string) (Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[addr]
	if !ok {
		return Metadata{}, NewNotFoundError(addr)
	}
	return e.meta, nil
}
