// Package store holds the in-memory concert collection.  It owns the
// ordered record list and the auto-increment counter; everything else in
// the application goes through it.
package store

import (
	"sync"

	"concertd/internal/model"
)

// ConcertStore is a serialized-access in-memory store.  Records keep
// their insertion order, so list responses never re-sort.  A single
// RWMutex guards the slice and the counter; individual operations are
// atomic, multi-step handler sequences are not.
type ConcertStore struct {
	mu       sync.RWMutex
	concerts []model.Concert
	nextID   int
}

// New returns an empty store whose counter starts at 1.
func New() *ConcertStore {
	return &ConcertStore{nextID: 1}
}

// FindIndex returns the position of the first record whose ID matches,
// and whether a match was found.  Index 0 is a valid hit.
func (s *ConcertStore) FindIndex(id int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, c := range s.concerts {
		if c.ID == id {
			return i, true
		}
	}
	return 0, false
}

// NextID returns the current counter value and advances it.
func (s *ConcertStore) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// BumpPast advances the counter beyond id when a client-supplied id is
// at or ahead of it.  Ids behind the counter leave it untouched.
func (s *ConcertStore) BumpPast(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// Insert appends a record at the end of the collection.
func (s *ConcertStore) Insert(c model.Concert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concerts = append(s.concerts, c)
}

// Replace overwrites the record at index i.
func (s *ConcertStore) Replace(i int, c model.Concert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concerts[i] = c
}

// At returns the record at index i.
func (s *ConcertStore) At(i int) model.Concert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.concerts[i]
}

// RemoveAt deletes the record at index i and returns it.
func (s *ConcertStore) RemoveAt(i int) model.Concert {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.concerts[i]
	s.concerts = append(s.concerts[:i], s.concerts[i+1:]...)
	return c
}

// All returns a copy of the collection in insertion order.
func (s *ConcertStore) All() []model.Concert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Concert, len(s.concerts))
	copy(out, s.concerts)
	return out
}

// Len returns the number of stored records.
func (s *ConcertStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.concerts)
}
