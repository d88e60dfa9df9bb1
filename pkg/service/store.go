//
//  Copyright © Opsrig Inc. All rights reserved.
//

package service

import (
	"sync"

	"github.com/mohae/deepcopy"
)

// Store is a bounded, in-memory FIFO of validation records. When the
// capacity is exceeded the oldest record is evicted.
type Store struct {
	mu       sync.Mutex
	capacity int
	order    []string
	records  map[string]*ValidationRecord
}

// NewStore creates a store retaining at most capacity records.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		capacity: capacity,
		records:  make(map[string]*ValidationRecord),
	}
}

// Put inserts a record, evicting the oldest one if the store is full.
func (s *Store) Put(record *ValidationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.records, oldest)
	}

	s.order = append(s.order, record.ID)
	s.records[record.ID] = record
}

// Get returns a detached deep copy of the record with the given id, so
// callers never alias stored state.
func (s *Store) Get(id string) (*ValidationRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return nil, false
	}
	return deepcopy.Copy(record).(*ValidationRecord), true
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
