// Package estimatorsvc holds named algorithm overhead profiles so a caller
// can save a circuit's logical resource counts once and reference them by ID
// in later estimate/frontier requests.
package estimatorsvc

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kegliz/qre/qc/overheadmodel"
)

// AlgorithmStore saves and retrieves named LogicalCounts profiles.
type AlgorithmStore interface {
	Save(counts overheadmodel.LogicalCounts) string
	Get(id string) (overheadmodel.LogicalCounts, error)
}

// ErrNotFound is returned by Get when no profile exists for the given ID.
var ErrNotFound = fmt.Errorf("estimatorsvc: algorithm profile not found")

type algorithmStore struct {
	mu       sync.RWMutex
	profiles map[string]overheadmodel.LogicalCounts
}

// NewAlgorithmStore returns an in-memory AlgorithmStore.
func NewAlgorithmStore() AlgorithmStore {
	return &algorithmStore{profiles: make(map[string]overheadmodel.LogicalCounts)}
}

// Save stores counts under a freshly generated ID and returns it.
func (s *algorithmStore) Save(counts overheadmodel.LogicalCounts) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[id] = counts
	return id
}

// Get returns the profile saved under id, or ErrNotFound.
func (s *algorithmStore) Get(id string) (overheadmodel.LogicalCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts, ok := s.profiles[id]
	if !ok {
		return overheadmodel.LogicalCounts{}, ErrNotFound
	}
	return counts, nil
}
