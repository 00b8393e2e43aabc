package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Entries are listed in insertion order.
type Storage struct {
	mu sync.RWMutex

	objectives map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		objectives: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) EnsureObjective(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objectives[name]; ok {
		return model.ErrObjectiveExists
	}
	s.objectives[name] = nil
	return nil
}

func (s *Storage) SetEntry(ctx context.Context, objective, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.objectives[objective]
	if !ok {
		return model.ErrObjectiveNotFound
	}
	if slices.Contains(entries, entry) {
		return nil
	}
	s.objectives[objective] = append(entries, entry)
	return nil
}

func (s *Storage) ResetEntry(ctx context.Context, objective, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.objectives[objective]
	i := slices.Index(entries, entry)
	if i < 0 {
		return model.ErrEntryNotFound
	}
	s.objectives[objective] = slices.Delete(entries, i, i+1)
	return nil
}

func (s *Storage) ListEntries(ctx context.Context, objective string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.objectives[objective]
	if !ok {
		return nil, model.ErrObjectiveNotFound
	}
	return slices.Clone(entries), nil
}
