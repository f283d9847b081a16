// Package store holds the authoritative element sequence of a diagram.
//
// A Store is created once from a seed and mutated only through Connect,
// Remove and Reset. Every mutation swaps in a fresh sequence built by the
// pure functions of the domain package, so snapshots handed out earlier
// never change underneath their holders.
package store

import (
	"fmt"
	"sync"

	"flowboard/internal/domain"
)

// Option configures a Store
type Option func(*Store)

// WithStrictEndpoints rejects connects whose endpoints name no node in the store
func WithStrictEndpoints(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// WithCascadeRemove makes Remove also drop edges attached to removed nodes
func WithCascadeRemove(cascade bool) Option {
	return func(s *Store) {
		s.cascade = cascade
	}
}

// WithIDFunc sets the function that picks IDs for new edges
func WithIDFunc(fn domain.IDFunc) Option {
	return func(s *Store) {
		s.idFunc = fn
	}
}

// Snapshot is a copy of the element sequence at a given revision
type Snapshot struct {
	Revision uint64          `json:"revision"`
	Elements domain.Elements `json:"elements"`
}

// Store owns one element sequence
type Store struct {
	mu       sync.RWMutex
	elements domain.Elements
	revision uint64

	strict  bool
	cascade bool
	idFunc  domain.IDFunc
}

// New creates a store seeded with a copy of seed
func New(seed domain.Elements, opts ...Option) (*Store, error) {
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	s := &Store{
		elements: seed.Clone(),
		idFunc:   domain.UniqueEdgeID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Snapshot returns a copy of the current sequence
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Revision: s.revision,
		Elements: s.elements.Clone(),
	}
}

// Elements returns a copy of the current sequence
func (s *Store) Elements() domain.Elements {
	return s.Snapshot().Elements
}

// Len returns the number of elements
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Connect appends a new edge and returns the resulting sequence
func (s *Store) Connect(params domain.ConnectParams) (Snapshot, domain.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strict {
		for _, id := range []string{params.Source, params.Target} {
			if id != "" && !s.elements.HasNode(id) {
				return Snapshot{}, domain.Edge{}, fmt.Errorf("%w: %s", domain.ErrUnknownEndpoint, id)
			}
		}
	}

	next, edge, err := domain.AddEdgeWithID(params, s.elements, s.idFunc)
	if err != nil {
		return Snapshot{}, domain.Edge{}, err
	}

	return s.swap(next), edge, nil
}

// Remove drops the elements with the given IDs and returns the resulting
// sequence. Unknown IDs are ignored; changed is false when nothing matched
// and the revision is left alone.
func (s *Store) Remove(ids []string) (snap Snapshot, changed bool) {
	return s.remove(ids, s.cascade)
}

// RemoveCascade is Remove that always drops edges attached to removed nodes
func (s *Store) RemoveCascade(ids []string) (snap Snapshot, changed bool) {
	return s.remove(ids, true)
}

func (s *Store) remove(ids []string, cascade bool) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next domain.Elements
	if cascade {
		next = domain.RemoveElementsCascade(ids, s.elements)
	} else {
		next = domain.RemoveElements(ids, s.elements)
	}

	if len(next) == len(s.elements) {
		// Nothing matched
		return Snapshot{Revision: s.revision, Elements: next}, false
	}
	return s.swap(next), true
}

// Reset replaces the sequence with a copy of seed
func (s *Store) Reset(seed domain.Elements) (Snapshot, error) {
	if err := seed.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("invalid seed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swap(seed.Clone()), nil
}

// swap installs next and returns a snapshot of it. Caller holds mu.
func (s *Store) swap(next domain.Elements) Snapshot {
	s.elements = next
	s.revision++
	return Snapshot{
		Revision: s.revision,
		Elements: next.Clone(),
	}
}
