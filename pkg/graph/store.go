package graph

import (
	"sync/atomic"

	"github.com/soundprediction/patternrecall/pkg/types"
)

// Store holds the current snapshot behind an atomic reference.
// Loading a new snapshot is a pointer swap: queries in flight keep
// reading the snapshot they started with, new queries see the new one.
// A snapshot is never mutated in place.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore returns an empty store. Queries against it fail with
// ErrNotLoaded until Load or Swap installs a snapshot.
func NewStore() *Store {
	return &Store{}
}

// Load builds a snapshot from the given collections and installs it.
// On any build error the previously installed snapshot, if any, stays
// in place.
func (s *Store) Load(nodes []types.Node, edges []types.Edge) error {
	snap, err := BuildSnapshot(nodes, edges)
	if err != nil {
		return err
	}
	s.snap.Store(snap)
	return nil
}

// Swap atomically installs an already-built snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.snap.Store(snap)
}

// Snapshot returns the currently installed snapshot, or ErrNotLoaded
// if none has been installed yet.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}
