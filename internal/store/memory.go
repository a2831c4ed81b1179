package store

import (
	"sync"
	"sync/atomic"

	"github.com/i474232898/knmi-induced/internal/seismic"
)

// MemoryStore is a concurrency-safe in-memory snapshot cache.
//
// Readers load the current snapshot pointer without locking. Writers are
// serialized by writeMu; a writer that cannot take it immediately gets
// seismic.ErrWriteContention instead of waiting.
type MemoryStore struct {
	current atomic.Pointer[seismic.Snapshot]
	writeMu sync.Mutex
}

// NewMemoryStore creates an empty MemoryStore. Load fails until the first Replace.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the current snapshot.
func (s *MemoryStore) Load() (*seismic.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, seismic.ErrNotInitialized
	}
	return snap, nil
}

// Replace swaps in a new snapshot. Readers holding the previous one keep
// using it until they are done.
func (s *MemoryStore) Replace(snap *seismic.Snapshot) error {
	if snap == nil || len(snap.Events) != len(snap.Features) {
		return seismic.ErrSnapshotMisaligned
	}
	if !s.writeMu.TryLock() {
		return seismic.ErrWriteContention
	}
	defer s.writeMu.Unlock()

	s.current.Store(snap)
	return nil
}
