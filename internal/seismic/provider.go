package seismic

import "context"

// Fetcher retrieves the upstream feed (e.g. the KNMI induced-events JSON).
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (RawFeed, error)
}

// Store is the contract the snapshot cache must satisfy.
// Replace swaps the whole snapshot; Load never observes a partial one.
type Store interface {
	Load() (*Snapshot, error)
	Replace(snap *Snapshot) error
}
