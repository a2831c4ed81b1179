package seismic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one refresh generation. It is never modified after
// construction; readers must not mutate the slices it holds.
type Snapshot struct {
	Generation  string
	RefreshedAt time.Time
	Events      Dataset
	Features    FeatureCollection
}

// NewSnapshot pairs events with their features under a fresh generation id.
func NewSnapshot(events Dataset, features FeatureCollection, refreshedAt time.Time) (*Snapshot, error) {
	if len(events) != len(features) {
		return nil, fmt.Errorf("%w: %d events, %d features", ErrSnapshotMisaligned, len(events), len(features))
	}
	if events == nil {
		events = Dataset{}
	}
	if features == nil {
		features = FeatureCollection{}
	}
	return &Snapshot{
		Generation:  uuid.NewString(),
		RefreshedAt: refreshedAt.UTC(),
		Events:      events,
		Features:    features,
	}, nil
}

// Len returns the number of events in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Events)
}
