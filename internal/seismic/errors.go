package seismic

import "errors"

var (
	// ErrNotInitialized is returned by reads before the first snapshot is stored.
	ErrNotInitialized = errors.New("seismic data not loaded yet")

	// ErrWriteContention is returned by a Store when another writer holds the write position.
	ErrWriteContention = errors.New("snapshot store is being written")

	// ErrSnapshotMisaligned is returned when events and features differ in length.
	ErrSnapshotMisaligned = errors.New("events and features are not aligned")

	// ErrInvalidNumber is returned when a numeric field is neither a number nor a numeric string.
	ErrInvalidNumber = errors.New("invalid numeric field")
)
