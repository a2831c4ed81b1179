package seismic

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/knmi-induced/internal/observability"
)

// Service refreshes the snapshot from the upstream feed and serves reads from it.
type Service struct {
	store      Store
	fetcher    Fetcher
	normalizer *Normalizer
	logger     *logrus.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
	state      atomic.Int32
}

// NewService creates a new Service.
func NewService(store Store, fetcher Fetcher, logger *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Service {
	return &Service{
		store:      store,
		fetcher:    fetcher,
		normalizer: NewNormalizer(logger),
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
	}
}

// Load performs the initial fetch and stores its result even when it is empty.
// Any fetch error is returned; the caller should treat it as fatal.
func (s *Service) Load(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{"component": "service", "fetcher": s.fetcher.Name()})

	feed, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("initial fetch from %s: %w", s.fetcher.Name(), err)
	}

	res := s.normalize(feed)
	if len(res.Events) == 0 {
		log.Warn("initial feed contained no usable events")
	}

	snap, err := s.swap(res)
	if err != nil {
		return fmt.Errorf("store initial snapshot: %w", err)
	}

	log.WithFields(logrus.Fields{
		"generation": snap.Generation,
		"events":     snap.Len(),
		"dropped":    res.Dropped,
	}).Info("initial snapshot loaded")
	return nil
}

// Refresh runs one fetch-normalize-swap cycle. The current snapshot is kept
// when the fetch fails, when nothing usable comes back, or when the store's
// write position is taken. Only a fetch failure is returned as an error.
func (s *Service) Refresh(ctx context.Context) (RefreshOutcome, error) {
	start := s.clock.Now()
	defer func() {
		s.setState(StateIdle)
		s.metrics.RefreshDuration.Observe(s.clock.Since(start).Seconds())
	}()

	log := s.logger.WithFields(logrus.Fields{"component": "service", "fetcher": s.fetcher.Name()})

	s.setState(StateFetching)
	feed, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.setState(StateLoggingError)
		log.WithError(err).Error("refresh fetch failed; keeping current snapshot")
		s.metrics.RefreshCycles.WithLabelValues(string(OutcomeFailed)).Inc()
		return OutcomeFailed, fmt.Errorf("fetch from %s: %w", s.fetcher.Name(), err)
	}

	s.setState(StateNormalizing)
	res := s.normalize(feed)
	if len(res.Events) == 0 {
		log.WithFields(logrus.Fields{
			"received": len(feed.Events),
			"dropped":  res.Dropped,
		}).Warn("refresh produced no events; keeping current snapshot")
		s.metrics.RefreshCycles.WithLabelValues(string(OutcomeEmpty)).Inc()
		return OutcomeEmpty, nil
	}

	s.setState(StateSwapping)
	snap, err := s.swap(res)
	if errors.Is(err, ErrWriteContention) {
		log.WithError(err).Warn("could not acquire snapshot write position; skipping cycle")
		s.metrics.RefreshCycles.WithLabelValues(string(OutcomeContended)).Inc()
		return OutcomeContended, nil
	}
	if err != nil {
		s.setState(StateLoggingError)
		log.WithError(err).Error("refresh swap failed; keeping current snapshot")
		s.metrics.RefreshCycles.WithLabelValues(string(OutcomeFailed)).Inc()
		return OutcomeFailed, err
	}

	log.WithFields(logrus.Fields{
		"generation":         snap.Generation,
		"events":             snap.Len(),
		"dropped":            res.Dropped,
		"invalid_timestamps": res.InvalidTimestamps,
	}).Info("snapshot refreshed")
	s.metrics.RefreshCycles.WithLabelValues(string(OutcomeUpdated)).Inc()
	return OutcomeUpdated, nil
}

func (s *Service) normalize(feed RawFeed) NormalizeResult {
	res := s.normalizer.Normalize(feed.Events)
	s.metrics.RecordsDropped.Add(float64(res.Dropped))
	s.metrics.TimestampFallbacks.Add(float64(res.InvalidTimestamps))
	return res
}

func (s *Service) swap(res NormalizeResult) (*Snapshot, error) {
	snap, err := NewSnapshot(res.Events, res.Features, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Replace(snap); err != nil {
		return nil, err
	}
	s.metrics.CachedEvents.Set(float64(snap.Len()))
	s.metrics.LastRefreshSuccess.Set(float64(snap.RefreshedAt.Unix()))
	return snap, nil
}

func (s *Service) setState(st RefreshState) {
	s.state.Store(int32(st))
}

// State returns the phase of the refresh cycle.
func (s *Service) State() RefreshState {
	return RefreshState(s.state.Load())
}

// Snapshot returns the current snapshot. Events and Features come from the
// same generation and are index-aligned.
func (s *Service) Snapshot() (*Snapshot, error) {
	return s.store.Load()
}

// GetEvents returns the current event list.
func (s *Service) GetEvents() (Dataset, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return snap.Events, nil
}

// GetFeatures returns the current feature collection.
func (s *Service) GetFeatures() (FeatureCollection, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return snap.Features, nil
}

// GetFeaturesInRange returns the features dated within [startYear, endYear], inclusive.
func (s *Service) GetFeaturesInRange(startYear, endYear int) (FeatureCollection, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return FilterByYearRange(snap.Features, startYear, endYear), nil
}
