package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/knmi-induced/internal/seismic"
)

const defaultInterval = time.Hour

// Refresher runs one refresh cycle.
type Refresher interface {
	Refresh(ctx context.Context) (seismic.RefreshOutcome, error)
}

// Scheduler periodically refreshes the seismic snapshot.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
	logger    *logrus.Logger
}

// New creates a new Scheduler. A non-positive interval falls back to one hour;
// timeout bounds a single cycle.
func New(interval, timeout time.Duration, refresher Refresher, logger *logrus.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
// The first run happens one interval from now; the initial load is the caller's job.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.runCycle)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.WithFields(logrus.Fields{
		"component": "scheduler",
		"interval":  s.interval.String(),
	}).Info("refresh scheduler started")
	return nil
}

func (s *Scheduler) runCycle() {
	log := s.logger.WithField("component", "scheduler")
	log.Info("running refresh cycle")

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	outcome, err := s.refresher.Refresh(ctx)
	if err != nil {
		log.WithError(err).WithField("outcome", outcome).Error("refresh cycle failed; waiting for next tick")
		return
	}
	log.WithField("outcome", outcome).Info("completed refresh cycle")
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
