// Package scheduler runs background jobs on cron schedules, currently the
// nightly net-worth snapshot.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"nestegg/internal/logger"
	"nestegg/internal/services"
)

// Scheduler manages background jobs.
type Scheduler struct {
	cron      *cron.Cron
	snapshots services.SnapshotServicer
}

// New creates a scheduler wired to the snapshot service.
func New(snapshots services.SnapshotServicer) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		snapshots: snapshots,
	}
}

// Start registers the snapshot job on the given cron schedule and starts
// the scheduler.
func (s *Scheduler) Start(snapshotSchedule string) error {
	if _, err := s.cron.AddFunc(snapshotSchedule, s.runSnapshots); err != nil {
		return err
	}
	s.cron.Start()
	logger.Get().Infow("scheduler started", "snapshot_schedule", snapshotSchedule)
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Get().Infow("scheduler stopped")
}

func (s *Scheduler) runSnapshots() {
	start := time.Now()
	recorded, err := s.snapshots.ComputeAndRecordSnapshots(start)
	if err != nil {
		logger.Get().Errorw("snapshot job failed", "error", err.Error())
		return
	}
	logger.Get().Infow("snapshot job completed",
		"recorded", recorded,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
