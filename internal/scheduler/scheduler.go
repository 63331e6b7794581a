// Package scheduler drives the periodic schedule sweeps. In a multi-process
// deployment every instance may run it; the row locks taken by the sweep
// keep concurrent instances from double-firing a schedule.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/simaogato/moneybook-backend/internal/usecase/schedule"
)

// Scheduler periodically invokes the due-record and expiry sweeps.
type Scheduler struct {
	schedules *schedule.Service
	interval  time.Duration
}

// NewScheduler creates a new Scheduler instance
func NewScheduler(schedules *schedule.Service, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{schedules: schedules, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately at startup so due schedules are not delayed a full interval
// after a restart.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("schedule sweep stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	fired, err := s.schedules.CheckDueRecords(ctx)
	if err != nil {
		log.Printf("due-record sweep failed: %v", err)
	} else if fired > 0 {
		log.Printf("due-record sweep fired %d schedule(s)", fired)
	}

	completed, err := s.schedules.CleanupExpiredSchedules(ctx)
	if err != nil {
		log.Printf("expired-schedule sweep failed: %v", err)
	} else if completed > 0 {
		log.Printf("expired-schedule sweep completed %d schedule(s)", completed)
	}
}
