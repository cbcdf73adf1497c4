package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// CycleRunner runs one full birthday cycle for the given date.
type CycleRunner interface {
	Run(ctx context.Context, today time.Time) error
}

// Scheduler triggers the daily cycle on a cron spec. The business logic
// assumes one cycle at a time, which a single cron entry guarantees.
type Scheduler struct {
	cron  *cron.Cron
	cycle CycleRunner
	spec  string
}

func New(spec string, cycle CycleRunner) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		cycle: cycle,
		spec:  spec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.cycle.Run(context.Background(), time.Now()); err != nil {
			slog.Error("scheduled cycle failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily cycle: %w", err)
	}

	s.cron.Start()
	slog.Info("scheduler started", "cron", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}
