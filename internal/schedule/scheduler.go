// Package schedule runs cycles on a cron schedule for the optional
// daemon mode. The default deployment runs one cycle per process under an
// external scheduler and never touches this package.
package schedule

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// CycleFunc runs one cycle.
type CycleFunc func(ctx context.Context) error

// Scheduler triggers cycles on a cron spec. Cycles never overlap: a tick
// that fires while the previous cycle is still running is skipped.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	run     CycleFunc
	logger  *log.Logger
	running atomic.Bool
}

// New creates a scheduler for the given standard 5-field cron spec.
func New(spec string, run CycleFunc, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		spec:   spec,
		run:    run,
		logger: logger,
	}
}

// Start registers the job and starts the cron loop. The provided context
// is passed to every cycle.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if !s.running.CompareAndSwap(false, true) {
			s.logger.Printf("previous cycle still running, skipping tick")
			return
		}
		defer s.running.Store(false)

		if err := s.run(ctx); err != nil {
			s.logger.Printf("scheduled cycle failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Printf("scheduler started with spec %q", s.spec)
	return nil
}

// Stop stops the cron loop and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Printf("scheduler stopped")
}
