package giveaway

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCheckInterval is how often the scheduler scans for expired giveaways
const DefaultCheckInterval = 60 * time.Second

// SchedulerConfig holds configuration for the expiry scheduler
type SchedulerConfig struct {
	// Service to drive end transitions through
	Service Service

	// Interval between scans, defaults to DefaultCheckInterval
	Interval time.Duration
}

// Scheduler periodically ends giveaways whose deadline has passed. It drives
// them through the same EndGiveaway operation manual commands use, so there
// is a single code path for ending a giveaway.
type Scheduler struct {
	service  Service
	interval time.Duration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewScheduler creates a new expiry scheduler
func NewScheduler(cfg *SchedulerConfig) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Service == nil {
		return nil, ErrNilService
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	return &Scheduler{
		service:  cfg.Service,
		interval: interval,
	}, nil
}

// Start launches the scan loop. Call Stop to shut it down.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				out, err := s.service.EndExpiredGiveaways(ctx, &EndExpiredGiveawaysInput{})
				if err != nil {
					log.Printf("Expiry scan failed: %v", err)
					continue
				}
				if out.Ended > 0 || out.Failed > 0 {
					log.Printf("Expiry scan ended %d giveaways, %d failed", out.Ended, out.Failed)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the scan loop and waits for it to exit
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
