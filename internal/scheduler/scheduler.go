package scheduler

import (
	"context"
	"sync"
	"time"

	"dashboard/backend/internal/service"
	"dashboard/backend/pkg/logger"
)

// Scheduler periodically drops document sessions that have been idle longer than ttl.
type Scheduler struct {
	documents service.DocumentService
	interval  time.Duration
	ttl       time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func New(documents service.DocumentService, interval, ttl time.Duration) *Scheduler {
	return &Scheduler{
		documents: documents,
		interval:  interval,
		ttl:       ttl,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "interval", s.interval, "session_ttl", s.ttl)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	logger.Info("scheduler stopped")
}

// Run starts the scheduler and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	evicted := s.documents.EvictIdle(s.ttl)
	if evicted == 0 {
		return
	}
	logger.Info("idle sessions evicted", "module", "scheduler", "action", "evict", "resource", "session", "result", "ok", "count", evicted, "remaining", s.documents.SessionCount())
}
