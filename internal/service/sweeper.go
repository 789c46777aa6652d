package service

import (
	"log"
	"sync"
	"time"
)

// SweepTask removes stale entries from some in-memory state and reports
// how many it dropped.
type SweepTask struct {
	Name  string
	Sweep func() int
}

// Sweeper periodically runs its tasks so abandoned per-chat state
// doesn't accumulate.
type Sweeper struct {
	tasks    []SweepTask
	interval time.Duration
	stopCh   chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

func NewSweeper(interval time.Duration, tasks ...SweepTask) *Sweeper {
	return &Sweeper{
		tasks:    tasks,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	log.Printf("[Sweeper.Start] sweeping %d tasks every %s", len(s.tasks), s.interval)
	go s.run(time.NewTicker(s.interval))
}

// Stop is safe to call more than once and without a prior Start.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	close(s.stopCh)
	s.mu.Unlock()

	if started {
		<-s.done
	}
	log.Println("[Sweeper.Stop] stopped")
}

func (s *Sweeper) run(ticker *time.Ticker) {
	defer close(s.done)
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

func (s *Sweeper) sweep() {
	for _, t := range s.tasks {
		if n := t.Sweep(); n > 0 {
			log.Printf("[Sweeper.sweep] %s: removed %d entries", t.Name, n)
		}
	}
}
