package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Runner starts one check cycle. Returns false when a cycle was already
// in flight.
type Runner interface {
	Run() bool
}

// Scheduler runs the monitor on a fixed interval, skipping cycles that
// fall outside the configured active hours.
type Scheduler struct {
	cron      *cron.Cron
	monitor   Runner
	hourStart int
	hourEnd   int
	now       func() time.Time
}

// New builds a scheduler that only runs the monitor when the local hour
// is inside [hourStart, hourEnd).
func New(m Runner, hourStart, hourEnd int) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		monitor:   m,
		hourStart: hourStart,
		hourEnd:   hourEnd,
		now:       time.Now,
	}
}

// Start schedules the recurring check and fires one immediately.
func (s *Scheduler) Start(intervalHours int) error {
	spec := fmt.Sprintf("0 */%d * * *", intervalHours)
	if _, err := s.cron.AddFunc(spec, s.runIfActive); err != nil {
		return fmt.Errorf("schedule monitor: %w", err)
	}

	// Also run immediately on startup
	go s.runIfActive()

	s.cron.Start()
	log.Printf("Monitor scheduled to run every %d hours (active %02d:00-%02d:00)", intervalHours, s.hourStart, s.hourEnd)
	return nil
}

// Stop stops the scheduled checks.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) runIfActive() {
	hour := s.now().Hour()
	if hour < s.hourStart || hour >= s.hourEnd {
		log.Printf("Outside active hours (%02d:00), skipping cycle", hour)
		return
	}
	if !s.monitor.Run() {
		log.Println("Previous cycle still in progress, skipping")
	}
}
