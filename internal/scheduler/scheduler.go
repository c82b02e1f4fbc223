package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires the recurring spoken-reminder job on a cron spec.
type Scheduler struct {
	cron         *cron.Cron
	ctx          context.Context
	cancel       context.CancelFunc
	reminderFunc func(ctx context.Context) error
}

func New(loc *time.Location) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetReminderFunction sets the job run on every tick.
func (s *Scheduler) SetReminderFunction(f func(ctx context.Context) error) {
	s.reminderFunc = f
}

// Start registers the cron entry and begins ticking. A nil reminder
// function leaves the scheduler idle.
func (s *Scheduler) Start(spec string) error {
	if s.reminderFunc == nil {
		log.Println("reminder function not set, scheduler will stay idle")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		log.Printf("triggered spoken reminder (%s)", spec)
		if err := s.reminderFunc(s.ctx); err != nil {
			log.Printf("spoken reminder failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("scheduler started, reminder runs on %q", spec)
	return nil
}

// Stop waits for a running job to finish before returning.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
