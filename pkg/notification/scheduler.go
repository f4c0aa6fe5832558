package notification

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
)

type (
	// ScheduleConfig carries the two recurring triggers. They are
	// independently configurable; nothing orders one relative to the other.
	ScheduleConfig struct {
		// ExpiringSoonSpec is a cron expression for the soon-window job,
		// evaluated in the host timezone.
		ExpiringSoonSpec string
		// ExpiringTodaySpec is a cron expression for the today-exact job.
		ExpiringTodaySpec string
		// Timezone anchors the today-exact job to a named location
		// regardless of the host clock.
		Timezone string
	}

	// Scheduler owns the recurring alert triggers. Jobs are fire-and-forget;
	// their only output is logs.
	Scheduler struct {
		cron *cron.Cron
	}
)

func NewScheduler(service NotificationService, cfg ScheduleConfig) (*Scheduler, error) {
	c := cron.New()

	if _, err := c.AddFunc(cfg.ExpiringSoonSpec, func() {
		log.Info("checking for items expiring soon and sending alerts")
		service.RunExpiringSoonJob(context.Background())
	}); err != nil {
		return nil, err
	}

	todaySpec := cfg.ExpiringTodaySpec
	if cfg.Timezone != "" {
		todaySpec = "CRON_TZ=" + cfg.Timezone + " " + todaySpec
	}
	if _, err := c.AddFunc(todaySpec, func() {
		log.Info("running daily expiring-today check")
		service.RunExpiringTodayJob(context.Background())
	}); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the triggers and waits for any in-flight job run to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
