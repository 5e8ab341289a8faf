// Package scheduler owns the clock-driven triggers: a minute tick that
// delivers due reminders and a nightly rebuild of every user's reminder
// rows. The scheduling decisions themselves live in the services layer.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/elowenrae/steady/internal/services"
	"github.com/robfig/cron/v3"
)

type ReminderProcessor interface {
	ProcessDueReminders(reference time.Time) (int, error)
	RescheduleAllForUser(userID uint, reference time.Time) error
}

type UserLister interface {
	ListIDs() ([]uint, error)
}

type Runner struct {
	cron     *cron.Cron
	schedule ReminderProcessor
	users    UserLister
}

func NewRunner(schedule *services.ScheduleService, users UserLister) *Runner {
	return &Runner{
		cron:     cron.New(),
		schedule: schedule,
		users:    users,
	}
}

// Start registers the cron entries and runs them until the context is
// cancelled.
func (runner *Runner) Start(ctx context.Context) error {
	if _, err := runner.cron.AddFunc("* * * * *", runner.processDue); err != nil {
		return err
	}
	if _, err := runner.cron.AddFunc("0 2 * * *", runner.rebuildAll); err != nil {
		return err
	}

	runner.cron.Start()
	go func() {
		<-ctx.Done()
		stopCtx := runner.cron.Stop()
		<-stopCtx.Done()
	}()
	return nil
}

func (runner *Runner) processDue() {
	sent, err := runner.schedule.ProcessDueReminders(time.Now().UTC())
	if err != nil {
		log.Printf("scheduler: process due reminders failed: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("scheduler: delivered %d reminder(s)", sent)
	}
}

func (runner *Runner) rebuildAll() {
	ids, err := runner.users.ListIDs()
	if err != nil {
		log.Printf("scheduler: list users failed: %v", err)
		return
	}

	now := time.Now().UTC()
	for _, userID := range ids {
		if err := runner.schedule.RescheduleAllForUser(userID, now); err != nil {
			log.Printf("scheduler: rebuild reminders for user %d failed: %v", userID, err)
		}
	}
}
