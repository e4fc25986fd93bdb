package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"smart-task-bot/pkg/log"
)

// Scheduler registers one-shot reminder jobs. Construct with New, then Start;
// Stop waits for running jobs.
type Scheduler struct {
	l        log.Logger
	s        gocron.Scheduler
	tasks    TaskGetter
	notifier Notifier
	now      func() time.Time
}

// New creates a stopped Scheduler.
func New(l log.Logger, tasks TaskGetter, notifier Notifier) (*Scheduler, error) {
	sch := &Scheduler{
		l:        l,
		tasks:    tasks,
		notifier: notifier,
		now:      time.Now,
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(gocronLogger{l: l}),
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(gocron.AfterJobRuns(sch.forget)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("reminder.New: %w", err)
	}
	sch.s = s
	return sch, nil
}

// Start begins firing jobs.
func (sch *Scheduler) Start() {
	sch.s.Start()
}

// Stop shuts the scheduler down. Pending reminders are dropped.
func (sch *Scheduler) Stop() error {
	return sch.s.Shutdown()
}

// forget drops one-shot jobs once they have run so Pending stays accurate.
func (sch *Scheduler) forget(jobID uuid.UUID, jobName string) {
	go func() {
		if err := sch.s.RemoveJob(jobID); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
			sch.l.Warnf(context.Background(), "reminder.forget %s: %v", jobName, err)
		}
	}()
}

// gocronLogger routes scheduler logs through log.Logger.
type gocronLogger struct {
	l log.Logger
}

func (g gocronLogger) Debug(msg string, args ...any) {
	g.l.Debugf(context.Background(), "gocron: %s %v", msg, args)
}

func (g gocronLogger) Info(msg string, args ...any) {
	g.l.Debugf(context.Background(), "gocron: %s %v", msg, args)
}

func (g gocronLogger) Warn(msg string, args ...any) {
	g.l.Warnf(context.Background(), "gocron: %s %v", msg, args)
}

func (g gocronLogger) Error(msg string, args ...any) {
	g.l.Errorf(context.Background(), "gocron: %s %v", msg, args)
}
