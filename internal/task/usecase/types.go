package usecase

import (
	"context"

	"smart-task-bot/internal/reminder"
	"smart-task-bot/pkg/gcalendar"
)

// Reminders is satisfied by *reminder.Scheduler.
type Reminders interface {
	Schedule(ctx context.Context, job reminder.Job) error
	Cancel(taskID int64)
}

// Calendar is satisfied by *gcalendar.Client.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

const (
	noteLayout    = "2006-01-02 15:04"
	noteSeparator = "\n--- "
)
