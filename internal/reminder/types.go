package reminder

import (
	"context"
	"fmt"
	"time"

	"smart-task-bot/internal/model"
)

const (
	tagPrefix   = "reminder_"
	fireTimeout = 30 * time.Second
)

// Job describes a one-shot reminder for a task.
type Job struct {
	TaskID      int64
	OwnerID     int64
	ChatID      int64
	Description string
	DueAt       time.Time
}

// Notifier delivers reminder text to a chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// TaskGetter re-reads a task at fire time. Satisfied by the task repository.
type TaskGetter interface {
	GetOne(ctx context.Context, ownerID, id int64) (model.Task, error)
}

// Tag returns the scheduler tag of a task's reminder.
func Tag(taskID int64) string {
	return fmt.Sprintf("%s%d", tagPrefix, taskID)
}

// Text renders the reminder message (Markdown).
func Text(description string) string {
	return fmt.Sprintf("Привет! 👋 Просто напоминаю, что у тебя есть задача: *%s*! Давай ее сделаем?", description)
}
