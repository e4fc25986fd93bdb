package repository

import (
	"time"

	"smart-task-bot/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	OwnerID     int64
	Description string
	DueAt       *time.Time
	Priority    model.Priority
	Category    *string
}

// ListTasksOptions filters a listing. Empty Status means pending;
// model.StatusAll disables the status filter. Category is matched lower-cased.
type ListTasksOptions struct {
	OwnerID  int64
	Status   model.Status
	Category string
}

// MutateFunc builds the new value of a task from its current value.
// ID, OwnerID and CreatedAt of the result are ignored.
type MutateFunc func(current model.Task) (model.Task, error)
