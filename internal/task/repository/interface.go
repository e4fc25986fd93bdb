package repository

import (
	"context"

	"smart-task-bot/internal/model"
)

// Repository is the data access interface for tasks. Every read and write is
// scoped by owner; a task owned by someone else behaves as if it did not exist.
type Repository interface {
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOne returns a zero-value Task (ID == 0) when not found.
	GetOne(ctx context.Context, ownerID, id int64) (model.Task, error)
	// List returns tasks ordered by SortTasks.
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// Update reads the scoped row, applies mutate and writes the result back in
	// one transaction. It returns a zero-value Task when not found. An error from
	// mutate rolls back and is returned unchanged.
	Update(ctx context.Context, ownerID, id int64, mutate MutateFunc) (model.Task, error)
}
