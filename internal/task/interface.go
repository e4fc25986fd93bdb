package task

import (
	"context"

	"smart-task-bot/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every operation acts on the tasks owned by sc.UserID only.
type UseCase interface {
	// Create extracts fields from free-form text, stores the task and schedules its reminder.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the caller's tasks, highest priority and earliest due first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	MarkDone(ctx context.Context, sc model.Scope, id int64) (model.Task, error)
	UpdateText(ctx context.Context, sc model.Scope, input UpdateTextInput) (model.Task, error)
	AppendNote(ctx context.Context, sc model.Scope, input AppendNoteInput) (model.Task, error)
	SetPriority(ctx context.Context, sc model.Scope, input SetPriorityInput) (model.Task, error)
}
