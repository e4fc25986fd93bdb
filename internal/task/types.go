package task

import "smart-task-bot/internal/model"

// CreateInput is the input for task creation.
// The owner is taken from model.Scope.
type CreateInput struct {
	RawText string // Free-form text from the user
	ChatID  int64  // Where the reminder is delivered
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task         model.Task
	CalendarLink string // Google Calendar event link (may be empty)
}

// ListInput filters a listing. Empty Status means pending.
type ListInput struct {
	Status   model.Status
	Category string
}

// ListOutput is the result of a listing.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// UpdateTextInput replaces a task description.
type UpdateTextInput struct {
	ID     int64
	Text   string
	ChatID int64 // Used when the reminder has to be rescheduled
}

// AppendNoteInput adds a timestamped note to a task.
type AppendNoteInput struct {
	ID   int64
	Note string
}

// SetPriorityInput changes a task priority. Priority is validated, never substituted.
type SetPriorityInput struct {
	ID       int64
	Priority string
}
