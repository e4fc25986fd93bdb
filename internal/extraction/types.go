package extraction

import "smart-task-bot/internal/model"

// Result holds the validated extraction output.
type Result struct {
	Description string
	DueDateText *string
	Priority    model.Priority
	Category    *string
}

// Fallback is the deterministic result used whenever the model reply is unusable.
func Fallback(rawText string) Result {
	return Result{
		Description: rawText,
		Priority:    model.PriorityMedium,
	}
}

// Reply field names.
const (
	fieldTaskText = "task_text"
	fieldDueDate  = "due_date"
	fieldPriority = "priority"
	fieldCategory = "category"
)
