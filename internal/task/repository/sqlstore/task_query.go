package sqlstore

import (
	"strings"

	"smart-task-bot/internal/model"
	repo "smart-task-bot/internal/task/repository"
)

// buildListQuery builds the WHERE clause + args for List. Placeholders are
// written as "?" and rebound per driver by the caller.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"owner_id = ?"}
	args := []any{opt.OwnerID}

	status := opt.Status
	if status == "" {
		status = model.StatusPending
	}
	if status != model.StatusAll {
		conditions = append(conditions, "status = ?")
		args = append(args, string(status))
	}

	if c := model.NormalizeCategory(opt.Category); c != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *c)
	}

	return strings.Join(conditions, " AND "), args
}
