package repository

import (
	"cmp"
	"slices"

	"smart-task-bot/internal/model"
)

// SortTasks orders tasks by priority rank descending, then due date ascending
// with undated tasks last, then id ascending.
func SortTasks(tasks []model.Task) {
	slices.SortStableFunc(tasks, compareTasks)
}

func compareTasks(a, b model.Task) int {
	if c := cmp.Compare(b.Priority.Rank(), a.Priority.Rank()); c != 0 {
		return c
	}

	switch {
	case a.DueAt == nil && b.DueAt != nil:
		return 1
	case a.DueAt != nil && b.DueAt == nil:
		return -1
	case a.DueAt != nil && b.DueAt != nil:
		if c := a.DueAt.Compare(*b.DueAt); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.ID, b.ID)
}
