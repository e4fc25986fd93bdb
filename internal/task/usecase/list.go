package usecase

import (
	"context"
	"fmt"

	"smart-task-bot/internal/model"
	"smart-task-bot/internal/task"
	"smart-task-bot/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{
		OwnerID:  sc.UserID,
		Status:   input.Status,
		Category: input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: user=%d: %v", sc.UserID, err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
