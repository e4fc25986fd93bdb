package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-task-bot/internal/model"
	"smart-task-bot/internal/task"
	"smart-task-bot/internal/task/repository"
)

// MarkDone completes a task and drops its pending reminder.
func (uc *implUseCase) MarkDone(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	t, err := uc.update(ctx, sc, id, "MarkDone", func(cur model.Task) (model.Task, error) {
		cur.Status = model.StatusCompleted
		return cur, nil
	})
	if err != nil {
		return model.Task{}, err
	}

	if uc.reminders != nil {
		uc.reminders.Cancel(t.ID)
	}
	return t, nil
}

// UpdateText replaces the description. A pending reminder is re-registered so
// it carries the new text.
func (uc *implUseCase) UpdateText(ctx context.Context, sc model.Scope, input task.UpdateTextInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	t, err := uc.update(ctx, sc, input.ID, "UpdateText", func(cur model.Task) (model.Task, error) {
		cur.Description = text
		return cur, nil
	})
	if err != nil {
		return model.Task{}, err
	}

	if t.Status == model.StatusPending && t.DueAt != nil {
		uc.scheduleReminder(ctx, t, chatIDOf(sc, input.ChatID))
	}
	return t, nil
}

// AppendNote adds a timestamped entry after the existing notes, which are kept as is.
func (uc *implUseCase) AppendNote(ctx context.Context, sc model.Scope, input task.AppendNoteInput) (model.Task, error) {
	note := strings.TrimSpace(input.Note)
	if note == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	stamp := uc.now().In(uc.dateMath.Location()).Format(noteLayout)
	entry := fmt.Sprintf("Дополнение (%s): %s", stamp, note)

	return uc.update(ctx, sc, input.ID, "AppendNote", func(cur model.Task) (model.Task, error) {
		if cur.Notes == "" {
			cur.Notes = entry
		} else {
			cur.Notes = cur.Notes + noteSeparator + entry
		}
		return cur, nil
	})
}

// SetPriority rejects values outside high, medium and low.
func (uc *implUseCase) SetPriority(ctx context.Context, sc model.Scope, input task.SetPriorityInput) (model.Task, error) {
	p, ok := model.ParsePriority(input.Priority)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: got %q", task.ErrInvalidPriority, input.Priority)
	}

	return uc.update(ctx, sc, input.ID, "SetPriority", func(cur model.Task) (model.Task, error) {
		cur.Priority = p
		return cur, nil
	})
}

func (uc *implUseCase) update(ctx context.Context, sc model.Scope, id int64, op string, mutate repository.MutateFunc) (model.Task, error) {
	t, err := uc.repo.Update(ctx, sc.UserID, id, mutate)
	if err != nil {
		uc.l.Errorf(ctx, "%s: user=%d task=%d: %v", op, sc.UserID, id, err)
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "%s: user=%d task=%d", op, sc.UserID, id)
	return t, nil
}
