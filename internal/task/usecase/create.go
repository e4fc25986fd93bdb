package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-task-bot/internal/model"
	"smart-task-bot/internal/reminder"
	"smart-task-bot/internal/task"
	"smart-task-bot/internal/task/repository"
	"smart-task-bot/pkg/gcalendar"
)

// Create extracts structured fields from raw text, stores the task, schedules
// its reminder and mirrors it to Google Calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	rawText := strings.TrimSpace(input.RawText)
	if rawText == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Create: user=%d input_length=%d", sc.UserID, len(rawText))

	// Step 1: Extract fields via LLM (never fails)
	now := uc.now().UTC()
	extracted := uc.parser.Extract(ctx, rawText, sc.UserID, now)

	// Step 2: Resolve the due date
	dueAt := uc.dateMath.Resolve(extracted.DueDateText, rawText, now)

	// Step 3: Store
	t, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		OwnerID:     sc.UserID,
		Description: extracted.Description,
		DueAt:       dueAt,
		Priority:    extracted.Priority,
		Category:    extracted.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: failed to store task: %v", err)
		return task.CreateOutput{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "Create: created task id=%d priority=%s due=%v", t.ID, t.Priority, t.DueAt)

	// Step 4: Reminder and calendar are best effort
	if t.DueAt != nil {
		uc.scheduleReminder(ctx, t, chatIDOf(sc, input.ChatID))
	}

	return task.CreateOutput{
		Task:         t,
		CalendarLink: uc.tryCreateCalendarEvent(ctx, t),
	}, nil
}

func (uc *implUseCase) scheduleReminder(ctx context.Context, t model.Task, chatID int64) {
	if uc.reminders == nil || t.DueAt == nil {
		return
	}
	err := uc.reminders.Schedule(ctx, reminder.Job{
		TaskID:      t.ID,
		OwnerID:     t.OwnerID,
		ChatID:      chatID,
		Description: t.Description,
		DueAt:       *t.DueAt,
	})
	if err != nil {
		uc.l.Warnf(ctx, "failed to schedule reminder for task %d (non-fatal): %v", t.ID, err)
	}
}

// tryCreateCalendarEvent returns the event link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueAt == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:   uc.calendarID,
		Summary:      t.Description,
		Description:  fmt.Sprintf("Priority: %s", t.Priority),
		StartTime:    *t.DueAt,
		Timezone:     uc.timezone,
		PopupAtStart: true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar event creation failed for task %d (non-fatal): %v", t.ID, err)
		return ""
	}

	return event.HtmlLink
}

func chatIDOf(sc model.Scope, chatID int64) int64 {
	if chatID != 0 {
		return chatID
	}
	if sc.ChatID != 0 {
		return sc.ChatID
	}
	return sc.UserID
}
