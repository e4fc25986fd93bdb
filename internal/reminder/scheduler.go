package reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-co-op/gocron/v2"

	"smart-task-bot/internal/model"
	"smart-task-bot/pkg/log"
)

var ErrSchedule = errors.New("failed to schedule reminder")

// Schedule registers a one-shot reminder for job.TaskID, replacing any pending
// one for the same task. A due time in the past fires immediately.
func (sch *Scheduler) Schedule(ctx context.Context, job Job) error {
	tag := Tag(job.TaskID)
	sch.s.RemoveByTags(tag)

	start := gocron.OneTimeJobStartImmediately()
	if job.DueAt.After(sch.now()) {
		start = gocron.OneTimeJobStartDateTime(job.DueAt)
	}

	_, err := sch.s.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(sch.fire, job),
		gocron.WithTags(tag),
		gocron.WithName(tag),
	)
	if err != nil {
		sch.l.Errorf(ctx, "reminder.Schedule task=%d: %v", job.TaskID, err)
		return fmt.Errorf("%w: %v", ErrSchedule, err)
	}

	sch.l.Infof(ctx, "reminder.Schedule: task %d at %s", job.TaskID, job.DueAt.UTC().Format("2006-01-02 15:04:05"))
	return nil
}

// Cancel drops the pending reminder of a task, if any.
func (sch *Scheduler) Cancel(taskID int64) {
	sch.s.RemoveByTags(Tag(taskID))
}

// Pending reports how many reminder jobs are registered for taskID.
func (sch *Scheduler) Pending(taskID int64) int {
	tag := Tag(taskID)
	n := 0
	for _, j := range sch.s.Jobs() {
		for _, t := range j.Tags() {
			if t == tag {
				n++
				break
			}
		}
	}
	return n
}

// fire runs on the scheduler's goroutine with its own context. The task is
// re-read so completed or edited tasks are handled correctly. Failures are
// logged and never retried.
func (sch *Scheduler) fire(job Job) {
	ctx, cancel := context.WithTimeout(log.WithTraceID(context.Background()), fireTimeout)
	defer cancel()

	t, err := sch.tasks.GetOne(ctx, job.OwnerID, job.TaskID)
	if err != nil {
		sch.l.Errorf(ctx, "reminder.fire task=%d GetOne: %v", job.TaskID, err)
		return
	}
	if t.ID == 0 {
		sch.l.Warnf(ctx, "reminder.fire: task %d no longer exists", job.TaskID)
		return
	}
	if t.Status != model.StatusPending || t.DueAt == nil || t.DueAt.After(sch.now()) {
		sch.l.Debugf(ctx, "reminder.fire: task %d skipped (status=%s)", job.TaskID, t.Status)
		return
	}

	description := t.Description
	if description == "" {
		description = job.Description
	}
	if err := sch.notifier.Notify(ctx, job.ChatID, Text(description)); err != nil {
		sch.l.Errorf(ctx, "reminder.fire task=%d Notify: %v", job.TaskID, err)
	}
}
