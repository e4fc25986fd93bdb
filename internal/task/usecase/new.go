package usecase

import (
	"time"

	"smart-task-bot/internal/extraction"
	"smart-task-bot/internal/task"
	"smart-task-bot/internal/task/repository"
	"smart-task-bot/pkg/datemath"
	pkgLog "smart-task-bot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	parser     extraction.Parser
	dateMath   *datemath.Parser
	repo       repository.Repository
	reminders  Reminders
	calendar   Calendar
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil to disable the
// Google Calendar mirror; timezone is the zone events are displayed in.
func New(
	l pkgLog.Logger,
	parser extraction.Parser,
	dateMath *datemath.Parser,
	repo repository.Repository,
	reminders Reminders,
	calendar Calendar,
	calendarID string,
	timezone string,
) task.UseCase {
	return &implUseCase{
		l:          l,
		parser:     parser,
		dateMath:   dateMath,
		repo:       repo,
		reminders:  reminders,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}
