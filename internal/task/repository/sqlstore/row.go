package sqlstore

import (
	"database/sql"
	"time"

	"smart-task-bot/internal/model"
)

const taskColumns = `id, owner_id, description, due_at, status, priority, category, notes, created_at, updated_at`

type taskRow struct {
	ID          int64          `db:"id"`
	OwnerID     int64          `db:"owner_id"`
	Description string         `db:"description"`
	DueAt       sql.NullTime   `db:"due_at"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	Category    sql.NullString `db:"category"`
	Notes       string         `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (row taskRow) toModel() model.Task {
	t := model.Task{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Description: row.Description,
		Status:      model.Status(row.Status),
		Priority:    model.Priority(row.Priority),
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
	if row.DueAt.Valid {
		due := row.DueAt.Time.UTC()
		t.DueAt = &due
	}
	if row.Category.Valid {
		c := row.Category.String
		t.Category = &c
	}
	return t
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
