package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"smart-task-bot/internal/model"
	repo "smart-task-bot/internal/task/repository"
)

// Create inserts a pending task and returns the stored entity.
// Invalid priorities are stored as medium; the category is normalized.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	priority := opt.Priority
	if !priority.IsValid() {
		priority = model.PriorityMedium
	}
	var category *string
	if opt.Category != nil {
		category = model.NormalizeCategory(*opt.Category)
	}

	const query = `
		INSERT INTO tasks (owner_id, description, due_at, status, priority, category, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, '', ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query),
		opt.OwnerID, opt.Description, nullTime(opt.DueAt), string(model.StatusPending),
		string(priority), nullString(category), now, now,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	t := model.Task{
		ID:          id,
		OwnerID:     opt.OwnerID,
		Description: opt.Description,
		Status:      model.StatusPending,
		Priority:    priority,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if opt.DueAt != nil {
		due := opt.DueAt.UTC()
		t.DueAt = &due
	}
	return t, nil
}

// GetOne returns zero-value Task (ID == 0) when not found or not owned.
func (r *implRepository) GetOne(ctx context.Context, ownerID, id int64) (model.Task, error) {
	row, err := r.getOne(ctx, r.db, ownerID, id, false)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns the owner's tasks in display order.
func (r *implRepository) List(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY id", taskColumns, where)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	repo.SortTasks(tasks)
	return tasks, nil
}

// Update runs read → mutate → write-back in a single transaction scoped by (owner_id, id).
func (r *implRepository) Update(ctx context.Context, ownerID, id int64, mutate repo.MutateFunc) (model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	row, err := r.getOne(ctx, tx, ownerID, id, r.isPostgres())
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s read: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	current := row.toModel()
	next, err := mutate(current)
	if err != nil {
		return model.Task{}, err
	}
	next.ID = current.ID
	next.OwnerID = current.OwnerID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = time.Now().UTC()

	const query = `
		UPDATE tasks
		SET description = ?, due_at = ?, status = ?, priority = ?, category = ?, notes = ?, updated_at = ?
		WHERE owner_id = ? AND id = ?`

	res, err := tx.ExecContext(ctx, tx.Rebind(query),
		next.Description, nullTime(next.DueAt), string(next.Status), string(next.Priority),
		nullString(next.Category), next.Notes, next.UpdatedAt,
		ownerID, id,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if next.DueAt != nil {
		due := next.DueAt.UTC()
		next.DueAt = &due
	}
	return next, nil
}

func (r *implRepository) getOne(ctx context.Context, q sqlx.QueryerContext, ownerID, id int64, forUpdate bool) (taskRow, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE owner_id = ? AND id = ?", taskColumns)
	if forUpdate {
		query += " FOR UPDATE"
	}

	var row taskRow
	err := sqlx.GetContext(ctx, q, &row, r.db.Rebind(query), ownerID, id)
	return row, err
}
