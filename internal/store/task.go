package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cyberme/apiserver/types"
	"github.com/google/uuid"
)

// TaskRepository handles persistence for tasks.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new pending task and returns the persisted row.
func (r *TaskRepository) Create(ctx context.Context, title string, priority *string) (types.TaskItem, error) {
	task := types.TaskItem{
		ID:        uuid.New(),
		Title:     title,
		IsDone:    false,
		Priority:  priority,
		CreatedAt: time.Now(),
	}

	const query = `
		INSERT INTO tasks (id, title, priority, is_done, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Priority,
		task.IsDone,
		task.CreatedAt,
	); err != nil {
		return types.TaskItem{}, err
	}
	return task, nil
}

// Toggle inverts is_done in a single statement. The flip and the read of
// the current value happen inside one UPDATE, so concurrent togglers of
// the same task never lose a flip to a read-then-write race.
func (r *TaskRepository) Toggle(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE tasks SET is_done = NOT is_done WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPending returns the number of tasks not yet done.
func (r *TaskRepository) CountPending(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE is_done = FALSE`
	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Recent returns up to limit tasks ordered by creation time, newest
// first. Ties are broken by the storage engine.
func (r *TaskRepository) Recent(ctx context.Context, limit int) ([]types.TaskItem, error) {
	const query = `
		SELECT id, title, priority, is_done, created_at
		FROM tasks
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]types.TaskItem, 0, limit)
	for rows.Next() {
		var task types.TaskItem
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Priority,
			&task.IsDone,
			&task.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
