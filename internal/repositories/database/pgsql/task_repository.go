package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
)

type PgxTaskRepository struct {
	BaseRepository
}

func NewTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

// Tasks carry joined event and assignee names for list rendering.
const taskColumns = `t.task_id, t.title, t.event_id, e.name, t.assignee_id,
	COALESCE(u.name, ''), t.priority, t.status, t.due_date, t.created_at, t.updated_at`

const taskJoins = `
	FROM tasks t
	JOIN events e ON e.event_id = t.event_id
	LEFT JOIN users u ON u.user_id = t.assignee_id`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.TaskID,
		&t.Title,
		&t.EventID,
		&t.EventName,
		&t.AssigneeID,
		&t.AssigneeName,
		&t.Priority,
		&t.Status,
		&t.DueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan task row: %w", err)
	}
	return &t, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task, ownerID string) error {
	query := `
		INSERT INTO tasks (task_id, title, event_id, assignee_id, priority, status, due_date,
			created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $8
		WHERE EXISTS (SELECT 1 FROM events WHERE event_id = $3 AND created_by = $9);
	`
	tag, err := r.Pool.Exec(ctx, query,
		task.TaskID, task.Title, task.EventID, task.AssigneeID,
		task.Priority, task.Status, task.DueDate, time.Now(), ownerID)
	if err != nil {
		return mapWriteError(err, "save task")
	}
	return requireRow(tag, "event")
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + taskJoins + `
		WHERE t.task_id = $1 AND e.created_by = $2;`
	return scanTask(r.Pool.QueryRow(ctx, query, taskID, ownerID))
}

func (r *PgxTaskRepository) FindTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + taskJoins + `
		WHERE e.created_by = $1
		ORDER BY t.due_date ASC NULLS LAST, t.created_at DESC;`
	return r.queryTasks(ctx, query, ownerID)
}

func (r *PgxTaskRepository) FindTasksByEvent(ctx context.Context, eventID, ownerID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + taskJoins + `
		WHERE t.event_id = $1 AND e.created_by = $2
		ORDER BY t.due_date ASC NULLS LAST, t.created_at DESC;`
	return r.queryTasks(ctx, query, eventID, ownerID)
}

func (r *PgxTaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task, ownerID string) error {
	// The new event must also belong to the tenant; moving a task to a
	// foreign event is indistinguishable from a missing task.
	query := `
		UPDATE tasks t
		SET title = $1, event_id = $2, assignee_id = $3, priority = $4, status = $5,
			due_date = $6, updated_at = $7
		FROM events e
		WHERE e.event_id = t.event_id AND t.task_id = $8 AND e.created_by = $9
		  AND EXISTS (SELECT 1 FROM events WHERE event_id = $2 AND created_by = $9);
	`
	tag, err := r.Pool.Exec(ctx, query,
		task.Title, task.EventID, task.AssigneeID, task.Priority, task.Status,
		task.DueDate, time.Now(), task.TaskID, ownerID)
	if err != nil {
		return mapWriteError(err, "update task")
	}
	return requireRow(tag, "task")
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID, ownerID string) error {
	query := `
		DELETE FROM tasks t
		USING events e
		WHERE e.event_id = t.event_id AND t.task_id = $1 AND e.created_by = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(tag, "task")
}
