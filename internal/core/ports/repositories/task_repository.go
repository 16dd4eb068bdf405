package repositories

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks, scoped
// transitively through the owning event.
type TaskRepository interface {
	SaveTask(ctx context.Context, task domain.Task, ownerID string) error
	FindTaskByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error)
	FindTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	FindTasksByEvent(ctx context.Context, eventID, ownerID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task, ownerID string) error
	DeleteTask(ctx context.Context, taskID, ownerID string) error
}
