package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// TaskSvcFacade covers event tasks.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, actor *domain.User, req dto.TaskForm) (*domain.Task, error)
	UpdateTask(ctx context.Context, actor *domain.User, taskID string, req dto.TaskForm) (*domain.Task, error)
	DeleteTask(ctx context.Context, actor *domain.User, taskID string) error
	ListTasks(ctx context.Context, actor *domain.User) ([]domain.Task, error)
	ListTasksByEvent(ctx context.Context, actor *domain.User, eventID string) ([]domain.Task, error)
}
