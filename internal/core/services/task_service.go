package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

// unassignedSentinel is what select inputs submit for "no assignee".
const unassignedSentinel = "unassigned"

type taskService struct {
	taskRepo portsrepo.TaskRepository
	userRepo portsrepo.UserRepository
	cache    *viewcache.Cache
}

// NewTaskService creates the task management service.
func NewTaskService(taskRepo portsrepo.TaskRepository, userRepo portsrepo.UserRepository, cache *viewcache.Cache) ports.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo, userRepo: userRepo, cache: cache}
}

var _ ports.TaskSvcFacade = (*taskService)(nil)

// resolveAssignee validates the assignee field: empty or "unassigned"
// clears it, anything else must name a member of the actor's team.
func (s *taskService) resolveAssignee(ctx context.Context, actor *domain.User, assigneeID string) (*string, error) {
	if assigneeID == "" || assigneeID == unassignedSentinel {
		return nil, nil
	}
	assignee, err := s.userRepo.FindUserByID(ctx, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("%w: assignee not found", apperrors.ErrValidation)
	}
	owner := actor.EffectiveOwnerID()
	inTeam := assignee.UserID == owner ||
		(assignee.ManagerID != nil && *assignee.ManagerID == owner)
	if !inTeam {
		return nil, fmt.Errorf("%w: assignee is not a team member", apperrors.ErrValidation)
	}
	return &assignee.UserID, nil
}

func applyTaskForm(t *domain.Task, req dto.TaskForm) {
	t.Title = req.Title
	t.EventID = req.EventID
	t.DueDate = utils.DateOrNil(req.DueDate)
	t.Priority = domain.TaskPriorityMedium
	if p := domain.TaskPriority(req.Priority); p.IsValid() {
		t.Priority = p
	}
	t.Status = domain.TaskStatusPending
	if st := domain.TaskStatus(req.Status); st.IsValid() {
		t.Status = st
	}
}

func (s *taskService) CreateTask(ctx context.Context, actor *domain.User, req dto.TaskForm) (*domain.Task, error) {
	owner := actor.EffectiveOwnerID()

	assigneeID, err := s.resolveAssignee(ctx, actor, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	task := domain.Task{
		TaskID:     uuid.NewString(),
		AssigneeID: assigneeID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	applyTaskForm(&task, req)

	if err := s.taskRepo.SaveTask(ctx, task, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return &task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, actor *domain.User, taskID string, req dto.TaskForm) (*domain.Task, error) {
	owner := actor.EffectiveOwnerID()
	task, err := s.taskRepo.FindTaskByID(ctx, taskID, owner)
	if err != nil {
		return nil, err
	}

	assigneeID, err := s.resolveAssignee(ctx, actor, req.AssigneeID)
	if err != nil {
		return nil, err
	}
	task.AssigneeID = assigneeID
	applyTaskForm(task, req)
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.UpdateTask(ctx, *task, owner); err != nil {
		return nil, err
	}
	s.cache.Invalidate(owner)
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, actor *domain.User, taskID string) error {
	owner := actor.EffectiveOwnerID()
	if err := s.taskRepo.DeleteTask(ctx, taskID, owner); err != nil {
		return err
	}
	s.cache.Invalidate(owner)
	return nil
}

func (s *taskService) ListTasks(ctx context.Context, actor *domain.User) ([]domain.Task, error) {
	return s.taskRepo.FindTasks(ctx, actor.EffectiveOwnerID())
}

func (s *taskService) ListTasksByEvent(ctx context.Context, actor *domain.User, eventID string) ([]domain.Task, error) {
	return s.taskRepo.FindTasksByEvent(ctx, eventID, actor.EffectiveOwnerID())
}
