package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/core/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

func TestCreateTask_UnassignedSentinelClearsAssignee(t *testing.T) {
	var saved domain.Task
	taskRepo := &MockTaskRepository{
		SaveTaskFn: func(ctx context.Context, task domain.Task, ownerID string) error {
			saved = task
			return nil
		},
	}
	svc := services.NewTaskService(taskRepo, &MockUserRepository{}, newCache())

	_, err := svc.CreateTask(context.Background(), managerActor(), dto.TaskForm{
		Title:      "Book venue",
		EventID:    "evt-1",
		AssigneeID: "unassigned",
	})
	require.NoError(t, err)
	assert.Nil(t, saved.AssigneeID)
	assert.Equal(t, domain.TaskPriorityMedium, saved.Priority)
	assert.Equal(t, domain.TaskStatusPending, saved.Status)
}

func TestCreateTask_AssigneeMustBeTeamMember(t *testing.T) {
	otherManager := "manager-2"
	userRepo := &MockUserRepository{
		FindUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID, Role: domain.RoleStaff, ManagerID: &otherManager}, nil
		},
	}
	svc := services.NewTaskService(&MockTaskRepository{}, userRepo, newCache())

	_, err := svc.CreateTask(context.Background(), managerActor(), dto.TaskForm{
		Title:      "Book venue",
		EventID:    "evt-1",
		AssigneeID: "staff-of-someone-else",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateTask_AssigneeInTeamAccepted(t *testing.T) {
	managerID := "manager-1"
	userRepo := &MockUserRepository{
		FindUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID, Role: domain.RoleStaff, ManagerID: &managerID}, nil
		},
	}
	var saved domain.Task
	taskRepo := &MockTaskRepository{
		SaveTaskFn: func(ctx context.Context, task domain.Task, ownerID string) error {
			assert.Equal(t, "manager-1", ownerID)
			saved = task
			return nil
		},
	}
	svc := services.NewTaskService(taskRepo, userRepo, newCache())

	_, err := svc.CreateTask(context.Background(), managerActor(), dto.TaskForm{
		Title:      "Send invites",
		EventID:    "evt-1",
		AssigneeID: "staff-1",
		Priority:   "HIGH",
		DueDate:    "2026-09-15",
	})
	require.NoError(t, err)
	require.NotNil(t, saved.AssigneeID)
	assert.Equal(t, "staff-1", *saved.AssigneeID)
	assert.Equal(t, domain.TaskPriorityHigh, saved.Priority)
	require.NotNil(t, saved.DueDate)
	assert.Equal(t, "2026-09-15", saved.DueDate.Format("2006-01-02"))
}

func TestCreateTask_ForeignEventLooksMissing(t *testing.T) {
	taskRepo := &MockTaskRepository{
		SaveTaskFn: func(ctx context.Context, task domain.Task, ownerID string) error {
			return apperrors.ErrNotFound
		},
	}
	svc := services.NewTaskService(taskRepo, &MockUserRepository{}, newCache())

	_, err := svc.CreateTask(context.Background(), managerActor(), dto.TaskForm{
		Title:   "Sneaky",
		EventID: "someone-elses-event",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
