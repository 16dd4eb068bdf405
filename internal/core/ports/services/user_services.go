package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// UserSvcFacade covers team and account management.
type UserSvcFacade interface {
	// GetUserByID loads a user without tenant filtering. It backs the
	// per-request live-session check, not user-facing listings.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// CreateUser creates a team member and returns the generated plaintext
	// password exactly once. Non-admin actors always create STAFF accounts
	// under their own tenant, whatever role the form asked for.
	CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, string, error)
	// ListTeam returns all users for admins, otherwise self plus own staff.
	ListTeam(ctx context.Context, actor *domain.User) ([]domain.User, error)
	// ResetPassword regenerates a password, forces isFirstLogin, and returns
	// the plaintext exactly once.
	ResetPassword(ctx context.Context, actor *domain.User, targetID string) (string, error)
	// ToggleBan sets the banned flag. Idempotent. Enforcement happens via
	// the live per-request user check, not by invalidating the session.
	ToggleBan(ctx context.Context, actor *domain.User, targetID string, banned bool) error
	// DeleteUser hard-deletes a team member.
	DeleteUser(ctx context.Context, actor *domain.User, targetID string) error
}
