package repositories

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user. A username or email collision returns a
	// wrapped apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindTeam returns the tenant root plus all staff whose manager is the
	// tenant root.
	FindTeam(ctx context.Context, ownerID string) ([]domain.User, error)
	// FindAllUsers returns every user. Admin-only callers.
	FindAllUsers(ctx context.Context) ([]domain.User, error)
	// UpdateProfile persists name/email/phone/gender changes.
	UpdateProfile(ctx context.Context, user domain.User) error
	// UpdateCredentials replaces the password hash and first-login flag.
	UpdateCredentials(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error
	SetBanned(ctx context.Context, userID string, banned bool) error
	// DeleteUser removes the user row. Hard delete.
	DeleteUser(ctx context.Context, userID string) error
}
