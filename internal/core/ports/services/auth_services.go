package services

import (
	"context"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

// AuthSvcFacade covers login and the session-coupled profile flows. Every
// method that mutates role/isFirstLogin/isBanned/email returns the updated
// user so the handler can re-issue the session cookie in the same request.
type AuthSvcFacade interface {
	// Login verifies credentials. Unknown username and wrong password are
	// indistinguishable (apperrors.ErrUnauthorized); a banned account fails
	// with apperrors.ErrBanned before the password is checked.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	// CompleteProfile finishes first-login onboarding: sets name/contact,
	// replaces the password and clears isFirstLogin.
	CompleteProfile(ctx context.Context, actor *domain.User, req dto.CompleteProfileRequest) (*domain.User, error)
	// UpdateProfile changes name/contact/email.
	UpdateProfile(ctx context.Context, actor *domain.User, req dto.UpdateProfileRequest) (*domain.User, error)
}
