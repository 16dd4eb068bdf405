package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

// generatedPasswordLength is the length of one-time passwords handed out on
// account creation and password reset.
const generatedPasswordLength = 10

type userService struct {
	userRepo portsrepo.UserRepository
	cache    *viewcache.Cache
}

// NewUserService creates the team/account management service.
func NewUserService(userRepo portsrepo.UserRepository, cache *viewcache.Cache) ports.UserSvcFacade {
	return &userService{userRepo: userRepo, cache: cache}
}

var _ ports.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requireOwnerRole(actor); err != nil {
		return nil, "", err
	}

	role := domain.Role(req.Role)
	var managerID *string
	if actor.Role != domain.RoleAdmin {
		// Non-admin owners only ever mint staff inside their own tenant,
		// whatever role the form submitted.
		role = domain.RoleStaff
		owner := actor.EffectiveOwnerID()
		managerID = &owner
	} else {
		if !role.IsValid() {
			role = domain.RoleUser
		}
		if role == domain.RoleStaff {
			owner := actor.UserID
			managerID = &owner
		}
	}

	plaintext, err := utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return nil, "", err
	}
	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		ManagerID:    managerID,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}

	s.cache.Invalidate(actor.EffectiveOwnerID())
	logger.Info("user created",
		slog.String("userID", user.UserID), slog.String("role", string(role)))
	return &user, plaintext, nil
}

func (s *userService) ListTeam(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor.Role == domain.RoleAdmin {
		return s.userRepo.FindAllUsers(ctx)
	}
	return s.userRepo.FindTeam(ctx, actor.EffectiveOwnerID())
}

func (s *userService) ResetPassword(ctx context.Context, actor *domain.User, targetID string) (string, error) {
	target, err := s.userRepo.FindUserByID(ctx, targetID)
	if err != nil {
		return "", err
	}
	if err := canManageUser(actor, target); err != nil {
		return "", err
	}

	plaintext, err := utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return "", err
	}
	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return "", err
	}
	// The reset account walks the onboarding flow again.
	if err := s.userRepo.UpdateCredentials(ctx, target.UserID, hash, true); err != nil {
		return "", err
	}
	return plaintext, nil
}

func (s *userService) ToggleBan(ctx context.Context, actor *domain.User, targetID string, banned bool) error {
	target, err := s.userRepo.FindUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if err := canManageUser(actor, target); err != nil {
		return err
	}
	return s.userRepo.SetBanned(ctx, target.UserID, banned)
}

func (s *userService) DeleteUser(ctx context.Context, actor *domain.User, targetID string) error {
	target, err := s.userRepo.FindUserByID(ctx, targetID)
	if err != nil {
		return err
	}
	if err := canManageUser(actor, target); err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return fmt.Errorf("%w: admin accounts cannot be deleted", apperrors.ErrForbidden)
	}
	if err := s.userRepo.DeleteUser(ctx, target.UserID); err != nil {
		return err
	}
	s.cache.Invalidate(actor.EffectiveOwnerID())
	return nil
}
