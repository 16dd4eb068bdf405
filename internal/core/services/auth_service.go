package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	ports "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

type authService struct {
	userRepo portsrepo.UserRepository
}

// NewAuthService creates the authentication service.
func NewAuthService(userRepo portsrepo.UserRepository) ports.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ ports.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password: the response must not
			// reveal whether the username exists.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		logger.Error("failed to look up user for login", slog.Any("error", err))
		return nil, err
	}

	if user.IsBanned {
		return nil, fmt.Errorf("%w: account is suspended", apperrors.ErrBanned)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	logger.Info("user logged in", slog.String("userID", user.UserID))
	return user, nil
}

func (s *authService) CompleteProfile(ctx context.Context, actor *domain.User, req dto.CompleteProfileRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateCredentials(ctx, actor.UserID, hash, false); err != nil {
		logger.Error("failed to update credentials", slog.Any("error", err))
		return nil, err
	}

	updated := *actor
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.PhoneNumber != "" {
		updated.PhoneNumber = req.PhoneNumber
	}
	if req.Gender != "" {
		updated.Gender = req.Gender
	}
	updated.IsFirstLogin = false
	if err := s.userRepo.UpdateProfile(ctx, updated); err != nil {
		return nil, err
	}

	return s.userRepo.FindUserByID(ctx, actor.UserID)
}

func (s *authService) UpdateProfile(ctx context.Context, actor *domain.User, req dto.UpdateProfileRequest) (*domain.User, error) {
	updated := *actor
	updated.Name = req.Name
	updated.PhoneNumber = req.PhoneNumber
	updated.Gender = req.Gender
	if req.Email == "" {
		updated.Email = nil
	} else {
		email := req.Email
		updated.Email = &email
	}

	if err := s.userRepo.UpdateProfile(ctx, updated); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, actor.UserID)
}
