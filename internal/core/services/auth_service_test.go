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
	"github.com/eventiqo/eventiqo-backend/internal/utils"
)

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	userRepo := &MockUserRepository{
		FindUserByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			assert.Equal(t, "alice", username)
			return &domain.User{UserID: "u-1", Username: "alice", PasswordHash: hash, Role: domain.RoleManager}, nil
		},
	}
	svc := services.NewAuthService(userRepo)

	user, err := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}

func TestLogin_UnknownUserAndWrongPasswordLookIdentical(t *testing.T) {
	hash, err := utils.HashPassword("right")
	require.NoError(t, err)

	userRepo := &MockUserRepository{
		FindUserByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username == "alice" {
				return &domain.User{UserID: "u-1", Username: "alice", PasswordHash: hash}, nil
			}
			return nil, apperrors.ErrNotFound
		},
	}
	svc := services.NewAuthService(userRepo)

	_, errUnknown := svc.Login(context.Background(), dto.LoginRequest{Username: "mallory", Password: "right"})
	_, errWrongPw := svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrUnauthorized)
}

func TestLogin_BannedRejectedBeforePasswordCheck(t *testing.T) {
	hash, err := utils.HashPassword("right")
	require.NoError(t, err)

	userRepo := &MockUserRepository{
		FindUserByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{UserID: "u-1", Username: "alice", PasswordHash: hash, IsBanned: true}, nil
		},
	}
	svc := services.NewAuthService(userRepo)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "right"})
	assert.ErrorIs(t, err, apperrors.ErrBanned)
}

func TestCompleteProfile_ClearsFirstLoginAndReplacesPassword(t *testing.T) {
	actor := &domain.User{UserID: "u-1", Username: "bob", IsFirstLogin: true, Role: domain.RoleStaff}

	var credUserID, credHash string
	var credFirstLogin bool
	var profiled domain.User
	userRepo := &MockUserRepository{
		UpdateCredentialsFn: func(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error {
			credUserID, credHash, credFirstLogin = userID, passwordHash, isFirstLogin
			return nil
		},
		UpdateProfileFn: func(ctx context.Context, user domain.User) error {
			profiled = user
			return nil
		},
		FindUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID, Username: "bob", Name: profiled.Name, IsFirstLogin: false}, nil
		},
	}
	svc := services.NewAuthService(userRepo)

	updated, err := svc.CompleteProfile(context.Background(), actor, dto.CompleteProfileRequest{
		Name:     "Bob Builder",
		Password: "new-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", credUserID)
	assert.False(t, credFirstLogin)
	assert.True(t, utils.CheckPasswordHash("new-password", credHash))
	assert.Equal(t, "Bob Builder", updated.Name)
	assert.False(t, updated.IsFirstLogin)
}

func TestUpdateProfile_EmptyEmailClears(t *testing.T) {
	email := "old@example.com"
	actor := &domain.User{UserID: "u-1", Username: "bob", Email: &email}

	var profiled domain.User
	userRepo := &MockUserRepository{
		UpdateProfileFn: func(ctx context.Context, user domain.User) error {
			profiled = user
			return nil
		},
		FindUserByIDFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{UserID: userID, Email: profiled.Email}, nil
		},
	}
	svc := services.NewAuthService(userRepo)

	updated, err := svc.UpdateProfile(context.Background(), actor, dto.UpdateProfileRequest{
		Name:  "Bob",
		Email: "",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
}
