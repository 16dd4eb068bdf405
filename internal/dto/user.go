package dto

import (
	"time"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// CreateUserRequest carries the new-team-member form. Role is advisory: for
// non-admin callers the service forces STAFF regardless of what the form
// submitted.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email"`
	Name     string `form:"name" json:"name"`
	Role     string `form:"role" json:"role"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	ManagerID    *string   `json:"managerID,omitempty"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	IsBanned     bool      `json:"isBanned"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		ManagerID:    u.ManagerID,
		IsFirstLogin: u.IsFirstLogin,
		IsBanned:     u.IsBanned,
		PhoneNumber:  u.PhoneNumber,
		Gender:       u.Gender,
		CreatedAt:    u.CreatedAt,
	}
}

// CreatedUserResponse is returned exactly once after user creation or a
// password reset: the plaintext password is not retrievable afterwards.
type CreatedUserResponse struct {
	User     UserResponse `json:"user"`
	Password string       `json:"password"`
}

// ListUsersResponse wraps a user listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
