package domain

import "time"

// Role defines the possible roles of a user account.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
	RoleStaff   Role = "STAFF"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser, RoleStaff:
		return true
	}
	return false
}

// User represents a user of the application.
// A STAFF user always has ManagerID set to its owning manager; every other
// role has ManagerID nil and is itself a tenant root.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	ManagerID    *string   `json:"managerID,omitempty"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	IsBanned     bool      `json:"isBanned"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EffectiveOwnerID returns the tenant-root id that scopes all data visible
// to this user: the manager's id for staff accounts, the user's own id
// otherwise.
func (u *User) EffectiveOwnerID() string {
	if u.ManagerID != nil && *u.ManagerID != "" {
		return *u.ManagerID
	}
	return u.UserID
}

// IsOwnerRole reports whether the user is a tenant root (non-staff).
func (u *User) IsOwnerRole() bool {
	return u.Role != RoleStaff
}
