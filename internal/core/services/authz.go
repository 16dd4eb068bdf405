package services

import (
	"fmt"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
)

// canManageUser reports whether actor may administer target's account
// (reset password, ban, delete). Admins manage everyone; tenant owners
// manage their own staff; staff manage nobody. Self-administration goes
// through the profile flows instead.
func canManageUser(actor, target *domain.User) error {
	if actor.UserID == target.UserID {
		return fmt.Errorf("%w: cannot manage own account here", apperrors.ErrForbidden)
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.IsOwnerRole() && target.ManagerID != nil && *target.ManagerID == actor.EffectiveOwnerID() {
		return nil
	}
	return fmt.Errorf("%w: not allowed to manage this user", apperrors.ErrForbidden)
}

// requireOwnerRole rejects staff actors for owner-only operations.
func requireOwnerRole(actor *domain.User) error {
	if !actor.IsOwnerRole() {
		return fmt.Errorf("%w: staff accounts cannot perform this action", apperrors.ErrForbidden)
	}
	return nil
}
