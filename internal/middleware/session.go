package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	"github.com/eventiqo/eventiqo-backend/internal/platform/session"
)

// Page routes under a protected prefix need a session. Other pages render
// for everyone; only /login bounces an already-authenticated visitor.
var protectedPrefixes = []string{"/dashboard", "/admin", "/complete-profile"}

// landingPath is where the gate sends an authenticated user away from a
// page they have no business on.
func landingPath(u *domain.User) string {
	switch {
	case u.IsFirstLogin:
		return "/complete-profile"
	case u.Role == domain.RoleStaff:
		return "/dashboard/tasks"
	default:
		return "/dashboard/panel"
	}
}

// LandingPath is the post-login destination returned by the login handler.
// Unlike the gate's bounce target it sends admins to the admin area.
func LandingPath(u *domain.User) string {
	if !u.IsFirstLogin && u.Role == domain.RoleAdmin {
		return "/admin"
	}
	return landingPath(u)
}

func isProtected(path string) bool {
	for _, p := range protectedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// SessionGate drives the page-flow state machine for browser navigation:
//
//   - no (or invalid) session on a protected page: redirect to /login
//   - authenticated visit to /login: redirect to the landing page
//   - first-login users are pinned to /complete-profile; everyone else is
//     bounced off it
//   - /admin requires the ADMIN role
//
// The user is re-read from storage on every pass, so a deleted or banned
// account is logged out on its next navigation regardless of what the
// cookie snapshot says.
func SessionGate(codec *session.Codec, users portsrepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		claims, err := codec.ReadCookie(c.Request)
		if err != nil {
			if isProtected(path) {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), claims.User.ID)
		if err != nil || user.IsBanned {
			if err != nil {
				GetLoggerFromCtx(c.Request.Context()).Warn("session user lookup failed, treating as logged out",
					slog.String("userID", claims.User.ID), slog.Any("error", err))
			}
			codec.ClearCookie(c)
			if isProtected(path) {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if path == "/login" {
			c.Redirect(http.StatusFound, landingPath(user))
			c.Abort()
			return
		}

		if user.IsFirstLogin && path != "/complete-profile" {
			c.Redirect(http.StatusFound, "/complete-profile")
			c.Abort()
			return
		}
		if !user.IsFirstLogin && path == "/complete-profile" {
			c.Redirect(http.StatusFound, landingPath(user))
			c.Abort()
			return
		}

		if isAdminPath(path) && user.Role != domain.RoleAdmin {
			c.Redirect(http.StatusFound, "/dashboard/panel")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

// RequireSession guards the JSON API: a missing or invalid session cookie
// yields 401 instead of a redirect.
func RequireSession(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := codec.ReadCookie(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(sessionUserKey, claims.User)
		c.Next()
	}
}

// RequireLiveUser re-validates the session subject against storage. It runs
// after RequireSession and fails closed: a lookup error, a deleted account
// and a banned account all clear the cookie and end the request with 401.
func RequireLiveUser(codec *session.Codec, users portsrepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		su, ok := c.Get(sessionUserKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		sessionUser := su.(domain.SessionUser)

		user, err := users.FindUserByID(c.Request.Context(), sessionUser.ID)
		if err != nil || user.IsBanned {
			if err != nil {
				GetLoggerFromCtx(c.Request.Context()).Warn("session user lookup failed, treating as logged out",
					slog.String("userID", sessionUser.ID), slog.Any("error", err))
			}
			codec.ClearCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session is no longer valid"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// GetCurrentUser returns the live user record attached by RequireLiveUser
// or SessionGate.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
