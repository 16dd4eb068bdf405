package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/session"
)

// registerPageRoutes sets up the browser navigation endpoints. The real UI
// is a separate frontend; these routes exist so the session gate can drive
// its redirect flow (login landing, first-login pinning, admin gating) and
// return the current user for page hydration.
func registerPageRoutes(r *gin.Engine, codec *session.Codec, users portsrepo.UserRepository) {
	gate := middleware.SessionGate(codec, users)

	pages := []string{
		"/",
		"/login",
		"/subscribe",
		"/complete-profile",
		"/admin",
		"/dashboard/panel",
		"/dashboard/events",
		"/dashboard/vendors",
		"/dashboard/tasks",
		"/dashboard/team",
		"/dashboard/documents",
		"/dashboard/reports",
		"/dashboard/settings",
	}
	for _, path := range pages {
		r.GET(path, gate, pageInfo(path))
	}
}

func pageInfo(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{"page": path}
		if user, ok := middleware.GetCurrentUser(c); ok {
			payload["user"] = dto.ToUserResponse(user)
		}
		c.JSON(http.StatusOK, payload)
	}
}
