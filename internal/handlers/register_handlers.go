package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portsrepo "github.com/eventiqo/eventiqo-backend/internal/core/ports/repositories"
	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/config"
	"github.com/eventiqo/eventiqo-backend/internal/platform/session"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	codec *session.Codec,
	userRepo portsrepo.UserRepository,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerPageRoutes(r, codec, userRepo)
	registerAuthRoutes(r, services.Auth, codec)

	setupAPIV1Routes(r, services, codec, userRepo)
}

// setupAPIV1Routes configures the authenticated /api/v1 group. Every route
// sees a live user record: the session cookie is verified, then the subject
// is re-read from storage so bans and deletions bite immediately.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	codec *session.Codec,
	userRepo portsrepo.UserRepository,
) {
	v1 := r.Group("/api/v1",
		middleware.RequireSession(codec),
		middleware.RequireLiveUser(codec, userRepo),
	)

	registerSessionProfileRoutes(v1, services.Auth, codec)
	registerUserRoutes(v1, services.User)
	registerEventRoutes(v1, services.Event)
	registerBudgetRoutes(v1, services.Budget, services.Export)
	registerVendorRoutes(v1, services.Vendor)
	registerTaskRoutes(v1, services.Task)
	registerTemplateRoutes(v1, services.Template)
	registerDashboardRoutes(v1, services.Dashboard)
}
