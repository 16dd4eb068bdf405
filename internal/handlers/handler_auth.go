package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/session"
)

type authHandler struct {
	authService portssvc.AuthSvcFacade
	codec       *session.Codec
}

func newAuthHandler(as portssvc.AuthSvcFacade, codec *session.Codec) *authHandler {
	return &authHandler{authService: as, codec: codec}
}

// registerAuthRoutes sets up login/logout plus the session-coupled profile
// actions. Login is rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, codec *session.Codec) {
	h := newAuthHandler(authService, codec)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	r.POST("/api/v1/auth/login", middleware.RateLimit(ipLimiter), h.login)
	r.POST("/api/v1/auth/logout", h.logout)
}

// registerSessionProfileRoutes sets up the authenticated profile actions.
func registerSessionProfileRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, codec *session.Codec) {
	h := newAuthHandler(authService, codec)

	rg.GET("/me", h.me)
	rg.POST("/auth/complete-profile", h.completeProfile)
	rg.PUT("/profile", h.updateProfile)
}

// login verifies credentials, sets the session cookie and tells the client
// where to navigate next.
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, user); err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":     dto.ToUserResponse(user),
		"redirect": middleware.LandingPath(user),
	})
}

func (h *authHandler) logout(c *gin.Context) {
	h.codec.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

func (h *authHandler) me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// completeProfile finishes first-login onboarding and re-issues the cookie
// so the cleared isFirstLogin flag takes effect immediately.
func (h *authHandler) completeProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CompleteProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.authService.CompleteProfile(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, updated); err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":     dto.ToUserResponse(updated),
		"redirect": middleware.LandingPath(updated),
	})
}

func (h *authHandler) updateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.authService.UpdateProfile(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.issueSession(c, updated); err != nil {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

func (h *authHandler) issueSession(c *gin.Context, user *domain.User) error {
	token, err := h.codec.Issue(domain.NewSessionUser(user))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to establish session"})
		return err
	}
	h.codec.SetCookie(c, token)
	return nil
}
