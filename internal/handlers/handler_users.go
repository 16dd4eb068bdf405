package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eventiqo/eventiqo-backend/internal/core/ports/services"
	"github.com/eventiqo/eventiqo-backend/internal/dto"
)

type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes sets up team management routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listTeam)
		users.POST("", h.createUser)
		users.POST("/:id/reset-password", h.resetPassword)
		users.POST("/:id/ban", h.ban)
		users.POST("/:id/unban", h.unban)
		users.DELETE("/:id", h.deleteUser)
	}
}

func (h *userHandler) listTeam(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	team, err := h.userService.ListTeam(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(team))
}

// createUser mints a team member and returns the generated password in the
// response body. It is shown to the creator once and never retrievable.
func (h *userHandler) createUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	created, plaintext, err := h.userService.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedUserResponse{
		User:     dto.ToUserResponse(created),
		Password: plaintext,
	})
}

func (h *userHandler) resetPassword(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	plaintext, err := h.userService.ResetPassword(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"password": plaintext})
}

func (h *userHandler) ban(c *gin.Context) {
	h.setBanned(c, true)
}

func (h *userHandler) unban(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *userHandler) setBanned(c *gin.Context, banned bool) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.userService.ToggleBan(c.Request.Context(), actor, c.Param("id"), banned); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *userHandler) deleteUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
