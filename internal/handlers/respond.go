package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
)

// ErrorResponse is the generic error payload for all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses. Cross-tenant access
// surfaces as 404 by construction: the repositories report rows outside the
// caller's scope as not found.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
	case errors.Is(err, apperrors.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	case errors.Is(err, apperrors.ErrBanned):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "account is suspended"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already exists"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// respondBindingError turns gin binding failures into field-level messages
// ("username is required") instead of validator's internal formatting.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := lowerFirst(fe.Field())
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, field+" is required")
			case "min":
				msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
			default:
				msgs = append(msgs, field+" is invalid")
			}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: strings.Join(msgs, ", ")})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request format"})
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// currentUser pulls the live user attached by the session middleware and
// writes a 401 on a miss. A miss means the route was registered without
// the middleware; treat it as unauthenticated rather than panicking.
func currentUser(c *gin.Context) (*domain.User, bool) {
	user, found := middleware.GetCurrentUser(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return nil, false
	}
	return user, true
}
