package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tender-service/internal/auth"
	"tender-service/internal/tendererrors"
	"tender-service/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Upstream and storage failures surface as a generic failure; everything in
// the taxonomy keeps its own status.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, tendererrors.ErrTenderNotFound):
		return http.StatusNotFound, "tender not found"
	case errors.Is(err, tendererrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, tendererrors.ErrFileNotFound):
		return http.StatusNotFound, "file not found"
	case errors.Is(err, tendererrors.ErrAccessDenied):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, tendererrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid argument"
	case errors.Is(err, tendererrors.ErrConflict):
		return http.StatusConflict, "already exists"
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps, sends and logs a handler failure in one step.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)
	utils.Warn(handlerName+": "+message, map[string]any{"error": err.Error()})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
