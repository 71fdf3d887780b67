package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tender-service/internal/auth"
	"tender-service/internal/models"
	"tender-service/internal/repository"
	"tender-service/internal/tendererrors"
	"tender-service/services/helpers"
	"tender-service/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware resolves the bearer token to a persisted user and stores
// it on the request context. The token itself is opaque here; the login
// service owns its format and lifetime.
func AuthMiddleware(resolver auth.Resolver, store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrUnauthenticated, "missing bearer token")
			c.Abort()
			return
		}

		email, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrUnauthenticated, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := store.UserByEmail(email)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrUnauthenticated, "unknown account")
			c.Abort()
			return
		}

		c.Set(helpers.CurrentUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers without the ADMIN role tag.
func RequireAdmin(c *gin.Context) {
	user := helpers.CurrentUser(c)
	if user == nil || !user.Roles.Has(models.RoleAdmin) {
		utils.JSONError(c, http.StatusForbidden, tendererrors.ErrAccessDenied, "admin role required")
		c.Abort()
		return
	}
	c.Next()
}
