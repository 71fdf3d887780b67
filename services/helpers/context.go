package helpers

import (
	"github.com/gin-gonic/gin"

	"tender-service/internal/models"
)

// CurrentUserKey is where the auth middleware stores the resolved account
// on the request context.
const CurrentUserKey = "currentUser"

// CurrentUser returns the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
