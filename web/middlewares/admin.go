package middlewares

import (
	"net/http"

	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
)

// RequireAdmin guards admin-only routes. Runs after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				common.NewErrorResponse(common.CodePermission, "administrator role required"))
			return
		}
		c.Next()
	}
}
