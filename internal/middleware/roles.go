package middleware

import (
	"net/http"

	"github.com/dermengr/Currency/internal/dto"
	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route to admin users. It must be placed after
// AuthMiddleware, which stores the verified identity in the request context;
// a request that reaches this middleware already holds a valid token.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, ok := GetCurrentUserFromContext(c)
		if !ok {
			logger.Error("No authenticated user in context, ensure AuthMiddleware runs first")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Admin access required"))
			return
		}

		if !user.IsAdmin() {
			logger.Warn("Non-admin user attempted an admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Admin access required"))
			return
		}

		c.Next()
	}
}
