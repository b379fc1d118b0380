package middleware

import (
	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// currentUserKey is the key used to store the authenticated user's verified
// identity (password hash excluded) in the request context.
const currentUserKey = contextKey("currentUser")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return "", false
	}

	return userID, true
}

// GetCurrentUserFromContext retrieves the verified identity stored by
// AuthMiddleware. The returned user never carries a password hash.
func GetCurrentUserFromContext(c *gin.Context) (*domain.User, bool) {
	userVal := c.Request.Context().Value(currentUserKey)
	if userVal == nil {
		return nil, false
	}

	user, ok := userVal.(*domain.User)
	if !ok {
		return nil, false
	}

	return user, true
}
