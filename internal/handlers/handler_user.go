package handlers

import (
	"net/http"

	"github.com/dermengr/Currency/internal/dto"
	"github.com/dermengr/Currency/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests for the authenticated user.
type userHandler struct{}

// newUserHandler creates a new userHandler.
func newUserHandler() *userHandler {
	return &userHandler{}
}

// registerUserRoutes registers the profile route behind the auth middleware.
func registerUserRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	h := newUserHandler()

	auth := r.Group("/api/auth", authRequired)
	auth.GET("/profile", h.getProfile)
}

// getProfile godoc
// @Summary Get the authenticated user's profile
// @Description Returns the identity resolved from the bearer token. The user is re-fetched from the store on every request, so the response reflects the current role.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Missing, invalid or expired token"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// AuthMiddleware verified the token and stored the fresh identity.
	user, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		logger.Error("Authenticated user not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		User:    dto.ToUserResponse(user),
	})
}
