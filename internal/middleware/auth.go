package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dermengr/Currency/internal/apperrors"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/dermengr/Currency/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer JWTs.
// After the signature and expiry check the user is re-fetched from the
// credential store, so tokens for deleted accounts stop working and role
// changes take effect on the next request rather than at token renewal.
func AuthMiddleware(jwtSecret string, userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve logger from the standard context
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msg))
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token claims"))
			return
		}

		// Resolve the subject against the store. A signed token referencing a
		// user that no longer exists is rejected like any other bad token.
		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer exists", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
				return
			}
			logger.Error("Failed to resolve token subject", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to authenticate request"))
			return
		}

		// The identity handed to handlers never carries the password hash.
		identity := *user
		identity.PasswordHash = ""

		// Store the user ID and identity in the standard request context so
		// services and handlers can reach them without depending on Gin.
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, identity.UserID)
		ctxWithUser = context.WithValue(ctxWithUser, currentUserKey, &identity)

		// Add user fields to the logger and store the enriched logger back
		enrichedLogger := logger.With(slog.String("user_id", identity.UserID), slog.String("role", string(identity.Role)))
		ctxWithUser = context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		// Update the request context
		c.Request = c.Request.WithContext(ctxWithUser)

		c.Next() // Proceed to the next handler
	}
}
