package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/dermengr/Currency/internal/apperrors"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/dermengr/Currency/internal/middleware"
	"github.com/dermengr/Currency/internal/platform/config"
	"github.com/dermengr/Currency/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and login.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService: us,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Register and
// login share an IP rate limit so credential stuffing gets throttled.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		// Fall back to the documented default rather than running unlimited.
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// issueToken signs a bearer token for the given user ID.
func (h *authHandler) issueToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
}

// register godoc
// @Summary Register a new user
// @Description Creates a regular user account and returns it with a signed bearer token. A role field in the body is accepted but ignored.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration credentials"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or username taken"
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate username", slog.String("username", req.Username))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username is already taken"))
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error registering user", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to register user in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to register user"))
		}
		return
	}

	token, err := h.issueToken(newUser.UserID)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate token"))
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", newUser.UserID))
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		User:    dto.ToUserResponse(newUser),
		Token:   token,
	})
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns it with a signed bearer token. The failure message never reveals which credential was wrong.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Failed login attempt", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid username or password"))
		} else {
			logger.Error("Failed to authenticate user in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to log in"))
		}
		return
	}

	token, err := h.issueToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate token"))
		return
	}

	logger.Info("User logged in successfully", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    dto.ToUserResponse(user),
		Token:   token,
	})
}
