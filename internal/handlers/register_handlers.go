package handlers

import (
	"github.com/dermengr/Currency/cmd/docs"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/middleware"
	"github.com/dermengr/Currency/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Root status route and the catch-all 404
	registerHomeRoutes(r)

	// Register public authentication routes (rate limited)
	registerAuthRoutes(r, cfg, services.User)

	// Every protected route shares one auth middleware: token check plus a
	// re-fetch of the user from the credential store.
	authRequired := middleware.AuthMiddleware(cfg.JWTSecret, services.User)

	// Profile lives under the auth prefix but needs a valid token
	registerUserRoutes(r, authRequired)

	// Setup /api routes with Auth Middleware, passing service interfaces
	setupAPIRoutes(r, authRequired, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the protected /api group and delegates to
// specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	authRequired gin.HandlerFunc,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", authRequired)

	// Delegate route registration to specific handlers, passing required services
	registerCurrencyPairRoutes(api, services.CurrencyPair)
	registerConversionRoutes(api, services.Conversion)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
