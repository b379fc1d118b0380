package handlers

import (
	"net/http"

	"github.com/dermengr/Currency/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Currency Exchange API is running",
	})
}

// noRoute is the catch-all for unmatched paths. The same message is returned
// whatever the method or path.
func noRoute(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("endpoint not found"))
}

// registerHomeRoutes registers the root status route and the 404 fallback.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
	r.NoRoute(noRoute)
}
