package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dermengr/Currency/internal/apperrors"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/dermengr/Currency/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyPairHandler handles HTTP requests related to currency pairs.
type currencyPairHandler struct {
	pairService portssvc.CurrencyPairSvcFacade
}

// newCurrencyPairHandler creates a new currencyPairHandler.
func newCurrencyPairHandler(ps portssvc.CurrencyPairSvcFacade) *currencyPairHandler {
	return &currencyPairHandler{
		pairService: ps,
	}
}

// registerCurrencyPairRoutes registers routes related to currency pairs.
// The group already carries the auth middleware; mutations are additionally
// gated to admins.
func registerCurrencyPairRoutes(rg *gin.RouterGroup, pairService portssvc.CurrencyPairSvcFacade) {
	h := newCurrencyPairHandler(pairService)

	pairs := rg.Group("/currency")
	{
		pairs.GET("", h.listCurrencyPairs)

		admin := pairs.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.createCurrencyPair)
			admin.PUT("/:id", h.updateCurrencyPair)
			admin.DELETE("/:id", h.deleteCurrencyPair)
		}
	}
}

// listCurrencyPairs godoc
// @Summary List currency pairs
// @Description Retrieves all currency pairs sorted by base currency ascending
// @Tags currency
// @Produce json
// @Success 200 {object} dto.ListCurrencyPairsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currency [get]
func (h *currencyPairHandler) listCurrencyPairs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pairs, err := h.pairService.ListCurrencyPairs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currency pairs in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve currency pairs"))
		return
	}

	c.JSON(http.StatusOK, dto.ListCurrencyPairsResponse{
		Success: true,
		Data:    dto.ToListCurrencyPairResponse(pairs),
	})
}

// createCurrencyPair godoc
// @Summary Create a currency pair
// @Description Adds a new ordered currency pair with its exchange rate. Admin only. The reverse pair is a separate record.
// @Tags currency
// @Accept json
// @Produce json
// @Param pair body dto.CreateCurrencyPairRequest true "Currency pair details"
// @Success 201 {object} dto.SingleCurrencyPairResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or pair already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currency [post]
func (h *currencyPairHandler) createCurrencyPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create currency pair", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	createdPair, err := h.pairService.CreateCurrencyPair(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate currency pair",
				slog.String("base", req.BaseCurrency), slog.String("target", req.TargetCurrency))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Currency pair already exists"))
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating currency pair", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to create currency pair in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create currency pair"))
		}
		return
	}

	logger.Info("Currency pair created successfully",
		slog.String("pair_id", createdPair.PairID),
		slog.String("base", createdPair.BaseCurrency),
		slog.String("target", createdPair.TargetCurrency),
	)
	c.JSON(http.StatusCreated, dto.SingleCurrencyPairResponse{
		Success: true,
		Data:    dto.ToCurrencyPairResponse(createdPair),
	})
}

// updateCurrencyPair godoc
// @Summary Update a currency pair
// @Description Applies a partial update to a currency pair. Admin only. Omitted fields (and a zero rate) are left unchanged.
// @Tags currency
// @Accept json
// @Produce json
// @Param id path string true "Currency pair ID"
// @Param pair body dto.UpdateCurrencyPairRequest true "Fields to update"
// @Success 200 {object} dto.SingleCurrencyPairResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate pair"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Currency pair not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currency/{id} [put]
func (h *currencyPairHandler) updateCurrencyPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pairID := c.Param("id")

	var req dto.UpdateCurrencyPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update currency pair", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	updatedPair, err := h.pairService.UpdateCurrencyPair(c.Request.Context(), pairID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency pair not found for update", slog.String("pair_id", pairID))
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Currency pair not found"))
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Update collides with an existing currency pair", slog.String("pair_id", pairID))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Currency pair already exists"))
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating currency pair", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else {
			logger.Error("Failed to update currency pair in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to update currency pair"))
		}
		return
	}

	logger.Info("Currency pair updated successfully", slog.String("pair_id", updatedPair.PairID))
	c.JSON(http.StatusOK, dto.SingleCurrencyPairResponse{
		Success: true,
		Data:    dto.ToCurrencyPairResponse(updatedPair),
	})
}

// deleteCurrencyPair godoc
// @Summary Delete a currency pair
// @Description Removes a currency pair. Admin only.
// @Tags currency
// @Produce json
// @Param id path string true "Currency pair ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Currency pair not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currency/{id} [delete]
func (h *currencyPairHandler) deleteCurrencyPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pairID := c.Param("id")

	if err := h.pairService.DeleteCurrencyPair(c.Request.Context(), pairID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency pair not found for delete", slog.String("pair_id", pairID))
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Currency pair not found"))
		} else {
			logger.Error("Failed to delete currency pair in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to delete currency pair"))
		}
		return
	}

	logger.Info("Currency pair deleted successfully", slog.String("pair_id", pairID))
	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Currency pair deleted successfully",
	})
}
