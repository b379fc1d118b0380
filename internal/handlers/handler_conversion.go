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

// conversionHandler handles HTTP requests for currency conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers the conversion route. Conversion is a
// read-only operation available to any authenticated user.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	pairs := rg.Group("/currency")
	pairs.POST("/convert", h.convertCurrency)
}

// convertCurrency godoc
// @Summary Convert an amount between two currencies
// @Description Converts an amount using the stored rate for the exact ordered pair. The converted amount is rounded to 2 decimal places; the rate is returned at full precision. There is no inverse-rate fallback.
// @Tags currency
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertCurrencyRequest true "Conversion details"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not available"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /currency/convert [post]
func (h *conversionHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert currency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
		return
	}

	result, err := h.conversionService.ConvertCurrency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate not available for conversion",
				slog.String("base", req.BaseCurrency), slog.String("target", req.TargetCurrency))
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Exchange rate not available for this currency pair"))
		} else {
			logger.Error("Failed to convert currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to convert currency"))
		}
		return
	}

	logger.Info("Currency converted successfully",
		slog.String("base", result.BaseCurrency),
		slog.String("target", result.TargetCurrency),
	)
	c.JSON(http.StatusOK, dto.ConvertCurrencyResponse{
		Success: true,
		Data:    dto.ToConversionResponse(result),
	})
}
