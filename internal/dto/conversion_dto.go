package dto

import (
	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertCurrencyRequest defines the input for a currency conversion.
type ConvertCurrencyRequest struct {
	BaseCurrency   string          `json:"baseCurrency" binding:"required"`
	TargetCurrency string          `json:"targetCurrency" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
}

// ConversionResponse carries the result of a conversion. ConvertedAmount is
// rounded to 2 decimal places; Rate keeps the stored precision.
type ConversionResponse struct {
	BaseCurrency    string          `json:"baseCurrency"`
	TargetCurrency  string          `json:"targetCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
}

// ToConversionResponse converts a domain.ConversionResult to a ConversionResponse DTO
func ToConversionResponse(res *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		BaseCurrency:    res.BaseCurrency,
		TargetCurrency:  res.TargetCurrency,
		Amount:          res.Amount,
		ConvertedAmount: res.ConvertedAmount,
		Rate:            res.Rate,
	}
}

// ConvertCurrencyResponse wraps a conversion result in the API envelope.
type ConvertCurrencyResponse struct {
	Success bool               `json:"success"`
	Data    ConversionResponse `json:"data"`
}
