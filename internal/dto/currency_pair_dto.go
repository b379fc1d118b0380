package dto

import (
	"time"

	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyPairRequest defines the data needed to create a currency pair.
// Codes are normalized (trimmed, uppercased) by the service before validation.
type CreateCurrencyPairRequest struct {
	BaseCurrency   string          `json:"baseCurrency" binding:"required"`
	TargetCurrency string          `json:"targetCurrency" binding:"required"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
}

// UpdateCurrencyPairRequest defines a partial update of a currency pair.
// Empty codes and a zero rate mean "field not supplied"; an explicit zero
// rate is skipped, not rejected.
type UpdateCurrencyPairRequest struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
}

// CurrencyPairResponse defines the data returned for a currency pair.
type CurrencyPairResponse struct {
	PairID         string          `json:"pairID"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyPairResponse converts a domain.CurrencyPair to a CurrencyPairResponse DTO
func ToCurrencyPairResponse(pair *domain.CurrencyPair) CurrencyPairResponse {
	return CurrencyPairResponse{
		PairID:         pair.PairID,
		BaseCurrency:   pair.BaseCurrency,
		TargetCurrency: pair.TargetCurrency,
		Rate:           pair.Rate,
		LastUpdated:    pair.LastUpdated,
		CreatedAt:      pair.CreatedAt,
		LastUpdatedAt:  pair.LastUpdatedAt,
	}
}

// ToListCurrencyPairResponse converts a slice of domain.CurrencyPair to CurrencyPairResponse DTOs
func ToListCurrencyPairResponse(pairs []domain.CurrencyPair) []CurrencyPairResponse {
	res := make([]CurrencyPairResponse, len(pairs))
	for i := range pairs {
		res[i] = ToCurrencyPairResponse(&pairs[i])
	}
	return res
}

// ListCurrencyPairsResponse wraps the pair listing in the API envelope.
type ListCurrencyPairsResponse struct {
	Success bool                   `json:"success"`
	Data    []CurrencyPairResponse `json:"data"`
}

// SingleCurrencyPairResponse wraps one pair in the API envelope.
type SingleCurrencyPairResponse struct {
	Success bool                 `json:"success"`
	Data    CurrencyPairResponse `json:"data"`
}
