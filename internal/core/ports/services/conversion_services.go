package services

import (
	"context"

	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/dermengr/Currency/internal/dto"
)

// ConversionSvcFacade defines the currency conversion operation.
type ConversionSvcFacade interface {
	// ConvertCurrency looks up the exact ordered pair and computes the
	// converted amount. It never falls back to an inverse or chained rate.
	ConvertCurrency(ctx context.Context, req dto.ConvertCurrencyRequest) (*domain.ConversionResult, error)
}
