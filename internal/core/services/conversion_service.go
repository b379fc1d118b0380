package services

import (
	"context"
	"fmt"

	"github.com/dermengr/Currency/internal/apperrors"
	"github.com/dermengr/Currency/internal/core/domain"
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionService computes currency conversions from stored pair rates.
type ConversionService struct {
	pairRepo portsrepo.CurrencyPairRepositoryFacade
}

// NewConversionService creates a new ConversionService.
func NewConversionService(pairRepo portsrepo.CurrencyPairRepositoryFacade) *ConversionService {
	return &ConversionService{pairRepo: pairRepo}
}

// Ensure implementation matches interface
var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)

// ConvertCurrency looks up the exact ordered pair and computes
// round(amount * rate, 2). The rate is returned at full stored precision.
// There is no inverse-rate fallback and no chaining through a third
// currency: if (base, target) is not stored, the conversion fails.
func (s *ConversionService) ConvertCurrency(ctx context.Context, req dto.ConvertCurrencyRequest) (*domain.ConversionResult, error) {
	base := normalizeCurrencyCode(req.BaseCurrency)
	target := normalizeCurrencyCode(req.TargetCurrency)

	if len(base) != 3 || len(target) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be exactly 3 characters", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	pair, err := s.pairRepo.FindCurrencyPairByCurrencies(ctx, base, target)
	if err != nil {
		return nil, fmt.Errorf("exchange rate %s/%s not available: %w", base, target, err)
	}

	// Round half away from zero to 2 decimal places.
	convertedAmount := req.Amount.Mul(pair.Rate).Round(2)

	return &domain.ConversionResult{
		BaseCurrency:    base,
		TargetCurrency:  target,
		Amount:          req.Amount,
		ConvertedAmount: convertedAmount,
		Rate:            pair.Rate,
	}, nil
}
