package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dermengr/Currency/internal/apperrors"
	"github.com/dermengr/Currency/internal/core/domain"
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyPairService provides business logic for currency pairs.
type CurrencyPairService struct {
	pairRepo portsrepo.CurrencyPairRepositoryFacade
}

// NewCurrencyPairService creates a new CurrencyPairService.
func NewCurrencyPairService(pairRepo portsrepo.CurrencyPairRepositoryFacade) *CurrencyPairService {
	return &CurrencyPairService{pairRepo: pairRepo}
}

// Ensure implementation matches interface
var _ portssvc.CurrencyPairSvcFacade = (*CurrencyPairService)(nil)

// normalizeCurrencyCode trims and uppercases a currency code.
func normalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ListCurrencyPairs retrieves all pairs sorted by base currency ascending.
func (s *CurrencyPairService) ListCurrencyPairs(ctx context.Context) ([]domain.CurrencyPair, error) {
	pairs, err := s.pairRepo.ListCurrencyPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency pairs: %w", err)
	}
	return pairs, nil
}

// CreateCurrencyPair validates and persists a new ordered pair.
func (s *CurrencyPairService) CreateCurrencyPair(ctx context.Context, req dto.CreateCurrencyPairRequest, creatorUserID string) (*domain.CurrencyPair, error) {
	base := normalizeCurrencyCode(req.BaseCurrency)
	target := normalizeCurrencyCode(req.TargetCurrency)

	if len(base) != 3 || len(target) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be exactly 3 characters", apperrors.ErrValidation)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be a positive number", apperrors.ErrValidation)
	}

	// Best-effort duplicate check; the unique index on (base, target) closes
	// the race between concurrent creators.
	_, err := s.pairRepo.FindCurrencyPairByCurrencies(ctx, base, target)
	if err == nil {
		return nil, fmt.Errorf("%w: currency pair %s/%s already exists", apperrors.ErrDuplicate, base, target)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check currency pair existence: %w", err)
	}

	now := time.Now()
	pair := domain.CurrencyPair{
		PairID:         uuid.NewString(),
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           req.Rate,
		LastUpdated:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.pairRepo.SaveCurrencyPair(ctx, pair); err != nil {
		return nil, fmt.Errorf("failed to create currency pair in service: %w", err)
	}

	return &pair, nil
}

// UpdateCurrencyPair applies a partial update. Empty codes and a zero rate
// are treated as "not supplied" and skipped. LastUpdated is refreshed only
// when the rate actually changes.
func (s *CurrencyPairService) UpdateCurrencyPair(ctx context.Context, pairID string, req dto.UpdateCurrencyPairRequest, updaterUserID string) (*domain.CurrencyPair, error) {
	pair, err := s.pairRepo.FindCurrencyPairByID(ctx, pairID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency pair for update: %w", err)
	}

	changed := false

	if req.BaseCurrency != "" {
		base := normalizeCurrencyCode(req.BaseCurrency)
		if len(base) != 3 {
			return nil, fmt.Errorf("%w: currency codes must be exactly 3 characters", apperrors.ErrValidation)
		}
		if base != pair.BaseCurrency {
			pair.BaseCurrency = base
			changed = true
		}
	}

	if req.TargetCurrency != "" {
		target := normalizeCurrencyCode(req.TargetCurrency)
		if len(target) != 3 {
			return nil, fmt.Errorf("%w: currency codes must be exactly 3 characters", apperrors.ErrValidation)
		}
		if target != pair.TargetCurrency {
			pair.TargetCurrency = target
			changed = true
		}
	}

	// A zero rate means "not supplied"; an explicit zero is skipped, not
	// rejected. Negative rates are still invalid.
	if !req.Rate.IsZero() {
		if req.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: rate must be a positive number", apperrors.ErrValidation)
		}
		if !req.Rate.Equal(pair.Rate) {
			pair.Rate = req.Rate
			pair.LastUpdated = time.Now()
			changed = true
		}
	}

	if !changed {
		return pair, nil
	}

	pair.LastUpdatedAt = time.Now()
	pair.LastUpdatedBy = updaterUserID

	if err := s.pairRepo.UpdateCurrencyPair(ctx, *pair); err != nil {
		return nil, fmt.Errorf("failed to update currency pair in service: %w", err)
	}

	return pair, nil
}

// DeleteCurrencyPair removes a pair by ID.
func (s *CurrencyPairService) DeleteCurrencyPair(ctx context.Context, pairID string) error {
	if err := s.pairRepo.DeleteCurrencyPair(ctx, pairID); err != nil {
		return fmt.Errorf("failed to delete currency pair in service: %w", err)
	}
	return nil
}
