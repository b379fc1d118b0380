package services

import (
	"context"

	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/dermengr/Currency/internal/dto"
)

// CurrencyPairReaderSvc defines read operations for currency pair data
type CurrencyPairReaderSvc interface {
	// ListCurrencyPairs retrieves all pairs sorted by base currency ascending.
	ListCurrencyPairs(ctx context.Context) ([]domain.CurrencyPair, error)
}

// CurrencyPairWriterSvc defines write operations for currency pair data
type CurrencyPairWriterSvc interface {
	// CreateCurrencyPair persists a new pair with normalized currency codes.
	CreateCurrencyPair(ctx context.Context, req dto.CreateCurrencyPairRequest, creatorUserID string) (*domain.CurrencyPair, error)

	// UpdateCurrencyPair applies a partial update to an existing pair.
	UpdateCurrencyPair(ctx context.Context, pairID string, req dto.UpdateCurrencyPairRequest, updaterUserID string) (*domain.CurrencyPair, error)

	// DeleteCurrencyPair removes a pair by ID.
	DeleteCurrencyPair(ctx context.Context, pairID string) error
}

// CurrencyPairSvcFacade combines all currency-pair service interfaces
type CurrencyPairSvcFacade interface {
	CurrencyPairReaderSvc
	CurrencyPairWriterSvc
}
