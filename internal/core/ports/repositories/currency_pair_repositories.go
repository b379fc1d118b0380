package repositories

import (
	"context"

	"github.com/dermengr/Currency/internal/core/domain"
)

// CurrencyPairReader defines read operations for currency pair data
type CurrencyPairReader interface {
	// FindCurrencyPairByID retrieves a specific pair by its ID.
	FindCurrencyPairByID(ctx context.Context, pairID string) (*domain.CurrencyPair, error)

	// FindCurrencyPairByCurrencies retrieves the pair for an exact ordered
	// (base, target) combination. The reverse pair is a different record.
	FindCurrencyPairByCurrencies(ctx context.Context, baseCurrency, targetCurrency string) (*domain.CurrencyPair, error)

	// ListCurrencyPairs retrieves all pairs ordered by base then target currency.
	ListCurrencyPairs(ctx context.Context) ([]domain.CurrencyPair, error)
}

// CurrencyPairWriter defines write operations for currency pair data
type CurrencyPairWriter interface {
	// SaveCurrencyPair persists a new pair.
	SaveCurrencyPair(ctx context.Context, pair domain.CurrencyPair) error

	// UpdateCurrencyPair updates an existing pair.
	UpdateCurrencyPair(ctx context.Context, pair domain.CurrencyPair) error

	// DeleteCurrencyPair removes a pair by ID.
	DeleteCurrencyPair(ctx context.Context, pairID string) error
}

// CurrencyPairRepositoryFacade combines all currency-pair repository interfaces
type CurrencyPairRepositoryFacade interface {
	CurrencyPairReader
	CurrencyPairWriter
}
