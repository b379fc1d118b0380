package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dermengr/Currency/internal/apperrors"
	"github.com/dermengr/Currency/internal/core/domain"
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	"github.com/dermengr/Currency/internal/models"
	"github.com/dermengr/Currency/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCurrencyPairRepository struct {
	BaseRepository
}

// newPgxCurrencyPairRepository creates a new repository for currency pair data.
func newPgxCurrencyPairRepository(pool PgxPool) portsrepo.CurrencyPairRepositoryFacade {
	return &PgxCurrencyPairRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyPairRepositoryFacade = (*PgxCurrencyPairRepository)(nil)

// SaveCurrencyPair inserts a new pair. The unique index on
// (base_currency, target_currency) closes the duplicate-create race.
func (r *PgxCurrencyPairRepository) SaveCurrencyPair(ctx context.Context, pair domain.CurrencyPair) error {
	modelPair := mapping.ToModelCurrencyPair(pair)
	query := `
		INSERT INTO currency_pairs (pair_id, base_currency, target_currency, rate, last_updated, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPair.PairID,
		modelPair.BaseCurrency,
		modelPair.TargetCurrency,
		modelPair.Rate,
		modelPair.LastUpdated,
		modelPair.CreatedAt,
		modelPair.CreatedBy,
		modelPair.LastUpdatedAt,
		modelPair.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("currency pair %s/%s already exists: %w",
				modelPair.BaseCurrency, modelPair.TargetCurrency, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save currency pair: %w", err)
	}
	return nil
}

// FindCurrencyPairByID retrieves a pair by its ID.
func (r *PgxCurrencyPairRepository) FindCurrencyPairByID(ctx context.Context, pairID string) (*domain.CurrencyPair, error) {
	query := `
		SELECT pair_id, base_currency, target_currency, rate, last_updated, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_pairs
		WHERE pair_id = $1;
	`
	var modelPair models.CurrencyPair
	err := r.Pool.QueryRow(ctx, query, pairID).Scan(
		&modelPair.PairID,
		&modelPair.BaseCurrency,
		&modelPair.TargetCurrency,
		&modelPair.Rate,
		&modelPair.LastUpdated,
		&modelPair.CreatedAt,
		&modelPair.CreatedBy,
		&modelPair.LastUpdatedAt,
		&modelPair.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency pair by ID %s: %w", pairID, err)
	}

	domainPair := mapping.ToDomainCurrencyPair(modelPair)
	return &domainPair, nil
}

// FindCurrencyPairByCurrencies retrieves the pair for an exact ordered
// (base, target) combination.
func (r *PgxCurrencyPairRepository) FindCurrencyPairByCurrencies(ctx context.Context, baseCurrency, targetCurrency string) (*domain.CurrencyPair, error) {
	query := `
		SELECT pair_id, base_currency, target_currency, rate, last_updated, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_pairs
		WHERE base_currency = $1 AND target_currency = $2;
	`
	var modelPair models.CurrencyPair
	err := r.Pool.QueryRow(ctx, query, baseCurrency, targetCurrency).Scan(
		&modelPair.PairID,
		&modelPair.BaseCurrency,
		&modelPair.TargetCurrency,
		&modelPair.Rate,
		&modelPair.LastUpdated,
		&modelPair.CreatedAt,
		&modelPair.CreatedBy,
		&modelPair.LastUpdatedAt,
		&modelPair.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency pair %s/%s: %w", baseCurrency, targetCurrency, err)
	}

	domainPair := mapping.ToDomainCurrencyPair(modelPair)
	return &domainPair, nil
}

// ListCurrencyPairs retrieves all pairs ordered by base then target currency.
func (r *PgxCurrencyPairRepository) ListCurrencyPairs(ctx context.Context) ([]domain.CurrencyPair, error) {
	query := `
		SELECT pair_id, base_currency, target_currency, rate, last_updated, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_pairs
		ORDER BY base_currency, target_currency;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency pairs: %w", err)
	}
	defer rows.Close()

	modelPairs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyPair, error) {
		var pair models.CurrencyPair
		err := row.Scan(
			&pair.PairID,
			&pair.BaseCurrency,
			&pair.TargetCurrency,
			&pair.Rate,
			&pair.LastUpdated,
			&pair.CreatedAt,
			&pair.CreatedBy,
			&pair.LastUpdatedAt,
			&pair.LastUpdatedBy,
		)
		return pair, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency pairs: %w", err)
	}

	return mapping.ToDomainCurrencyPairSlice(modelPairs), nil
}

// UpdateCurrencyPair overwrites an existing pair. Retargeting the pair at a
// (base, target) combination that already exists trips the unique index.
func (r *PgxCurrencyPairRepository) UpdateCurrencyPair(ctx context.Context, pair domain.CurrencyPair) error {
	modelPair := mapping.ToModelCurrencyPair(pair)
	query := `
		UPDATE currency_pairs
		SET base_currency = $1, target_currency = $2, rate = $3, last_updated = $4, last_updated_at = $5, last_updated_by = $6
		WHERE pair_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelPair.BaseCurrency,
		modelPair.TargetCurrency,
		modelPair.Rate,
		modelPair.LastUpdated,
		modelPair.LastUpdatedAt,
		modelPair.LastUpdatedBy,
		modelPair.PairID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("currency pair %s/%s already exists: %w",
				modelPair.BaseCurrency, modelPair.TargetCurrency, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update currency pair: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("currency pair %s: %w", modelPair.PairID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCurrencyPair removes a pair by ID.
func (r *PgxCurrencyPairRepository) DeleteCurrencyPair(ctx context.Context, pairID string) error {
	query := `DELETE FROM currency_pairs WHERE pair_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, pairID)
	if err != nil {
		return fmt.Errorf("failed to delete currency pair: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("currency pair %s: %w", pairID, apperrors.ErrNotFound)
	}
	return nil
}
