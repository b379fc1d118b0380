package pgsql

import (
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all repositories to a shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		CurrencyPairRepo: newPgxCurrencyPairRepository(dbPool),
	}
}
