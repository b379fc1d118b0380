package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPair is the database representation of an ordered currency pair
// and its exchange rate. (base_currency, target_currency) is unique.
type CurrencyPair struct {
	PairID         string          `db:"pair_id"`
	BaseCurrency   string          `db:"base_currency"`
	TargetCurrency string          `db:"target_currency"`
	Rate           decimal.Decimal `db:"rate"`
	LastUpdated    time.Time       `db:"last_updated"`
	AuditFields
}
