package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPair stores the exchange rate for an ordered pair of currencies.
// (USD,EUR) and (EUR,USD) are independent records; neither is derived from
// the other's inverse. Rate is always positive. LastUpdated is refreshed
// only when Rate actually changes.
type CurrencyPair struct {
	PairID         string          `json:"pairID"` // Primary Key (UUID)
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	AuditFields
}
