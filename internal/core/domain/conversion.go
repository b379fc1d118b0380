package domain

import "github.com/shopspring/decimal"

// ConversionResult is the outcome of converting an amount between two
// currencies. ConvertedAmount is rounded to 2 decimal places; Rate keeps
// the full stored precision.
type ConversionResult struct {
	BaseCurrency    string          `json:"baseCurrency"`
	TargetCurrency  string          `json:"targetCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
}
