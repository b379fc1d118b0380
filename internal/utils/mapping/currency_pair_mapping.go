package mapping

import (
	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/dermengr/Currency/internal/models"
)

// ToModelCurrencyPair converts a domain CurrencyPair to a model CurrencyPair
func ToModelCurrencyPair(d domain.CurrencyPair) models.CurrencyPair {
	return models.CurrencyPair{
		PairID:         d.PairID,
		BaseCurrency:   d.BaseCurrency,
		TargetCurrency: d.TargetCurrency,
		Rate:           d.Rate,
		LastUpdated:    d.LastUpdated,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyPair converts a model CurrencyPair to a domain CurrencyPair
func ToDomainCurrencyPair(m models.CurrencyPair) domain.CurrencyPair {
	return domain.CurrencyPair{
		PairID:         m.PairID,
		BaseCurrency:   m.BaseCurrency,
		TargetCurrency: m.TargetCurrency,
		Rate:           m.Rate,
		LastUpdated:    m.LastUpdated,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencyPairSlice converts a slice of model CurrencyPairs to domain CurrencyPairs
func ToDomainCurrencyPairSlice(ms []models.CurrencyPair) []domain.CurrencyPair {
	ds := make([]domain.CurrencyPair, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyPair(m)
	}
	return ds
}
