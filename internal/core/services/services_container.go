package services

import (
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		CurrencyPair: NewCurrencyPairService(repos.CurrencyPairRepo),
		Conversion:   NewConversionService(repos.CurrencyPairRepo),
	}
}
