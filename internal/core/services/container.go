package services

import (
	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	portsrepo "github.com/merpati-sia/bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		WithSummaryCodes(accounting.SummaryCodes{
			Cash:        cfg.CashAccountCode,
			Receivables: cfg.ReceivablesControlCode,
			Payables:    cfg.PayablesControlCode,
			Sales:       cfg.SalesAccountCode,
			Inventory:   cfg.InventoryAccountCode,
		}),
	)
	container.User = NewUserService(repos.UserRepo, cfg.DefaultOperatorUsername, cfg.DefaultOperatorPassword)

	return container
}
