package services

import (
	"context"

	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// ReportingSvcFacade exposes the derived reports. Every call re-reads the full
// transaction log and folds it through the derivation engine; there is no
// caching and no snapshot isolation across separate report calls.
type ReportingSvcFacade interface {
	// TrialBalance computes per-account debit/credit sums, optionally
	// date-filtered and optionally excluding adjustment entries.
	TrialBalance(ctx context.Context, opts accounting.TrialBalanceOptions) ([]domain.TrialBalanceRow, error)

	// IncomeStatement builds the classified profit and loss report for the
	// given inclusive date range (either bound may be empty). A nil report is
	// the "no data" sentinel.
	IncomeStatement(ctx context.Context, fromDate, toDate string) (*domain.IncomeStatement, error)

	// BalanceSheet builds the statement of financial position over the whole log.
	BalanceSheet(ctx context.Context) (domain.BalanceSheet, error)

	// Ledgers returns the per-account running-balance ledgers for every
	// account with activity.
	Ledgers(ctx context.Context) ([]domain.AccountLedger, error)

	// LedgerForAccount returns a single account's ledger, or ErrNotFound when
	// the account has no activity.
	LedgerForAccount(ctx context.Context, accountCode string) (*domain.AccountLedger, error)

	// Receivables returns the subsidiary ledger of the receivables control
	// account, grouped by counterparty.
	Receivables(ctx context.Context) (domain.SubsidiaryLedger, error)

	// Payables returns the subsidiary ledger of the payables control account.
	Payables(ctx context.Context) (domain.SubsidiaryLedger, error)

	// ActivitySummary rolls the whole log up into the dashboard figures.
	ActivitySummary(ctx context.Context) (domain.ActivitySummary, error)
}
