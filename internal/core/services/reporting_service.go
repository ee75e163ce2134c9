package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portsrepo "github.com/merpati-sia/bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
)

// reportingService fetches the journal snapshot and folds it through the
// derivation engine. Reports are never persisted; every call recomputes from
// the current log.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	summaryCodes    accounting.SummaryCodes
}

// ReportingOption is a functional option for configuring the reporting service
type ReportingOption func(*reportingService)

// WithSummaryCodes overrides the well-known account codes the subsidiary
// ledgers and dashboard summary read.
func WithSummaryCodes(codes accounting.SummaryCodes) ReportingOption {
	return func(s *reportingService) {
		s.summaryCodes = codes
	}
}

// NewReportingService creates a new reporting service with the provided options.
func NewReportingService(txnRepo portsrepo.TransactionReader, options ...ReportingOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		transactionRepo: txnRepo,
		summaryCodes:    accounting.DefaultSummaryCodes(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// snapshot fetches the immutable journal view all derivations consume.
func (s *reportingService) snapshot(ctx context.Context) ([]domain.JournalLine, error) {
	lines, err := s.transactionRepo.ListJournalLines(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch journal snapshot for reporting")
		return nil, fmt.Errorf("failed to fetch journal snapshot: %w", err)
	}
	return lines, nil
}

func (s *reportingService) TrialBalance(ctx context.Context, opts accounting.TrialBalanceOptions) ([]domain.TrialBalanceRow, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.TrialBalance(lines, opts), nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, fromDate, toDate string) (*domain.IncomeStatement, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows := accounting.TrialBalance(lines, accounting.TrialBalanceOptions{FromDate: fromDate, ToDate: toDate})
	return accounting.BuildIncomeStatement(rows), nil
}

func (s *reportingService) BalanceSheet(ctx context.Context) (domain.BalanceSheet, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	rows := accounting.TrialBalance(lines, accounting.TrialBalanceOptions{})
	sheet := accounting.BuildBalanceSheet(rows)
	if !sheet.Balanced {
		s.LogWarn(ctx, "Balance sheet does not satisfy the accounting identity",
			slog.String("identity_gap", sheet.IdentityGap.String()))
	}
	return sheet, nil
}

func (s *reportingService) Ledgers(ctx context.Context) ([]domain.AccountLedger, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.LedgerByAccount(lines), nil
}

func (s *reportingService) LedgerForAccount(ctx context.Context, accountCode string) (*domain.AccountLedger, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ledger := accounting.LedgerForAccount(lines, accountCode)
	if ledger == nil {
		return nil, fmt.Errorf("%w: account %s has no ledger activity", apperrors.ErrNotFound, accountCode)
	}
	return ledger, nil
}

func (s *reportingService) Receivables(ctx context.Context) (domain.SubsidiaryLedger, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return domain.SubsidiaryLedger{}, err
	}
	return accounting.BuildSubsidiaryLedger(lines, s.summaryCodes.Receivables, domain.DebitNormal), nil
}

func (s *reportingService) Payables(ctx context.Context) (domain.SubsidiaryLedger, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return domain.SubsidiaryLedger{}, err
	}
	return accounting.BuildSubsidiaryLedger(lines, s.summaryCodes.Payables, domain.CreditNormal), nil
}

func (s *reportingService) ActivitySummary(ctx context.Context) (domain.ActivitySummary, error) {
	lines, err := s.snapshot(ctx)
	if err != nil {
		return domain.ActivitySummary{}, err
	}
	return accounting.BuildActivitySummary(lines, s.summaryCodes), nil
}
