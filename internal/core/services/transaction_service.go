package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portsrepo "github.com/merpati-sia/bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: txnRepo,
		accountRepo:     accountRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// buildTransaction validates the request and assembles the domain transaction.
// Validation order: date format, positive amount, distinct legs, then account
// existence (both legs in one batch lookup).
func (s *transactionService) buildTransaction(ctx context.Context, transactionID string, req dto.RecordTransactionRequest, userID string, createdAt time.Time, createdBy string) (*domain.Transaction, error) {
	if _, err := time.Parse(domain.DateLayout, req.TxDate); err != nil {
		return nil, fmt.Errorf("%w: txDate must be formatted as %s", apperrors.ErrValidation, domain.DateLayout)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.DebitAccountID == req.CreditAccountID {
		return nil, fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{req.DebitAccountID, req.CreditAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for transaction validation")
		return nil, fmt.Errorf("failed to validate transaction accounts: %w", err)
	}
	if _, ok := accounts[req.DebitAccountID]; !ok {
		return nil, fmt.Errorf("%w: debit account %s not found", apperrors.ErrValidation, req.DebitAccountID)
	}
	if _, ok := accounts[req.CreditAccountID]; !ok {
		return nil, fmt.Errorf("%w: credit account %s not found", apperrors.ErrValidation, req.CreditAccountID)
	}

	entryKind := domain.EntryKind(req.EntryKind)
	if entryKind == "" {
		entryKind = domain.InferEntryKind(req.Description)
	}

	now := time.Now()
	return &domain.Transaction{
		TransactionID:   transactionID,
		TxDate:          req.TxDate,
		Description:     req.Description,
		Party:           req.Party,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		EntryKind:       entryKind,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error) {
	now := time.Now()
	txn, err := s.buildTransaction(ctx, uuid.NewString(), req, userID, now, userID)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save transaction in repository", slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("tx_date", txn.TxDate),
		slog.String("amount", txn.Amount.String()),
	)
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.JournalLine, error) {
	lines, err := s.transactionRepo.ListJournalLines(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal lines")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if lines == nil {
		lines = []domain.JournalLine{}
	}
	return lines, nil
}

// UpdateTransaction overwrites an existing transaction in full, applying the
// same validation as RecordTransaction. The original audit creation fields are
// preserved.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txn, err := s.buildTransaction(ctx, transactionID, req, userID, existing.CreatedAt, existing.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
