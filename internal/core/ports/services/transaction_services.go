package services

import (
	"context"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	"github.com/merpati-sia/bookkeeping/internal/dto"
)

// TransactionReaderSvc defines read operations for the transaction log.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single raw transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the joined transaction view ordered by
	// (date, id) ascending.
	ListTransactions(ctx context.Context) ([]domain.JournalLine, error)
}

// TransactionWriterSvc defines write operations for the transaction log.
type TransactionWriterSvc interface {
	// RecordTransaction appends a validated debit/credit pair to the log.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction overwrites an existing transaction in full, applying
	// the same validation as RecordTransaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction from the log.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-log service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
