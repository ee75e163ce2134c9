package repositories

import (
	"context"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log.
type TransactionReader interface {
	// FindTransactionByID retrieves a single raw transaction row.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListJournalLines returns the canonical joined read path: every
	// transaction with both account legs resolved to code and name, ordered by
	// (tx_date, transaction_id) ascending. All report derivations consume this
	// snapshot.
	ListJournalLines(ctx context.Context) ([]domain.JournalLine, error)
}

// TransactionWriter defines write operations for the transaction log.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. Unknown account references
	// surface as apperrors.ErrValidation.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites an existing transaction in full. Returns
	// apperrors.ErrNotFound for unknown ids.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound
	// for unknown ids.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-log repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
