package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portsrepo "github.com/merpati-sia/bookkeeping/internal/core/ports/repositories"
	"github.com/merpati-sia/bookkeeping/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		TxDate:          d.TxDate,
		Description:     d.Description,
		Party:           d.Party,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		Amount:          d.Amount,
		EntryKind:       string(d.EntryKind),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		TxDate:          m.TxDate,
		Description:     m.Description,
		Party:           m.Party,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Amount:          m.Amount,
		EntryKind:       domain.EntryKind(m.EntryKind),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// mapAccountFKError maps a foreign key violation on either leg to a
// validation error; the caller referenced an account that does not exist.
func mapAccountFKError(err error, transactionID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: transaction %s references an unknown account", apperrors.ErrValidation, transactionID)
	}
	return nil
}

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, tx_date, description, party, debit_account_id, credit_account_id, amount, entry_kind, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.TxDate,
		modelTxn.Description,
		modelTxn.Party,
		modelTxn.DebitAccountID,
		modelTxn.CreditAccountID,
		modelTxn.Amount,
		modelTxn.EntryKind,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)

	if err != nil {
		if mapped := mapAccountFKError(err, modelTxn.TransactionID); mapped != nil {
			return mapped
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single raw transaction row.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, tx_date, description, party, debit_account_id, credit_account_id, amount, entry_kind, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	var txDate time.Time
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&txDate,
		&modelTxn.Description,
		&modelTxn.Party,
		&modelTxn.DebitAccountID,
		&modelTxn.CreditAccountID,
		&modelTxn.Amount,
		&modelTxn.EntryKind,
		&modelTxn.CreatedAt,
		&modelTxn.CreatedBy,
		&modelTxn.LastUpdatedAt,
		&modelTxn.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	modelTxn.TxDate = txDate.Format(domain.DateLayout)
	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListJournalLines returns the canonical joined read path: every transaction
// with both legs resolved to account code and name, ordered by
// (tx_date, transaction_id) ascending.
func (r *PgxTransactionRepository) ListJournalLines(ctx context.Context) ([]domain.JournalLine, error) {
	query := `
		SELECT t.transaction_id, t.tx_date, t.description, t.party,
		       da.code, da.name, ca.code, ca.name,
		       t.amount, t.entry_kind
		FROM transactions t
		JOIN accounts da ON da.account_id = t.debit_account_id
		JOIN accounts ca ON ca.account_id = t.credit_account_id
		ORDER BY t.tx_date ASC, t.transaction_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.JournalLine, 0)
	for rows.Next() {
		var line domain.JournalLine
		var txDate time.Time
		var entryKind string
		err := rows.Scan(
			&line.TransactionID,
			&txDate,
			&line.Description,
			&line.Party,
			&line.DebitCode,
			&line.DebitName,
			&line.CreditCode,
			&line.CreditName,
			&line.Amount,
			&entryKind,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		line.TxDate = txDate.Format(domain.DateLayout)
		line.EntryKind = domain.EntryKind(entryKind)
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}

	return lines, nil
}

// UpdateTransaction overwrites an existing transaction in full.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET tx_date = $2, description = $3, party = $4, debit_account_id = $5, credit_account_id = $6, amount = $7, entry_kind = $8, last_updated_at = $9, last_updated_by = $10
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.TxDate,
		modelTxn.Description,
		modelTxn.Party,
		modelTxn.DebitAccountID,
		modelTxn.CreditAccountID,
		modelTxn.Amount,
		modelTxn.EntryKind,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)

	if err != nil {
		if mapped := mapAccountFKError(err, modelTxn.TransactionID); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
