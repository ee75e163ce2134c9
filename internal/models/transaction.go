package models

import (
	"github.com/shopspring/decimal"
)

// Transaction represents one journal entry row: a single debit leg and a
// single credit leg of equal amount. TxDate is the business date formatted as
// YYYY-MM-DD, distinct from the audit timestamps.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	TxDate          string          `db:"tx_date"`
	Description     string          `db:"description"`
	Party           string          `db:"party"`
	DebitAccountID  string          `db:"debit_account_id"`
	CreditAccountID string          `db:"credit_account_id"`
	Amount          decimal.Decimal `db:"amount"`
	EntryKind       string          `db:"entry_kind"`
	AuditFields
}
