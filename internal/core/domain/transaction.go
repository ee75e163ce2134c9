package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes regular entries from period-end adjustments.
type EntryKind string

const (
	EntryNormal     EntryKind = "NORMAL"
	EntryAdjustment EntryKind = "ADJUSTMENT"
)

// adjustmentMarker is the legacy textual marker for adjustment entries
// ("penyesuaian", Indonesian for adjustment). Rows imported from older data
// carry it in the description instead of a structured kind.
const adjustmentMarker = "penyesuaian"

// InferEntryKind derives the entry kind from a description for rows that do
// not declare one explicitly. Matching is a case-insensitive substring check.
func InferEntryKind(description string) EntryKind {
	if strings.Contains(strings.ToLower(description), adjustmentMarker) {
		return EntryAdjustment
	}
	return EntryNormal
}

// Transaction is a single debit/credit pair: one amount moved from the credit
// account to the debit account. There are no multi-line entries; a transaction
// always touches exactly two distinct accounts.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	TxDate          string          `json:"txDate"`        // ISO 8601 date (DateLayout)
	Description     string          `json:"description"`
	Party           string          `json:"party"` // Structured counterparty, optional
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"` // Strictly positive
	EntryKind       EntryKind       `json:"entryKind"`
	AuditFields
}

// JournalLine is one row of the canonical joined read path: a transaction with
// the code and name of both legs resolved. Every report derivation consumes a
// snapshot of these lines, never raw rows, ordered by (TxDate, TransactionID).
type JournalLine struct {
	TransactionID string          `json:"transactionID"`
	TxDate        string          `json:"txDate"`
	Description   string          `json:"description"`
	Party         string          `json:"party"`
	DebitCode     string          `json:"debitCode"`
	DebitName     string          `json:"debitName"`
	CreditCode    string          `json:"creditCode"`
	CreditName    string          `json:"creditName"`
	Amount        decimal.Decimal `json:"amount"`
	EntryKind     EntryKind       `json:"entryKind"`
}

// Counterparty returns the grouping key for subsidiary ledgers: the structured
// party when present, otherwise the description (the legacy convention wrote
// the customer or supplier name there).
func (l JournalLine) Counterparty() string {
	if l.Party != "" {
		return l.Party
	}
	return l.Description
}
