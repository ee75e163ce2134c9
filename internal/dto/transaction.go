package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// RecordTransactionRequest defines the data for recording or fully
// overwriting one debit/credit pair. EntryKind is optional; when omitted it is
// inferred from the description's legacy adjustment marker.
type RecordTransactionRequest struct {
	TxDate          string          `json:"txDate" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Party           string          `json:"party"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	EntryKind       string          `json:"entryKind" binding:"omitempty,oneof=NORMAL ADJUSTMENT"`
}

// TransactionResponse defines the data returned for a raw transaction row.
type TransactionResponse struct {
	TransactionID   string           `json:"transactionID"`
	TxDate          string           `json:"txDate"`
	Description     string           `json:"description"`
	Party           string           `json:"party,omitempty"`
	DebitAccountID  string           `json:"debitAccountID"`
	CreditAccountID string           `json:"creditAccountID"`
	Amount          decimal.Decimal  `json:"amount"`
	EntryKind       domain.EntryKind `json:"entryKind"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		TxDate:          txn.TxDate,
		Description:     txn.Description,
		Party:           txn.Party,
		DebitAccountID:  txn.DebitAccountID,
		CreditAccountID: txn.CreditAccountID,
		Amount:          txn.Amount,
		EntryKind:       txn.EntryKind,
		CreatedAt:       txn.CreatedAt,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// JournalLineResponse is one row of the joined transaction view.
type JournalLineResponse struct {
	TransactionID string           `json:"transactionID"`
	TxDate        string           `json:"txDate"`
	Description   string           `json:"description"`
	Party         string           `json:"party,omitempty"`
	DebitCode     string           `json:"debitCode"`
	DebitName     string           `json:"debitName"`
	CreditCode    string           `json:"creditCode"`
	CreditName    string           `json:"creditName"`
	Amount        decimal.Decimal  `json:"amount"`
	EntryKind     domain.EntryKind `json:"entryKind"`
}

// ListTransactionsResponse wraps the joined transaction view.
type ListTransactionsResponse struct {
	Transactions []JournalLineResponse `json:"transactions"`
}

// ToListTransactionsResponse converts joined journal lines to the list DTO.
func ToListTransactionsResponse(lines []domain.JournalLine) ListTransactionsResponse {
	res := ListTransactionsResponse{Transactions: make([]JournalLineResponse, len(lines))}
	for i, l := range lines {
		res.Transactions[i] = JournalLineResponse{
			TransactionID: l.TransactionID,
			TxDate:        l.TxDate,
			Description:   l.Description,
			Party:         l.Party,
			DebitCode:     l.DebitCode,
			DebitName:     l.DebitName,
			CreditCode:    l.CreditCode,
			CreditName:    l.CreditName,
			Amount:        l.Amount,
			EntryKind:     l.EntryKind,
		}
	}
	return res
}
