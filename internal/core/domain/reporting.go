package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one derived row of a trial balance: per-account debit and
// credit sums. Only accounts with activity appear; rows are ordered by code.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerEntry is one side of a transaction posted to an account's ledger, with
// the running balance after the entry. The running balance is a prefix sum of
// debit minus credit regardless of account nature; sign interpretation is left
// to the reader of the report.
type LedgerEntry struct {
	TxDate         string          `json:"txDate"`
	TransactionID  string          `json:"transactionID"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the chronological ledger of a single account.
type AccountLedger struct {
	AccountCode string        `json:"accountCode"`
	AccountName string        `json:"accountName"`
	Entries     []LedgerEntry `json:"entries"`
}

// PartyLedgerEntry is one movement on a control account attributed to a
// counterparty, with the nature-aware running balance after the movement.
type PartyLedgerEntry struct {
	TxDate         string          `json:"txDate"`
	TransactionID  string          `json:"transactionID"`
	DebitCode      string          `json:"debitCode"`
	CreditCode     string          `json:"creditCode"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// PartyLedger is the subsidiary ledger of one counterparty against a control
// account (receivables or payables).
type PartyLedger struct {
	Party   string             `json:"party"`
	Entries []PartyLedgerEntry `json:"entries"`
}

// SubsidiaryLedger groups control-account activity by counterparty.
type SubsidiaryLedger struct {
	ControlCode string        `json:"controlCode"`
	Nature      NaturalBalance `json:"nature"`
	Parties     []PartyLedger `json:"parties"`
}

// StatementItem is one account line inside a statement section, with its net
// amount signed per the section's natural balance.
type StatementItem struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// StatementSection is a classified group of statement items with its total.
type StatementSection struct {
	Items []StatementItem `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// IncomeStatement is the classified profit and loss report. A nil value is the
// "no data" sentinel for an empty trial balance.
type IncomeStatement struct {
	Revenue           StatementSection `json:"revenue"`
	CostOfGoodsSold   StatementSection `json:"costOfGoodsSold"`
	OperatingExpenses StatementSection `json:"operatingExpenses"`
	OtherIncome       StatementSection `json:"otherIncome"`
	OtherExpenses     StatementSection `json:"otherExpenses"`
	GrossProfit       decimal.Decimal  `json:"grossProfit"`
	NetProfit         decimal.Decimal  `json:"netProfit"`
}

// BalanceSheet is the classified statement of financial position. Balanced
// reports whether the accounting identity holds; IdentityGap is
// assets - liabilities - equity and is zero when it does. The gap is reported,
// never enforced.
type BalanceSheet struct {
	Assets      StatementSection `json:"assets"`
	Liabilities StatementSection `json:"liabilities"`
	Equity      StatementSection `json:"equity"`
	Balanced    bool             `json:"balanced"`
	IdentityGap decimal.Decimal  `json:"identityGap"`
}

// ActivitySummary is the dashboard roll-up over the whole transaction log.
type ActivitySummary struct {
	TransactionCount  int             `json:"transactionCount"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalPurchases    decimal.Decimal `json:"totalPurchases"`
	CashBalance       decimal.Decimal `json:"cashBalance"`
	ReceivableBalance decimal.Decimal `json:"receivableBalance"`
	PayableBalance    decimal.Decimal `json:"payableBalance"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}
