package dto

import (
	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	View   string                    `json:"view"`
	From   string                    `json:"from,omitempty"`
	To     string                    `json:"to,omitempty"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, view, from, to string) TrialBalanceResponse {
	response := TrialBalanceResponse{
		View: view,
		From: from,
		To:   to,
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

// StatementItemResponse is one account line in a statement section.
type StatementItemResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// StatementSectionResponse is a classified statement section with its total.
type StatementSectionResponse struct {
	Items []StatementItemResponse `json:"items"`
	Total decimal.Decimal         `json:"total"`
}

func toSectionResponse(section domain.StatementSection) StatementSectionResponse {
	res := StatementSectionResponse{
		Items: make([]StatementItemResponse, len(section.Items)),
		Total: section.Total,
	}
	for i, item := range section.Items {
		res.Items[i] = StatementItemResponse(item)
	}
	return res
}

// IncomeStatementResponse represents the income statement report. NoData is
// the "no data" sentinel for an empty transaction log.
type IncomeStatementResponse struct {
	From              string                    `json:"from,omitempty"`
	To                string                    `json:"to,omitempty"`
	NoData            bool                      `json:"noData"`
	Revenue           *StatementSectionResponse `json:"revenue,omitempty"`
	CostOfGoodsSold   *StatementSectionResponse `json:"costOfGoodsSold,omitempty"`
	OperatingExpenses *StatementSectionResponse `json:"operatingExpenses,omitempty"`
	OtherIncome       *StatementSectionResponse `json:"otherIncome,omitempty"`
	OtherExpenses     *StatementSectionResponse `json:"otherExpenses,omitempty"`
	GrossProfit       *decimal.Decimal          `json:"grossProfit,omitempty"`
	NetProfit         *decimal.Decimal          `json:"netProfit,omitempty"`
}

// ToIncomeStatementResponse converts the domain report, mapping the nil
// sentinel to NoData.
func ToIncomeStatementResponse(stmt *domain.IncomeStatement, from, to string) IncomeStatementResponse {
	if stmt == nil {
		return IncomeStatementResponse{From: from, To: to, NoData: true}
	}

	revenue := toSectionResponse(stmt.Revenue)
	cogs := toSectionResponse(stmt.CostOfGoodsSold)
	opex := toSectionResponse(stmt.OperatingExpenses)
	otherIncome := toSectionResponse(stmt.OtherIncome)
	otherExpenses := toSectionResponse(stmt.OtherExpenses)
	grossProfit := stmt.GrossProfit
	netProfit := stmt.NetProfit

	return IncomeStatementResponse{
		From:              from,
		To:                to,
		Revenue:           &revenue,
		CostOfGoodsSold:   &cogs,
		OperatingExpenses: &opex,
		OtherIncome:       &otherIncome,
		OtherExpenses:     &otherExpenses,
		GrossProfit:       &grossProfit,
		NetProfit:         &netProfit,
	}
}

// BalanceSheetResponse represents the balance sheet report.
type BalanceSheetResponse struct {
	Assets      StatementSectionResponse `json:"assets"`
	Liabilities StatementSectionResponse `json:"liabilities"`
	Equity      StatementSectionResponse `json:"equity"`
	Balanced    bool                     `json:"balanced"`
	IdentityGap decimal.Decimal          `json:"identityGap"`
}

// ToBalanceSheetResponse converts the domain balance sheet to its DTO.
func ToBalanceSheetResponse(sheet domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:      toSectionResponse(sheet.Assets),
		Liabilities: toSectionResponse(sheet.Liabilities),
		Equity:      toSectionResponse(sheet.Equity),
		Balanced:    sheet.Balanced,
		IdentityGap: sheet.IdentityGap,
	}
}

// LedgerEntryResponse is one posted entry with its running balance.
type LedgerEntryResponse struct {
	TxDate         string          `json:"txDate"`
	TransactionID  string          `json:"transactionID"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedgerResponse is one account's chronological ledger.
type AccountLedgerResponse struct {
	AccountCode string                `json:"accountCode"`
	AccountName string                `json:"accountName"`
	Entries     []LedgerEntryResponse `json:"entries"`
}

// ToAccountLedgerResponse converts a single domain ledger.
func ToAccountLedgerResponse(ledger domain.AccountLedger) AccountLedgerResponse {
	res := AccountLedgerResponse{
		AccountCode: ledger.AccountCode,
		AccountName: ledger.AccountName,
		Entries:     make([]LedgerEntryResponse, len(ledger.Entries)),
	}
	for i, e := range ledger.Entries {
		res.Entries[i] = LedgerEntryResponse(e)
	}
	return res
}

// LedgersResponse wraps the per-account ledgers of the whole log.
type LedgersResponse struct {
	Ledgers []AccountLedgerResponse `json:"ledgers"`
}

// ToLedgersResponse converts all domain ledgers.
func ToLedgersResponse(ledgers []domain.AccountLedger) LedgersResponse {
	res := LedgersResponse{Ledgers: make([]AccountLedgerResponse, len(ledgers))}
	for i, l := range ledgers {
		res.Ledgers[i] = ToAccountLedgerResponse(l)
	}
	return res
}

// PartyLedgerEntryResponse is one control-account movement for a counterparty.
type PartyLedgerEntryResponse struct {
	TxDate         string          `json:"txDate"`
	TransactionID  string          `json:"transactionID"`
	DebitCode      string          `json:"debitCode"`
	CreditCode     string          `json:"creditCode"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// PartyLedgerResponse is one counterparty's subsidiary ledger.
type PartyLedgerResponse struct {
	Party   string                     `json:"party"`
	Entries []PartyLedgerEntryResponse `json:"entries"`
}

// SubsidiaryLedgerResponse represents a receivables or payables report.
type SubsidiaryLedgerResponse struct {
	ControlCode string                `json:"controlCode"`
	Nature      string                `json:"nature"`
	Parties     []PartyLedgerResponse `json:"parties"`
}

// ToSubsidiaryLedgerResponse converts a domain subsidiary ledger.
func ToSubsidiaryLedgerResponse(ledger domain.SubsidiaryLedger) SubsidiaryLedgerResponse {
	res := SubsidiaryLedgerResponse{
		ControlCode: ledger.ControlCode,
		Nature:      string(ledger.Nature),
		Parties:     make([]PartyLedgerResponse, len(ledger.Parties)),
	}
	for i, party := range ledger.Parties {
		entries := make([]PartyLedgerEntryResponse, len(party.Entries))
		for j, e := range party.Entries {
			entries[j] = PartyLedgerEntryResponse(e)
		}
		res.Parties[i] = PartyLedgerResponse{Party: party.Party, Entries: entries}
	}
	return res
}

// ActivitySummaryResponse is the dashboard roll-up.
type ActivitySummaryResponse struct {
	TransactionCount  int             `json:"transactionCount"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalPurchases    decimal.Decimal `json:"totalPurchases"`
	CashBalance       decimal.Decimal `json:"cashBalance"`
	ReceivableBalance decimal.Decimal `json:"receivableBalance"`
	PayableBalance    decimal.Decimal `json:"payableBalance"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// ToActivitySummaryResponse converts the domain summary.
func ToActivitySummaryResponse(summary domain.ActivitySummary) ActivitySummaryResponse {
	return ActivitySummaryResponse(summary)
}
