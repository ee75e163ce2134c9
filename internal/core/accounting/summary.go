package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// SummaryCodes names the well-known accounts the dashboard summary reads.
// The defaults follow the seeded chart of accounts but are configurable.
type SummaryCodes struct {
	Cash        string
	Receivables string
	Payables    string
	Sales       string
	Inventory   string
}

// DefaultSummaryCodes matches the seed chart of accounts.
func DefaultSummaryCodes() SummaryCodes {
	return SummaryCodes{
		Cash:        "1101",
		Receivables: "1102",
		Payables:    "2101",
		Sales:       "4101",
		Inventory:   "1103",
	}
}

// BuildActivitySummary rolls the whole snapshot up into the dashboard figures:
// transaction count, total sales (credits to the sales account), total
// purchases (inventory debited against cash or payables), key account balances
// and net profit. Balances are nature-signed.
func BuildActivitySummary(lines []domain.JournalLine, codes SummaryCodes) domain.ActivitySummary {
	summary := domain.ActivitySummary{TransactionCount: len(lines)}

	for _, line := range lines {
		if line.CreditCode == codes.Sales {
			summary.TotalSales = summary.TotalSales.Add(line.Amount)
		}
		if line.DebitCode == codes.Inventory &&
			(line.CreditCode == codes.Cash || line.CreditCode == codes.Payables) {
			summary.TotalPurchases = summary.TotalPurchases.Add(line.Amount)
		}
	}

	rows := TrialBalance(lines, TrialBalanceOptions{})
	summary.CashBalance = balanceOf(rows, codes.Cash)
	summary.ReceivableBalance = balanceOf(rows, codes.Receivables)
	summary.PayableBalance = balanceOf(rows, codes.Payables)

	if stmt := BuildIncomeStatement(rows); stmt != nil {
		summary.NetProfit = stmt.NetProfit
	}
	return summary
}

// balanceOf extracts one account's nature-signed balance from a trial balance.
func balanceOf(rows []domain.TrialBalanceRow, code string) decimal.Decimal {
	for _, row := range rows {
		if row.AccountCode != code {
			continue
		}
		if category, ok := domain.ClassifyAccountCode(code); ok {
			return netAmount(row, category)
		}
		return row.Debit.Sub(row.Credit)
	}
	return decimal.Zero
}
