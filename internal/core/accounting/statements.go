package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// netAmount signs a trial balance row per the natural balance of its category:
// debit minus credit for debit-normal categories, the reverse otherwise.
func netAmount(row domain.TrialBalanceRow, category domain.Category) decimal.Decimal {
	if domain.NaturalBalanceOf(category) == domain.DebitNormal {
		return row.Debit.Sub(row.Credit)
	}
	return row.Credit.Sub(row.Debit)
}

func appendItem(section *domain.StatementSection, row domain.TrialBalanceRow, category domain.Category) {
	amount := netAmount(row, category)
	section.Items = append(section.Items, domain.StatementItem{
		AccountCode: row.AccountCode,
		AccountName: row.AccountName,
		Amount:      amount,
	})
	section.Total = section.Total.Add(amount)
}

// BuildIncomeStatement classifies trial balance rows into the five income
// statement sections and derives gross and net profit:
//
//	grossProfit = revenue - cogs
//	netProfit   = grossProfit - operatingExpenses + otherIncome - otherExpenses
//
// An empty trial balance yields nil, the "no data" sentinel.
func BuildIncomeStatement(rows []domain.TrialBalanceRow) *domain.IncomeStatement {
	if len(rows) == 0 {
		return nil
	}

	stmt := &domain.IncomeStatement{}
	for _, row := range rows {
		category, ok := domain.ClassifyAccountCode(row.AccountCode)
		if !ok {
			continue
		}
		switch category {
		case domain.CategoryRevenue:
			appendItem(&stmt.Revenue, row, category)
		case domain.CategoryCOGS:
			appendItem(&stmt.CostOfGoodsSold, row, category)
		case domain.CategoryOperatingExpense:
			appendItem(&stmt.OperatingExpenses, row, category)
		case domain.CategoryOtherIncome:
			appendItem(&stmt.OtherIncome, row, category)
		case domain.CategoryOtherExpense:
			appendItem(&stmt.OtherExpenses, row, category)
		}
	}

	stmt.GrossProfit = stmt.Revenue.Total.Sub(stmt.CostOfGoodsSold.Total)
	stmt.NetProfit = stmt.GrossProfit.
		Sub(stmt.OperatingExpenses.Total).
		Add(stmt.OtherIncome.Total).
		Sub(stmt.OtherExpenses.Total)
	return stmt
}

// BuildBalanceSheet splits trial balance rows into asset, liability and equity
// groups with nature-signed balances and group totals. The accounting identity
// is checked and reported via Balanced/IdentityGap but never enforced; an
// empty trial balance yields empty groups with zero totals.
func BuildBalanceSheet(rows []domain.TrialBalanceRow) domain.BalanceSheet {
	sheet := domain.BalanceSheet{}
	for _, row := range rows {
		category, ok := domain.ClassifyAccountCode(row.AccountCode)
		if !ok {
			continue
		}
		switch category {
		case domain.CategoryAsset:
			appendItem(&sheet.Assets, row, category)
		case domain.CategoryLiability:
			appendItem(&sheet.Liabilities, row, category)
		case domain.CategoryEquity:
			appendItem(&sheet.Equity, row, category)
		}
	}

	sheet.IdentityGap = sheet.Assets.Total.
		Sub(sheet.Liabilities.Total).
		Sub(sheet.Equity.Total)
	sheet.Balanced = sheet.IdentityGap.IsZero()
	return sheet
}
