package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// TrialBalance folds the snapshot into per-account debit and credit sums.
// Each line contributes its amount once to the debit account's debit total and
// once to the credit account's credit total, so the result is self-balancing.
// Accounts with no surviving activity are excluded; rows are ordered by
// account code ascending.
func TrialBalance(lines []domain.JournalLine, opts TrialBalanceOptions) []domain.TrialBalanceRow {
	type accumulator struct {
		name   string
		debit  decimal.Decimal
		credit decimal.Decimal
	}

	totals := make(map[string]*accumulator)
	ensure := func(code, name string) *accumulator {
		acc, ok := totals[code]
		if !ok {
			acc = &accumulator{name: name}
			totals[code] = acc
		}
		return acc
	}

	for _, line := range lines {
		if !opts.includes(line) {
			continue
		}
		debitAcc := ensure(line.DebitCode, line.DebitName)
		debitAcc.debit = debitAcc.debit.Add(line.Amount)

		creditAcc := ensure(line.CreditCode, line.CreditName)
		creditAcc.credit = creditAcc.credit.Add(line.Amount)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for code, acc := range totals {
		if acc.debit.IsZero() && acc.credit.IsZero() {
			continue
		}
		rows = append(rows, domain.TrialBalanceRow{
			AccountCode: code,
			AccountName: acc.name,
			Debit:       acc.debit,
			Credit:      acc.credit,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AccountCode < rows[j].AccountCode
	})
	return rows
}
