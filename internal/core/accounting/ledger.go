package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// LedgerByAccount posts every transaction to both of its accounts and returns
// one chronological ledger per account, ordered by account code. Within each
// ledger, entries are sorted by (date, transaction id) and the running balance
// is the prefix sum of debit minus credit, uniformly for all account types.
func LedgerByAccount(lines []domain.JournalLine) []domain.AccountLedger {
	type ledgerAcc struct {
		name    string
		entries []domain.LedgerEntry
	}

	byCode := make(map[string]*ledgerAcc)
	post := func(code, name string, entry domain.LedgerEntry) {
		acc, ok := byCode[code]
		if !ok {
			acc = &ledgerAcc{name: name}
			byCode[code] = acc
		}
		acc.entries = append(acc.entries, entry)
	}

	for _, line := range lines {
		post(line.DebitCode, line.DebitName, domain.LedgerEntry{
			TxDate:        line.TxDate,
			TransactionID: line.TransactionID,
			Description:   line.Description,
			Debit:         line.Amount,
		})
		post(line.CreditCode, line.CreditName, domain.LedgerEntry{
			TxDate:        line.TxDate,
			TransactionID: line.TransactionID,
			Description:   line.Description,
			Credit:        line.Amount,
		})
	}

	ledgers := make([]domain.AccountLedger, 0, len(byCode))
	for code, acc := range byCode {
		sort.Slice(acc.entries, func(i, j int) bool {
			if acc.entries[i].TxDate != acc.entries[j].TxDate {
				return acc.entries[i].TxDate < acc.entries[j].TxDate
			}
			return acc.entries[i].TransactionID < acc.entries[j].TransactionID
		})

		balance := decimal.Zero
		for i := range acc.entries {
			balance = balance.Add(acc.entries[i].Debit).Sub(acc.entries[i].Credit)
			acc.entries[i].RunningBalance = balance
		}

		ledgers = append(ledgers, domain.AccountLedger{
			AccountCode: code,
			AccountName: acc.name,
			Entries:     acc.entries,
		})
	}

	sort.Slice(ledgers, func(i, j int) bool {
		return ledgers[i].AccountCode < ledgers[j].AccountCode
	})
	return ledgers
}

// LedgerForAccount returns the single-account ledger for code, or nil when the
// account has no activity.
func LedgerForAccount(lines []domain.JournalLine, code string) *domain.AccountLedger {
	for _, ledger := range LedgerByAccount(lines) {
		if ledger.AccountCode == code {
			return &ledger
		}
	}
	return nil
}
