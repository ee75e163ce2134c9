package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// BuildSubsidiaryLedger narrows the snapshot to lines touching one control
// account and groups them by counterparty. Running balances are nature-aware:
// for a debit-normal control account (receivables) a debit to the control
// account increases the balance; for a credit-normal one (payables) a credit
// does. Parties are ordered by name, entries by (date, transaction id).
func BuildSubsidiaryLedger(lines []domain.JournalLine, controlCode string, nature domain.NaturalBalance) domain.SubsidiaryLedger {
	grouped := make(map[string][]domain.JournalLine)
	for _, line := range lines {
		if line.DebitCode != controlCode && line.CreditCode != controlCode {
			continue
		}
		party := line.Counterparty()
		grouped[party] = append(grouped[party], line)
	}

	parties := make([]domain.PartyLedger, 0, len(grouped))
	for party, partyLines := range grouped {
		sort.Slice(partyLines, func(i, j int) bool {
			if partyLines[i].TxDate != partyLines[j].TxDate {
				return partyLines[i].TxDate < partyLines[j].TxDate
			}
			return partyLines[i].TransactionID < partyLines[j].TransactionID
		})

		balance := decimal.Zero
		entries := make([]domain.PartyLedgerEntry, 0, len(partyLines))
		for _, line := range partyLines {
			controlDebited := line.DebitCode == controlCode
			increase := controlDebited == (nature == domain.DebitNormal)
			if increase {
				balance = balance.Add(line.Amount)
			} else {
				balance = balance.Sub(line.Amount)
			}
			entries = append(entries, domain.PartyLedgerEntry{
				TxDate:         line.TxDate,
				TransactionID:  line.TransactionID,
				DebitCode:      line.DebitCode,
				CreditCode:     line.CreditCode,
				Amount:         line.Amount,
				RunningBalance: balance,
			})
		}

		parties = append(parties, domain.PartyLedger{Party: party, Entries: entries})
	}

	sort.Slice(parties, func(i, j int) bool {
		return parties[i].Party < parties[j].Party
	})

	return domain.SubsidiaryLedger{
		ControlCode: controlCode,
		Nature:      nature,
		Parties:     parties,
	}
}
