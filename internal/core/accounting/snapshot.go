// Package accounting is the derivation engine: pure, stateless functions that
// fold an immutable snapshot of journal lines into trial balances, ledgers and
// classified financial statements. Nothing here touches storage or a clock;
// callers fetch the snapshot (the joined transaction view) and pass it in.
package accounting

import (
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// TrialBalanceOptions narrows the snapshot before aggregation.
type TrialBalanceOptions struct {
	// FromDate and ToDate bound the inclusive date range. Either may be empty
	// for a one-sided filter. Dates are ISO 8601 strings, compared lexically.
	FromDate string
	ToDate   string
	// ExcludeAdjustments drops ADJUSTMENT entries, producing the
	// before-adjustment view of the trial balance.
	ExcludeAdjustments bool
}

// includes reports whether a journal line survives the options' filters.
func (o TrialBalanceOptions) includes(line domain.JournalLine) bool {
	if o.FromDate != "" && line.TxDate < o.FromDate {
		return false
	}
	if o.ToDate != "" && line.TxDate > o.ToDate {
		return false
	}
	if o.ExcludeAdjustments && line.EntryKind == domain.EntryAdjustment {
		return false
	}
	return true
}
