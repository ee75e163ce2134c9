package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

func TestBuildSubsidiaryLedger_Receivables(t *testing.T) {
	// Sale on credit to Toko A, then a partial payment.
	lines := []domain.JournalLine{
		line("tx-1", "2024-02-01", "Toko A", "1102", "4101", 200000),
		line("tx-2", "2024-02-15", "Toko A", "1101", "1102", 50000),
	}

	ledger := accounting.BuildSubsidiaryLedger(lines, "1102", domain.DebitNormal)

	require.Len(t, ledger.Parties, 1)
	party := ledger.Parties[0]
	assert.Equal(t, "Toko A", party.Party)
	require.Len(t, party.Entries, 2)
	assert.True(t, party.Entries[0].RunningBalance.Equal(decimal.NewFromInt(200000)))
	assert.True(t, party.Entries[1].RunningBalance.Equal(decimal.NewFromInt(150000)))
}

func TestBuildSubsidiaryLedger_PayablesMirrorSigns(t *testing.T) {
	// Purchase on credit from Toko B, then a partial payment.
	lines := []domain.JournalLine{
		line("tx-1", "2024-03-01", "Toko B", "1103", "2101", 400000),
		line("tx-2", "2024-03-20", "Toko B", "2101", "1101", 150000),
	}

	ledger := accounting.BuildSubsidiaryLedger(lines, "2101", domain.CreditNormal)

	require.Len(t, ledger.Parties, 1)
	party := ledger.Parties[0]
	require.Len(t, party.Entries, 2)
	assert.True(t, party.Entries[0].RunningBalance.Equal(decimal.NewFromInt(400000)))
	assert.True(t, party.Entries[1].RunningBalance.Equal(decimal.NewFromInt(250000)))
}

func TestBuildSubsidiaryLedger_GroupsByParty(t *testing.T) {
	lines := []domain.JournalLine{
		line("tx-1", "2024-02-01", "Toko A", "1102", "4101", 100),
		line("tx-2", "2024-02-02", "Toko B", "1102", "4101", 200),
		line("tx-3", "2024-02-03", "Toko A", "1102", "4101", 300),
	}

	ledger := accounting.BuildSubsidiaryLedger(lines, "1102", domain.DebitNormal)

	require.Len(t, ledger.Parties, 2)
	assert.Equal(t, "Toko A", ledger.Parties[0].Party)
	assert.Len(t, ledger.Parties[0].Entries, 2)
	assert.Equal(t, "Toko B", ledger.Parties[1].Party)
	assert.Len(t, ledger.Parties[1].Entries, 1)
}

func TestBuildSubsidiaryLedger_StructuredPartyWinsOverDescription(t *testing.T) {
	withParty := line("tx-1", "2024-02-01", "Penjualan kredit faktur 17", "1102", "4101", 100)
	withParty.Party = "Toko A"
	legacy := line("tx-2", "2024-02-05", "Toko A", "1102", "4101", 50)

	ledger := accounting.BuildSubsidiaryLedger([]domain.JournalLine{withParty, legacy}, "1102", domain.DebitNormal)

	// Both rows resolve to the same counterparty.
	require.Len(t, ledger.Parties, 1)
	assert.Equal(t, "Toko A", ledger.Parties[0].Party)
	assert.Len(t, ledger.Parties[0].Entries, 2)
}

func TestBuildSubsidiaryLedger_IgnoresUnrelatedLines(t *testing.T) {
	lines := []domain.JournalLine{
		line("tx-1", "2024-01-05", "Setoran modal", "1101", "3101", 1000000),
	}
	ledger := accounting.BuildSubsidiaryLedger(lines, "1102", domain.DebitNormal)
	assert.Empty(t, ledger.Parties)
}
