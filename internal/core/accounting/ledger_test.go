package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merpati-sia/bookkeeping/internal/core/accounting"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

func TestLedgerByAccount_PostsBothLegs(t *testing.T) {
	lines := []domain.JournalLine{
		line("tx-1", "2024-01-10", "Penjualan tunai", "1101", "4101", 500000),
	}

	ledgers := accounting.LedgerByAccount(lines)

	require.Len(t, ledgers, 2)

	cash := ledgers[0]
	assert.Equal(t, "1101", cash.AccountCode)
	require.Len(t, cash.Entries, 1)
	assert.True(t, cash.Entries[0].Debit.Equal(decimal.NewFromInt(500000)))
	assert.True(t, cash.Entries[0].Credit.IsZero())
	assert.True(t, cash.Entries[0].RunningBalance.Equal(decimal.NewFromInt(500000)))

	sales := ledgers[1]
	assert.Equal(t, "4101", sales.AccountCode)
	require.Len(t, sales.Entries, 1)
	assert.True(t, sales.Entries[0].Credit.Equal(decimal.NewFromInt(500000)))
	assert.True(t, sales.Entries[0].RunningBalance.Equal(decimal.NewFromInt(-500000)))
}

func TestLedgerByAccount_RunningBalancePrefixSum(t *testing.T) {
	// Deliberately out of order; the engine must sort by (date, id).
	lines := []domain.JournalLine{
		line("tx-3", "2024-01-20", "Bayar gaji", "6101", "1101", 300000),
		line("tx-1", "2024-01-05", "Setoran modal", "1101", "3101", 1000000),
		line("tx-2", "2024-01-10", "Penjualan tunai", "1101", "4101", 500000),
	}

	cash := accounting.LedgerForAccount(lines, "1101")
	require.NotNil(t, cash)
	require.Len(t, cash.Entries, 3)

	assert.Equal(t, "tx-1", cash.Entries[0].TransactionID)
	assert.True(t, cash.Entries[0].RunningBalance.Equal(decimal.NewFromInt(1000000)))
	assert.Equal(t, "tx-2", cash.Entries[1].TransactionID)
	assert.True(t, cash.Entries[1].RunningBalance.Equal(decimal.NewFromInt(1500000)))
	assert.Equal(t, "tx-3", cash.Entries[2].TransactionID)
	assert.True(t, cash.Entries[2].RunningBalance.Equal(decimal.NewFromInt(1200000)))
}

func TestLedgerByAccount_SameDateOrderedByID(t *testing.T) {
	lines := []domain.JournalLine{
		line("tx-b", "2024-01-10", "Kedua", "1101", "4101", 200),
		line("tx-a", "2024-01-10", "Pertama", "1101", "4101", 100),
	}

	cash := accounting.LedgerForAccount(lines, "1101")
	require.NotNil(t, cash)
	require.Len(t, cash.Entries, 2)
	assert.Equal(t, "tx-a", cash.Entries[0].TransactionID)
	assert.Equal(t, "tx-b", cash.Entries[1].TransactionID)
}

func TestLedgerForAccount_NoActivity(t *testing.T) {
	lines := []domain.JournalLine{
		line("tx-1", "2024-01-10", "Penjualan tunai", "1101", "4101", 500000),
	}
	assert.Nil(t, accounting.LedgerForAccount(lines, "2101"))
}

func TestLedgerByAccount_EmptySnapshot(t *testing.T) {
	assert.Empty(t, accounting.LedgerByAccount(nil))
}
