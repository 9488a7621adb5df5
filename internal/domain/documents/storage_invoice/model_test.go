package storage_invoice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
	"stockyard/internal/domain/billing"
)

func testPeriod() (time.Time, time.Time) {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
}

func TestAddLine_ComputesAmount(t *testing.T) {
	from, to := testPeriod()
	inv := NewStorageInvoice(id.New(), from, to)

	inv.AddLine(Line{
		ChargeCodeID: id.New(),
		ChargeType:   billing.PerCBMDay,
		Rate:         types.MustMoney("5.00"),
		Volume:       decimal.RequireFromString("2.5"),
		Days:         10,
	})

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "125.00", inv.Lines[0].Amount.StringFixed(2))
	assert.Equal(t, "125.00", inv.TotalAmount.StringFixed(2))
}

func TestRecalculateTotals_MultipleLines(t *testing.T) {
	from, to := testPeriod()
	inv := NewStorageInvoice(id.New(), from, to)

	inv.AddLine(Line{
		ChargeCodeID: id.New(),
		ChargeType:   billing.PerPalletDay,
		Rate:         types.MustMoney("1.50"),
		Days:         31,
	})
	inv.AddLine(Line{
		ChargeCodeID: id.New(),
		ChargeType:   billing.Fixed,
		Rate:         types.MustMoney("20.00"),
	})

	assert.Equal(t, "66.50", inv.TotalAmount.StringFixed(2))
}

func TestValidate_Period(t *testing.T) {
	ctx := context.Background()
	from, to := testPeriod()

	inv := NewStorageInvoice(id.New(), to, from) // reversed
	inv.AddLine(Line{
		ChargeCodeID: id.New(),
		ChargeType:   billing.Fixed,
		Rate:         types.MustMoney("1.00"),
	})

	assert.Error(t, inv.Validate(ctx))
}

func TestGenerateMovements_BalancedPair(t *testing.T) {
	from, to := testPeriod()
	customerID := id.New()
	inv := NewStorageInvoice(customerID, from, to)
	inv.AddLine(Line{
		ChargeCodeID: id.New(),
		ChargeType:   billing.Fixed,
		Rate:         types.MustMoney("99.90"),
	})

	set, err := inv.GenerateMovements(context.Background())
	require.NoError(t, err)

	require.Len(t, set.General, 2)
	assert.Empty(t, set.Stock)

	debit, credit := set.General[0], set.General[1]
	assert.Equal(t, AccountReceivable, debit.AccountCode)
	assert.Equal(t, "99.90", debit.Debit.StringFixed(2))
	assert.Equal(t, AccountStorageRevenue, credit.AccountCode)
	assert.Equal(t, "99.90", credit.Credit.StringFixed(2))

	require.NotNil(t, debit.CounterpartyID)
	assert.Equal(t, customerID, *debit.CounterpartyID)
}
