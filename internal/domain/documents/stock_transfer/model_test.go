package stock_transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

func TestValidate_SameWarehouse(t *testing.T) {
	wh := id.New()
	doc := NewStockTransfer(wh, wh)
	doc.AddLine(id.New(), types.Quantity(1_0000))

	err := doc.Validate(context.Background())
	require.Error(t, err)
}

func TestGenerateMovements_PairedExpenseAndReceipt(t *testing.T) {
	source := id.New()
	target := id.New()
	item := id.New()

	doc := NewStockTransfer(source, target)
	doc.AddLine(item, types.Quantity(4_0000))

	set, err := doc.GenerateMovements(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Stock, 2)

	expense := set.Stock[0]
	assert.Equal(t, entity.RecordTypeExpense, expense.RecordType)
	assert.Equal(t, source, expense.WarehouseID)
	assert.Equal(t, types.Quantity(4_0000), expense.Quantity)

	receipt := set.Stock[1]
	assert.Equal(t, entity.RecordTypeReceipt, receipt.RecordType)
	assert.Equal(t, target, receipt.WarehouseID)
	assert.Equal(t, types.Quantity(4_0000), receipt.Quantity)

	// availability is checked against the source warehouse only
	require.Len(t, set.Reservations, 1)
	assert.Equal(t, source, set.Reservations[0].WarehouseID)
	assert.Equal(t, item, set.Reservations[0].ItemID)
}

func TestGenerateMovements_AggregatesDemandPerItem(t *testing.T) {
	doc := NewStockTransfer(id.New(), id.New())
	item := id.New()
	doc.AddLine(item, types.Quantity(2_0000))
	doc.AddLine(item, types.Quantity(3_0000))

	set, err := doc.GenerateMovements(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Reservations, 1)
	assert.Equal(t, types.Quantity(5_0000), set.Reservations[0].RequiredQty)
}
