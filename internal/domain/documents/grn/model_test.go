package grn

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

func TestAddLine_Totals(t *testing.T) {
	doc := NewGoodsReceiptNote(id.New(), id.New())

	doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(10_0000), UnitCost: types.MustMoney("2.50")})
	doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(3_0000), UnitCost: types.MustMoney("14.99")})

	assert.Equal(t, types.Quantity(13_0000), doc.TotalQuantity)
	assert.Equal(t, "69.97", doc.TotalAmount.StringFixed(2))
	assert.Equal(t, 1, doc.Lines[0].LineNo)
	assert.Equal(t, 2, doc.Lines[1].LineNo)
	assert.Equal(t, "25.00", doc.Lines[0].Amount.StringFixed(2))
}

func TestRecalculateTotals_WeightAndVolume(t *testing.T) {
	doc := NewGoodsReceiptNote(id.New(), id.New())

	doc.AddLine(Line{
		ItemID:   id.New(),
		Quantity: types.Quantity(2_0000),
		UnitCost: types.MustMoney("1.00"),
		Weight:   decimal.RequireFromString("25.5"),
		Volume:   decimal.RequireFromString("0.96"),
	})
	doc.AddLine(Line{
		ItemID:   id.New(),
		Quantity: types.Quantity(1_0000),
		UnitCost: types.MustMoney("1.00"),
		Weight:   decimal.RequireFromString("4.5"),
		Volume:   decimal.RequireFromString("0.04"),
	})

	assert.Equal(t, "30.000", doc.TotalWeight.StringFixed(3))
	assert.Equal(t, "1.000", doc.TotalVolume.StringFixed(3))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		doc := NewGoodsReceiptNote(id.New(), id.New())
		doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(1_0000), UnitCost: types.MustMoney("1.00")})
		assert.NoError(t, doc.Validate(ctx))
	})

	t.Run("missing supplier", func(t *testing.T) {
		doc := NewGoodsReceiptNote(id.Nil(), id.New())
		doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(1_0000), UnitCost: types.MustMoney("1.00")})
		assert.Error(t, doc.Validate(ctx))
	})

	t.Run("no lines", func(t *testing.T) {
		doc := NewGoodsReceiptNote(id.New(), id.New())
		assert.Error(t, doc.Validate(ctx))
	})

	t.Run("zero quantity line", func(t *testing.T) {
		doc := NewGoodsReceiptNote(id.New(), id.New())
		doc.AddLine(Line{ItemID: id.New(), UnitCost: types.MustMoney("1.00")})
		assert.Error(t, doc.Validate(ctx))
	})
}

func TestGenerateMovements(t *testing.T) {
	warehouseID := id.New()
	doc := NewGoodsReceiptNote(id.New(), warehouseID)
	itemA := id.New()
	itemB := id.New()
	doc.AddLine(Line{ItemID: itemA, Quantity: types.Quantity(5_0000), UnitCost: types.MustMoney("2.00")})
	doc.AddLine(Line{ItemID: itemB, Quantity: types.Quantity(7_0000), UnitCost: types.MustMoney("3.00")})

	set, err := doc.GenerateMovements(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Stock, 2)
	assert.Empty(t, set.General)
	assert.Empty(t, set.Reservations, "receipts need no stock checks")

	for _, m := range set.Stock {
		assert.Equal(t, entity.RecordTypeReceipt, m.RecordType)
		assert.Equal(t, warehouseID, m.WarehouseID)
		assert.Equal(t, 1, m.RecorderVersion)
	}
	assert.Equal(t, itemA, set.Stock[0].ItemID)
	assert.Equal(t, itemB, set.Stock[1].ItemID)
}
