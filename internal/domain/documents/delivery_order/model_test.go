package delivery_order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

func TestAddLine_Totals(t *testing.T) {
	doc := NewDeliveryOrder(id.New(), id.New())

	doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(3_0000)})
	doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(1_5000)})

	assert.Equal(t, 1, doc.Lines[0].LineNo)
	assert.Equal(t, 2, doc.Lines[1].LineNo)
	assert.False(t, id.IsNil(doc.Lines[0].LineID))
	assert.Equal(t, types.Quantity(4_5000), doc.TotalQuantity)
}

func TestRecalculateTotals_WeightAndVolume(t *testing.T) {
	doc := NewDeliveryOrder(id.New(), id.New())

	doc.AddLine(Line{
		ItemID:   id.New(),
		Quantity: types.Quantity(2_0000),
		Weight:   decimal.RequireFromString("25.5"),
		Volume:   decimal.RequireFromString("0.96"),
	})
	doc.AddLine(Line{
		ItemID:   id.New(),
		Quantity: types.Quantity(1_0000),
		Weight:   decimal.RequireFromString("4.5"),
		Volume:   decimal.RequireFromString("0.04"),
	})

	assert.Equal(t, "30.000", doc.TotalWeight.StringFixed(3))
	assert.Equal(t, "1.000", doc.TotalVolume.StringFixed(3))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *DeliveryOrder)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(d *DeliveryOrder) {},
		},
		{
			name: "missing customer",
			mutate: func(d *DeliveryOrder) {
				d.CustomerID = id.Nil()
			},
			wantErr: "customer is required",
		},
		{
			name: "missing warehouse",
			mutate: func(d *DeliveryOrder) {
				d.WarehouseID = id.Nil()
			},
			wantErr: "warehouse is required",
		},
		{
			name: "no lines",
			mutate: func(d *DeliveryOrder) {
				d.Lines = nil
			},
			wantErr: "at least one line is required",
		},
		{
			name: "line without item",
			mutate: func(d *DeliveryOrder) {
				d.Lines[0].ItemID = id.Nil()
			},
			wantErr: "item is required",
		},
		{
			name: "zero quantity",
			mutate: func(d *DeliveryOrder) {
				d.Lines[0].Quantity = 0
			},
			wantErr: "quantity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDeliveryOrder(id.New(), id.New())
			doc.AddLine(Line{ItemID: id.New(), Quantity: types.Quantity(1_0000)})
			tt.mutate(doc)

			err := doc.Validate(context.Background())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestGenerateMovements_AggregatesReservations(t *testing.T) {
	doc := NewDeliveryOrder(id.New(), id.New())
	itemID := id.New()

	doc.AddLine(Line{ItemID: itemID, Quantity: types.Quantity(2_0000)})
	doc.AddLine(Line{ItemID: itemID, Quantity: types.Quantity(3_0000)})

	movements, err := doc.GenerateMovements(context.Background())
	require.NoError(t, err)

	assert.Len(t, movements.Stock, 2)
	for _, m := range movements.Stock {
		assert.Equal(t, entity.RecordTypeExpense, m.RecordType)
		assert.Equal(t, doc.WarehouseID, m.WarehouseID)
	}

	require.Len(t, movements.Reservations, 1)
	assert.Equal(t, types.Quantity(5_0000), movements.Reservations[0].RequiredQty)
}
