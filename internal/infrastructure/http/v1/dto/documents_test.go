package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
	"stockyard/internal/core/types"
)

func validGRNRequest() CreateGoodsReceiptNoteRequest {
	return CreateGoodsReceiptNoteRequest{
		Date:        time.Now().UTC(),
		SupplierID:  id.New().String(),
		WarehouseID: id.New().String(),
		Lines: []GoodsReceiptNoteLineRequest{
			{ItemID: id.New().String(), Quantity: 2, UnitCost: types.MustMoney("3.50")},
		},
	}
}

func requireInvalidIDError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "invalid id format", appErr.Message)
	assert.Equal(t, field, appErr.Details["field"])
}

func TestCreateGoodsReceiptNoteRequest_MalformedIDs(t *testing.T) {
	t.Run("supplier", func(t *testing.T) {
		req := validGRNRequest()
		req.SupplierID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "supplierId")
	})

	t.Run("warehouse", func(t *testing.T) {
		req := validGRNRequest()
		req.WarehouseID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "warehouseId")
	})

	t.Run("line item", func(t *testing.T) {
		req := validGRNRequest()
		req.Lines[0].ItemID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "lines.itemId")
	})
}

func TestCreateGoodsReceiptNoteRequest_CarriesBatchMetadata(t *testing.T) {
	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	req := validGRNRequest()
	req.Lines[0].BatchNumber = "LOT-2026-014"
	req.Lines[0].ExpiryDate = &expiry

	doc, err := req.ToEntity()
	require.NoError(t, err)

	require.Len(t, doc.Lines, 1)
	assert.Equal(t, "LOT-2026-014", doc.Lines[0].BatchNumber)
	require.NotNil(t, doc.Lines[0].ExpiryDate)
	assert.True(t, expiry.Equal(*doc.Lines[0].ExpiryDate))
}

func TestUpdateGoodsReceiptNoteRequest_MalformedSupplier(t *testing.T) {
	req := validGRNRequest()
	doc, err := req.ToEntity()
	require.NoError(t, err)

	bad := "not-a-uuid"
	upd := UpdateGoodsReceiptNoteRequest{SupplierID: &bad}
	requireInvalidIDError(t, upd.ApplyTo(doc), "supplierId")
}

func TestCreateDeliveryOrderRequest_MalformedIDs(t *testing.T) {
	valid := func() CreateDeliveryOrderRequest {
		return CreateDeliveryOrderRequest{
			Date:        time.Now().UTC(),
			CustomerID:  id.New().String(),
			WarehouseID: id.New().String(),
			Lines: []DeliveryOrderLineRequest{
				{ItemID: id.New().String(), Quantity: 1},
			},
		}
	}

	t.Run("customer", func(t *testing.T) {
		req := valid()
		req.CustomerID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "customerId")
	})

	t.Run("carrier", func(t *testing.T) {
		req := valid()
		bad := "not-a-uuid"
		req.CarrierID = &bad
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "carrierId")
	})

	t.Run("line item", func(t *testing.T) {
		req := valid()
		req.Lines[0].ItemID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "lines.itemId")
	})
}

func TestCreateStockTransferRequest_MalformedWarehouses(t *testing.T) {
	valid := func() CreateStockTransferRequest {
		return CreateStockTransferRequest{
			Date:              time.Now().UTC(),
			SourceWarehouseID: id.New().String(),
			TargetWarehouseID: id.New().String(),
			Lines: []StockTransferLineRequest{
				{ItemID: id.New().String(), Quantity: 5},
			},
		}
	}

	t.Run("source", func(t *testing.T) {
		req := valid()
		req.SourceWarehouseID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "sourceWarehouseId")
	})

	t.Run("target", func(t *testing.T) {
		req := valid()
		req.TargetWarehouseID = "not-a-uuid"
		_, err := req.ToEntity()
		requireInvalidIDError(t, err, "targetWarehouseId")
	})
}

func TestCreateStorageInvoiceRequest_MalformedChargeCode(t *testing.T) {
	req := CreateStorageInvoiceRequest{
		Date:       time.Now().UTC(),
		CustomerID: id.New().String(),
		PeriodFrom: time.Now().UTC().AddDate(0, -1, 0),
		PeriodTo:   time.Now().UTC(),
		Lines: []StorageInvoiceLineRequest{
			{ChargeCodeID: "not-a-uuid", Rate: types.MustMoney("10.00"), Quantity: 1},
		},
	}

	_, err := req.ToEntity()
	requireInvalidIDError(t, err, "lines.chargeCodeId")
}

func TestCreateJournalEntryRequest_MalformedCounterparty(t *testing.T) {
	bad := "not-a-uuid"
	req := CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Lines: []JournalEntryLineRequest{
			{AccountCode: "1200", Debit: types.MustMoney("100.00"), CounterpartyID: &bad},
			{AccountCode: "4000", Credit: types.MustMoney("100.00")},
		},
	}

	_, err := req.ToEntity()
	requireInvalidIDError(t, err, "lines.counterpartyId")
}
