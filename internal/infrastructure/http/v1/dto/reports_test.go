package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/core/id"
)

func TestParseReportDate(t *testing.T) {
	plain, err := parseReportDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), plain)

	full, err := parseReportDate("2026-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, full.Hour())

	_, err = parseReportDate("15.03.2026")
	assert.Error(t, err)
}

func TestStockBalanceReportRequest_ToFilter(t *testing.T) {
	warehouseID := id.New()

	req := StockBalanceReportRequest{
		AsOfDate:     "2026-06-30",
		WarehouseIDs: []string{warehouseID.String()},
		ExcludeZero:  true,
		Limit:        100,
	}

	filter, err := req.ToFilter()
	require.NoError(t, err)
	require.NotNil(t, filter.AsOfDate)
	assert.Equal(t, time.June, filter.AsOfDate.Month())
	assert.Equal(t, []id.ID{warehouseID}, filter.WarehouseIDs)
	assert.True(t, filter.ExcludeZero)
	assert.Equal(t, 100, filter.Limit)
}

func TestStockBalanceReportRequest_ToFilter_BadInput(t *testing.T) {
	badDate := StockBalanceReportRequest{AsOfDate: "yesterday"}
	_, err := badDate.ToFilter()
	assert.True(t, apperror.IsAppError(err))

	badID := StockBalanceReportRequest{ItemIDs: []string{"not-a-uuid"}}
	_, err = badID.ToFilter()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "itemId")
}

func TestCustomerStatementRequest_ToFilter(t *testing.T) {
	customerID := id.New()

	req := CustomerStatementRequest{
		CustomerID: customerID.String(),
		FromDate:   "2026-01-01",
		ToDate:     "2026-01-31",
	}

	filter, err := req.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, customerID, filter.CustomerID)
	assert.True(t, filter.ToDate.After(filter.FromDate))

	req.CustomerID = "bogus"
	_, err = req.ToFilter()
	assert.Error(t, err)
}

func TestDocumentJournalRequest_ToFilter(t *testing.T) {
	posted := true
	req := DocumentJournalRequest{
		FromDate:      "2026-02-01",
		DocumentTypes: []string{"GoodsReceiptNote", "DeliveryOrder"},
		Posted:        &posted,
		SortBy:        "date",
		SortOrder:     "desc",
	}

	filter, err := req.ToFilter()
	require.NoError(t, err)
	require.NotNil(t, filter.FromDate)
	assert.Nil(t, filter.ToDate)
	assert.Len(t, filter.DocumentTypes, 2)
	require.NotNil(t, filter.Posted)
	assert.True(t, *filter.Posted)
}
